package marketing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
)

// Handler wires campaign endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers marketing routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/campaigns", h.listCampaigns)
	r.Post("/campaigns", h.createCampaign)
	r.Post("/campaigns/{id}/status", h.changeStatus)
}

type createCampaignRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Channel   string  `json:"channel" validate:"required,max=200"`
	StartDate string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string  `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Budget    float64 `json:"budget" validate:"gte=0"`
}

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	c, err := h.service.CreateCampaign(NewCampaignInput{
		Name:      req.Name,
		Channel:   req.Channel,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Budget:    decimal.NewFromFloat(req.Budget),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListCampaigns())
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PLANNING ACTIVE COMPLETED CANCELLED"`
}

func (h *Handler) changeStatus(w http.ResponseWriter, r *http.Request) {
	var req changeStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	status, err := ParseCampaignStatus(req.Status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	c, err := h.service.ChangeStatus(chi.URLParam(r, "id"), status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCampaignNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrUnknownCampaignStatus):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	default:
		h.logger.Error("marketing command", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
