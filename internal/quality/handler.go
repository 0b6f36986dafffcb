package quality

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
)

// Handler wires quality-control endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers quality routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/logs", h.listLogs)
	r.Post("/logs", h.openLog)
	r.Post("/logs/{id}/status", h.recordOutcome)
}

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("type")
	if filter != "" {
		if _, err := ParseLogType(filter); err != nil {
			httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
			return
		}
	}
	httpx.JSON(w, http.StatusOK, h.service.ListLogs(LogType(filter)))
}

type openLogRequest struct {
	Type        string `json:"type" validate:"required,oneof=PURCHASES FINISHED_PRODUCTS RETURNS"`
	ReferenceID string `json:"reference_id" validate:"required,max=64"`
	ProductName string `json:"product_name" validate:"required,max=200"`
	Inspector   string `json:"inspector" validate:"required,max=200"`
	Notes       string `json:"notes,omitempty" validate:"max=1000"`
}

func (h *Handler) openLog(w http.ResponseWriter, r *http.Request) {
	var req openLogRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	log, err := h.service.OpenLog(NewLogInput{
		Type:        LogType(req.Type),
		ReferenceID: req.ReferenceID,
		ProductName: req.ProductName,
		Inspector:   req.Inspector,
		Notes:       req.Notes,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, log)
}

type recordOutcomeRequest struct {
	Status string `json:"status" validate:"required,oneof=PASS FAIL PENDING"`
	Notes  string `json:"notes,omitempty" validate:"max=1000"`
}

func (h *Handler) recordOutcome(w http.ResponseWriter, r *http.Request) {
	var req recordOutcomeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	log, err := h.service.RecordOutcome(chi.URLParam(r, "id"), status, req.Notes)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, log)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrLogNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrUnknownStatus), errors.Is(err, ErrUnknownLogType):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	default:
		h.logger.Error("quality command", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
