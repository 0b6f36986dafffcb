package assistant

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
	"github.com/abkrino/cozmo-factor/internal/store"
)

// Handler wires the chat endpoint.
type Handler struct {
	logger   *slog.Logger
	client   *Client
	store    *store.Store
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, client *Client, st *store.Store) *Handler {
	return &Handler{logger: logger, client: client, store: st, validate: validator.New()}
}

// MountRoutes registers assistant routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	View    string `json:"view,omitempty" validate:"max=50"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// chat always answers 200; a degraded upstream shows up as the Arabic
// fallback text, never as an HTTP error.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	reply := h.client.GetReply(r.Context(), req.Message, req.View, h.store.Snapshot())
	httpx.JSON(w, http.StatusOK, chatResponse{Reply: reply})
}
