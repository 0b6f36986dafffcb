package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
	"github.com/abkrino/cozmo-factor/internal/store"
)

// Handler serves the dashboard summary. Concurrent requests coalesce into
// one snapshot walk.
type Handler struct {
	store *store.Store
	group singleflight.Group
}

// NewHandler builds Handler.
func NewHandler(st *store.Store) *Handler {
	return &Handler{store: st}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	result, _, _ := h.group.Do("dashboard", func() (any, error) {
		return BuildSummary(h.store.Snapshot()), nil
	})
	httpx.JSON(w, http.StatusOK, result)
}
