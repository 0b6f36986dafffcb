package production

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

func newTestRouter(store *memoryStore) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(store, shared.FixedClock("2024-07-24"), nil)
	r := chi.NewRouter()
	NewHandler(logger, svc).MountRoutes(r)
	return r
}

func TestStatusEndpointMovesStock(t *testing.T) {
	store := newTestStore()
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/orders/PO-1025/status", strings.NewReader(`{"status":"COMPLETED"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Equal(t, 1250, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
}

func TestStatusEndpointRejectsUnknownStatus(t *testing.T) {
	store := newTestStore()
	router := newTestRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/orders/PO-1025/status", strings.NewReader(`{"status":"SHIPPED"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, 750, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
}

func TestStatusEndpointUnknownOrder(t *testing.T) {
	router := newTestRouter(newTestStore())

	req := httptest.NewRequest(http.MethodPost, "/orders/PO-9999/status", strings.NewReader(`{"status":"COMPLETED"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	store := newTestStore()
	router := newTestRouter(store)

	body := `{"product_sku":"LAV-CREAM-50","product_name":"كريم اللافندر 50 مل","quantity":300,"start_date":"2024-07-25","end_date":"2024-07-28"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Len(t, store.production.Orders, 2)
	require.Equal(t, StatusPending, store.production.Orders[1].Status)
}
