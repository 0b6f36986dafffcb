package catalog

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newTestRouter(st *State) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, newTestService(st)).MountRoutes(r)
	return r
}

func TestCreateItemEndpoint(t *testing.T) {
	st := lavenderFactory()
	router := newTestRouter(st)

	body := `{"type":"raw","sku":"ROSE-OIL-1L","name":"زيت الورد الخام","quantity":40,"reorder_level":10,"unit":"kg","cost":950}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	require.Len(t, st.RawMaterials, 3)
}

func TestCreateItemEndpointRejectsDuplicateSKU(t *testing.T) {
	st := lavenderFactory()
	router := newTestRouter(st)

	body := `{"type":"raw","sku":"LAV-OIL-1L","name":"duplicate","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Len(t, st.RawMaterials, 2)
}

func TestCreateItemEndpointRejectsUnknownType(t *testing.T) {
	router := newTestRouter(lavenderFactory())

	body := `{"type":"spare_parts","sku":"SP-001","name":"قطع غيار"}`
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProductCostEndpoint(t *testing.T) {
	router := newTestRouter(lavenderFactory())

	req := httptest.NewRequest(http.MethodGet, "/products/LAV-CREAM-50/cost", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/products/MISSING/cost", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
