package sales

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store *memoryStore) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, newTestService(store)).MountRoutes(r)
	return r
}

func TestCommitEndpointCreatesSale(t *testing.T) {
	store := newTestStore()
	router := newTestRouter(store)

	body := `{
		"customer_name": "صيدليات العزبي",
		"channel": "WHOLESALE",
		"items": [{"product_sku": "LAV-CREAM-50", "quantity": 30}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var sale Sale
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sale))
	require.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(2700)), sale.TotalPrice.String())
	require.Equal(t, 20, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
}

func TestCommitEndpointRejectsInsufficientStock(t *testing.T) {
	store := newTestStore()
	router := newTestRouter(store)

	body := `{
		"customer_name": "صيدليات العزبي",
		"channel": "PUBLIC",
		"items": [{"product_sku": "LAV-CREAM-50", "quantity": 100}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	require.Equal(t, 50, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
	require.Empty(t, store.sales.Sales)
}

func TestCommitEndpointUnknownCustomer(t *testing.T) {
	router := newTestRouter(newTestStore())

	body := `{
		"customer_name": "مجهول",
		"channel": "PUBLIC",
		"items": [{"product_sku": "LAV-CREAM-50", "quantity": 1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCommitEndpointValidatesChannel(t *testing.T) {
	router := newTestRouter(newTestStore())

	body := `{
		"customer_name": "صيدليات العزبي",
		"channel": "EXPORT",
		"items": [{"product_sku": "LAV-CREAM-50", "quantity": 1}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRepriceEndpointSwitchesTier(t *testing.T) {
	router := newTestRouter(newTestStore())

	body := `{
		"channel": "AGENT",
		"items": [{
			"product_sku": "LAV-CREAM-50",
			"product_name": "كريم اللافندر 50 مل",
			"quantity": 10,
			"public_price": "120",
			"unit_price": "90",
			"discount_percentage": "25",
			"line_total": "900"
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/reprice", strings.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Items []Line `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.True(t, resp.Items[0].UnitPrice.Equal(decimal.NewFromInt(75)), resp.Items[0].UnitPrice.String())
	require.True(t, resp.Items[0].DiscountPercentage.Equal(decimal.NewFromFloat(37.5)))
}

func TestListEndpointPaginates(t *testing.T) {
	store := newTestStore()
	router := newTestRouter(store)

	for i := 0; i < 3; i++ {
		body := `{
			"customer_name": "صيدليات العزبي",
			"channel": "PUBLIC",
			"items": [{"product_sku": "LAV-CREAM-50", "quantity": 1}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/?page=2&per_page=2", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp saleListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	require.Equal(t, 3, resp.Pagination.Total)
	require.Equal(t, 2, resp.Pagination.TotalPages)
}
