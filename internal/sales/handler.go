package sales

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
	"github.com/abkrino/cozmo-factor/internal/shared"
)

// Handler wires sales, customer and returns endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers sales routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listSales)
	r.Post("/", h.commitSale)
	r.Post("/preview", h.previewSale)
	r.Post("/reprice", h.repriceSale)

	r.Get("/customers", h.listCustomers)
	r.Post("/customers", h.createCustomer)
	r.Get("/customers/balance", h.customerBalance)
	r.Post("/payments", h.addPayment)

	r.Get("/returns", h.listReturns)
	r.Post("/returns", h.createReturn)
	r.Post("/returns/{id}/status", h.changeReturnStatus)
}

type draftLineRequest struct {
	ProductSKU         string   `json:"product_sku" validate:"required,max=64"`
	Quantity           int      `json:"quantity" validate:"gt=0"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type saleDraftRequest struct {
	CustomerName       string             `json:"customer_name" validate:"required,max=200"`
	Channel            string             `json:"channel" validate:"required,oneof=PUBLIC WHOLESALE DISTRIBUTOR AGENT"`
	Date               string             `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Items              []draftLineRequest `json:"items" validate:"required,min=1,dive"`
	AdditionalDiscount float64            `json:"additional_discount" validate:"gte=0"`
	Notes              string             `json:"notes,omitempty"`
}

func (h *Handler) decodeDraft(w http.ResponseWriter, r *http.Request) (Draft, bool) {
	var req saleDraftRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return Draft{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return Draft{}, false
	}
	draft := Draft{
		CustomerName:       req.CustomerName,
		Channel:            Channel(req.Channel),
		Date:               req.Date,
		AdditionalDiscount: decimal.NewFromFloat(req.AdditionalDiscount),
		Notes:              req.Notes,
	}
	for _, item := range req.Items {
		line := DraftLine{ProductSKU: item.ProductSKU, Quantity: item.Quantity}
		if item.DiscountPercentage != nil {
			d := decimal.NewFromFloat(*item.DiscountPercentage)
			line.DiscountPercentage = &d
		}
		draft.Lines = append(draft.Lines, line)
	}
	return draft, true
}

type saleListResponse struct {
	Data       []Sale            `json:"data"`
	Pagination shared.Pagination `json:"pagination"`
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	all := h.service.ListSales()
	p := shared.NewPagination(page, perPage, len(all))

	start := (p.Page - 1) * p.PerPage
	if start > len(all) {
		start = len(all)
	}
	end := start + p.PerPage
	if end > len(all) {
		end = len(all)
	}
	httpx.JSON(w, http.StatusOK, saleListResponse{Data: all[start:end], Pagination: p})
}

type previewResponse struct {
	Items  []Line        `json:"items"`
	Totals InvoiceTotals `json:"totals"`
}

func (h *Handler) previewSale(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	lines, totals, err := h.service.Preview(draft)
	if err != nil {
		h.respondSaleError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, previewResponse{Items: lines, Totals: totals})
}

func (h *Handler) commitSale(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}
	sale, err := h.service.Commit(draft)
	if err != nil {
		h.respondSaleError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

type repriceRequest struct {
	Channel            string  `json:"channel" validate:"required,oneof=PUBLIC WHOLESALE DISTRIBUTOR AGENT"`
	AdditionalDiscount float64 `json:"additional_discount" validate:"gte=0"`
	Items              []Line  `json:"items" validate:"required,min=1"`
}

func (h *Handler) repriceSale(w http.ResponseWriter, r *http.Request) {
	var req repriceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	lines, totals := h.service.Reprice(req.Items, Channel(req.Channel), decimal.NewFromFloat(req.AdditionalDiscount))
	httpx.JSON(w, http.StatusOK, previewResponse{Items: lines, Totals: totals})
}

func (h *Handler) respondSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoValidLines), errors.Is(err, ErrNoCustomer), errors.Is(err, ErrInsufficientStock):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	case errors.Is(err, ErrUnknownCustomer), errors.Is(err, ErrUnknownProduct):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		h.logger.Error("sale command", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

type createCustomerRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	PaymentType   string  `json:"payment_type" validate:"required,oneof=CASH CREDIT"`
	ContactPerson string  `json:"contact_person,omitempty" validate:"max=200"`
	Email         string  `json:"email,omitempty" validate:"omitempty,max=200"`
	Phone         string  `json:"phone,omitempty" validate:"max=50"`
	Address       string  `json:"address,omitempty" validate:"max=500"`
	CreditLimit   float64 `json:"credit_limit" validate:"gte=0"`
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	customer, err := h.service.AddCustomer(NewCustomerInput{
		Name:          req.Name,
		PaymentType:   PaymentType(req.PaymentType),
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		CreditLimit:   decimal.NewFromFloat(req.CreditLimit),
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateCustomer) {
			httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
			return
		}
		h.logger.Error("create customer", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusCreated, customer)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListCustomers())
}

func (h *Handler) customerBalance(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "name query parameter is required")
		return
	}
	balance, err := h.service.Balance(name)
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, balance)
}

type addPaymentRequest struct {
	CustomerName string  `json:"customer_name" validate:"required,max=200"`
	Amount       float64 `json:"amount" validate:"gt=0"`
	Date         string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) addPayment(w http.ResponseWriter, r *http.Request) {
	var req addPaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	payment, err := h.service.AddPayment(req.CustomerName, decimal.NewFromFloat(req.Amount), req.Date)
	if err != nil {
		if errors.Is(err, ErrUnknownCustomer) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		h.logger.Error("add payment", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusCreated, payment)
}

type returnItemRequest struct {
	ProductSKU  string `json:"product_sku" validate:"required,max=64"`
	ProductName string `json:"product_name" validate:"required,max=200"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
}

type createReturnRequest struct {
	SalesInvoiceID string              `json:"sales_invoice_id" validate:"required,max=64"`
	CustomerName   string              `json:"customer_name" validate:"required,max=200"`
	Items          []returnItemRequest `json:"items" validate:"required,min=1,dive"`
	Reason         string              `json:"reason" validate:"required,max=500"`
}

func (h *Handler) createReturn(w http.ResponseWriter, r *http.Request) {
	var req createReturnRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	items := make([]ReturnItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ReturnItem{ProductSKU: item.ProductSKU, ProductName: item.ProductName, Quantity: item.Quantity})
	}
	request, err := h.service.CreateReturn(NewReturnInput{
		SalesInvoiceID: req.SalesInvoiceID,
		CustomerName:   req.CustomerName,
		Items:          items,
		Reason:         req.Reason,
	})
	if err != nil {
		h.logger.Error("create return", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusCreated, request)
}

func (h *Handler) listReturns(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListReturns())
}

type changeReturnStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) changeReturnStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req changeReturnStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	status, err := ParseReturnStatus(req.Status)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	request, err := h.service.ChangeReturnStatus(id, status)
	if err != nil {
		if errors.Is(err, ErrReturnNotFound) {
			httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
			return
		}
		h.logger.Error("change return status", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, request)
}
