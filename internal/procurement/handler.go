package procurement

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
)

// Handler wires supplier and purchasing endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers procurement routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/suppliers", h.listSuppliers)
	r.Post("/suppliers", h.createSupplier)
	r.Get("/suppliers/balance", h.supplierBalance)
	r.Post("/payments", h.addPayment)

	r.Get("/orders", h.listOrders)
	r.Post("/orders", h.createOrder)
	r.Post("/orders/{id}/status", h.changeStatus)
}

type createSupplierRequest struct {
	Name              string   `json:"name" validate:"required,max=200"`
	PaymentType       string   `json:"payment_type" validate:"required,oneof=CASH CREDIT"`
	ContactPerson     string   `json:"contact_person,omitempty" validate:"max=200"`
	Email             string   `json:"email,omitempty" validate:"omitempty,max=200"`
	Phone             string   `json:"phone,omitempty" validate:"max=50"`
	Address           string   `json:"address,omitempty" validate:"max=500"`
	CreditLimit       float64  `json:"credit_limit" validate:"gte=0"`
	MaterialsSupplied []string `json:"materials_supplied,omitempty" validate:"dive,max=200"`
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var req createSupplierRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	sup, err := h.service.AddSupplier(NewSupplierInput{
		Name:              req.Name,
		PaymentType:       PaymentType(req.PaymentType),
		ContactPerson:     req.ContactPerson,
		Email:             req.Email,
		Phone:             req.Phone,
		Address:           req.Address,
		CreditLimit:       decimal.NewFromFloat(req.CreditLimit),
		MaterialsSupplied: req.MaterialsSupplied,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sup)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListSuppliers())
}

func (h *Handler) supplierBalance(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", "name query parameter is required")
		return
	}
	balance, err := h.service.Balance(name)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, balance)
}

type addPaymentRequest struct {
	SupplierName string  `json:"supplier_name" validate:"required,max=200"`
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
	payment, err := h.service.AddPayment(req.SupplierName, decimal.NewFromFloat(req.Amount), req.Date)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, payment)
}

type purchaseItemRequest struct {
	ItemName    string  `json:"item_name" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,oneof=RAW_MATERIALS PACKAGING WRAPPING FINISHED_PRODUCTS"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	Unit        string  `json:"unit" validate:"required,oneof=kg count"`
	CostPerUnit float64 `json:"cost_per_unit" validate:"gte=0"`
}

type createOrderRequest struct {
	SupplierName string                `json:"supplier_name" validate:"required,max=200"`
	PaymentType  string                `json:"payment_type" validate:"required,oneof=CASH CREDIT"`
	Items        []purchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	in := NewPurchaseOrderInput{
		SupplierName: req.SupplierName,
		PaymentType:  PaymentType(req.PaymentType),
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, NewPurchaseItemInput{
			ItemName:    it.ItemName,
			Category:    it.Category,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			CostPerUnit: decimal.NewFromFloat(it.CostPerUnit),
		})
	}
	po, err := h.service.CreatePurchaseOrder(in)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, po)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.ListPurchaseOrders())
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ORDERED RECEIVED CANCELLED"`
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
	status, err := ParsePurchaseStatus(req.Status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	po, err := h.service.ChangeStatus(chi.URLParam(r, "id"), status)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, po)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDuplicateSupplier):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, ErrNoItems), errors.Is(err, ErrUnknownPurchaseStatus):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	case errors.Is(err, ErrUnknownSupplier), errors.Is(err, ErrPurchaseOrderNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		h.logger.Error("procurement command", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
