package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/platform/httpx"
)

// Handler wires catalog endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
}

// NewHandler builds Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validate: validator.New()}
}

// MountRoutes registers catalog routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/items", h.listItems)
	r.Post("/items", h.createItem)
	r.Get("/low-stock", h.lowStock)
	r.Get("/products/{sku}/cost", h.productCost)
	r.Post("/products/{sku}/bom", h.addComponent)
	r.Put("/products/{sku}/bom/{componentSku}", h.setComponentQuantity)
	r.Delete("/products/{sku}/bom/{componentSku}", h.removeComponent)
}

type createItemRequest struct {
	Type             string  `json:"type" validate:"required,oneof=raw packaging wrapping finished"`
	SKU              string  `json:"sku" validate:"required,max=64"`
	Name             string  `json:"name" validate:"required,max=200"`
	Quantity         int     `json:"quantity" validate:"gte=0"`
	ReorderLevel     int     `json:"reorder_level" validate:"gte=0"`
	Supplier         string  `json:"supplier,omitempty" validate:"max=200"`
	Unit             string  `json:"unit,omitempty" validate:"omitempty,oneof=kg count"`
	Cost             float64 `json:"cost,omitempty" validate:"gte=0"`
	PublicPrice      float64 `json:"public_price,omitempty" validate:"gte=0"`
	WholesalePrice   float64 `json:"wholesale_price,omitempty" validate:"gte=0"`
	DistributorPrice float64 `json:"distributor_price,omitempty" validate:"gte=0"`
	AgentPrice       float64 `json:"agent_price,omitempty" validate:"gte=0"`
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	in := NewItemInput{
		Type:             ItemType(req.Type),
		SKU:              req.SKU,
		Name:             req.Name,
		Quantity:         req.Quantity,
		ReorderLevel:     req.ReorderLevel,
		Supplier:         req.Supplier,
		Unit:             Unit(req.Unit),
		Cost:             decimal.NewFromFloat(req.Cost),
		PublicPrice:      decimal.NewFromFloat(req.PublicPrice),
		WholesalePrice:   decimal.NewFromFloat(req.WholesalePrice),
		DistributorPrice: decimal.NewFromFloat(req.DistributorPrice),
		AgentPrice:       decimal.NewFromFloat(req.AgentPrice),
	}
	if err := h.service.AddItem(in); err != nil {
		if errors.Is(err, ErrDuplicateSKU) {
			httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
			return
		}
		h.logger.Error("create item", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"sku": req.SKU})
}

type itemsResponse struct {
	RawMaterials       []RawMaterial       `json:"raw_materials"`
	PackagingMaterials []PackagingMaterial `json:"packaging_materials"`
	WrappingMaterials  []WrappingMaterial  `json:"wrapping_materials"`
	FinishedProducts   []FinishedProduct   `json:"finished_products"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	st := h.service.Snapshot()
	httpx.JSON(w, http.StatusOK, itemsResponse{
		RawMaterials:       st.RawMaterials,
		PackagingMaterials: st.PackagingMaterials,
		WrappingMaterials:  st.WrappingMaterials,
		FinishedProducts:   st.FinishedProducts,
	})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.LowStock())
}

func (h *Handler) productCost(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	cost, err := h.service.Cost(sku)
	if err != nil {
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, cost)
}

type addComponentRequest struct {
	ComponentSKU    string  `json:"component_sku" validate:"required,max=64"`
	ComponentType   string  `json:"component_type" validate:"required,oneof=RAW_MATERIALS PACKAGING WRAPPING"`
	QuantityPerUnit float64 `json:"quantity_per_unit" validate:"gt=0"`
}

func (h *Handler) addComponent(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	var req addComponentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	line := BOMLine{
		ComponentSKU:    req.ComponentSKU,
		ComponentType:   Warehouse(req.ComponentType),
		QuantityPerUnit: decimal.NewFromFloat(req.QuantityPerUnit),
	}
	if err := h.service.AddComponent(sku, line); err != nil {
		h.respondBOMError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]string{"sku": sku, "component_sku": req.ComponentSKU})
}

type setComponentQuantityRequest struct {
	QuantityPerUnit float64 `json:"quantity_per_unit" validate:"gte=0"`
}

func (h *Handler) setComponentQuantity(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	component := chi.URLParam(r, "componentSku")
	var req setComponentQuantityRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Payload", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	if err := h.service.SetComponentQuantity(sku, component, decimal.NewFromFloat(req.QuantityPerUnit)); err != nil {
		h.respondBOMError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"sku": sku, "component_sku": component})
}

func (h *Handler) removeComponent(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	component := chi.URLParam(r, "componentSku")
	if err := h.service.RemoveComponent(sku, component); err != nil {
		h.respondBOMError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"sku": sku, "component_sku": component})
}

func (h *Handler) respondBOMError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrComponentNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrDuplicateComponent):
		httpx.Problem(w, http.StatusConflict, "Duplicate", err.Error())
	case errors.Is(err, ErrInvalidComponentQty):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("bom command", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
