package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Warehouse identifies which material collection a SKU resolves against.
type Warehouse string

const (
	// WarehouseRawMaterials holds raw inputs (oils, waxes).
	WarehouseRawMaterials Warehouse = "RAW_MATERIALS"
	// WarehousePackaging holds primary packaging (jars, bottles).
	WarehousePackaging Warehouse = "PACKAGING"
	// WarehouseWrapping holds outer wrapping (boxes, sleeves).
	WarehouseWrapping Warehouse = "WRAPPING"
	// WarehouseFinishedProducts holds sellable finished goods.
	WarehouseFinishedProducts Warehouse = "FINISHED_PRODUCTS"
)

// Unit is the stock-keeping unit of measure.
type Unit string

const (
	// UnitKilogram measures bulk raw materials.
	UnitKilogram Unit = "kg"
	// UnitCount measures discrete pieces.
	UnitCount Unit = "count"
)

// RawMaterial is a bulk input item.
type RawMaterial struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	Unit         Unit            `json:"unit"`
	ReorderLevel int             `json:"reorder_level"`
	Cost         decimal.Decimal `json:"cost"`
	Supplier     string          `json:"supplier"`
	LastUpdated  string          `json:"last_updated"`
}

// PackagingMaterial is a primary packaging item, always counted by piece.
type PackagingMaterial struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Cost         decimal.Decimal `json:"cost"`
	Supplier     string          `json:"supplier"`
	LastUpdated  string          `json:"last_updated"`
}

// WrappingMaterial is an outer wrapping item, always counted by piece.
type WrappingMaterial struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	Cost         decimal.Decimal `json:"cost"`
	Supplier     string          `json:"supplier"`
	LastUpdated  string          `json:"last_updated"`
}

// BOMLine maps one component SKU to the quantity consumed per finished unit.
type BOMLine struct {
	ComponentSKU    string          `json:"component_sku"`
	ComponentType   Warehouse       `json:"component_type"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
}

// ProductionHistoryEntry records one completed production order against a
// product. The list is append-only; entries are never edited once applied.
type ProductionHistoryEntry struct {
	OrderID       string `json:"order_id"`
	QuantityAdded int    `json:"quantity_added"`
	Date          string `json:"date"`
}

// FinishedProduct is a sellable good with four channel price tiers.
// Quantity is mutated only by the inventory ledger: production completion
// adds, sale commit subtracts.
type FinishedProduct struct {
	ID                string                   `json:"id"`
	SKU               string                   `json:"sku"`
	Name              string                   `json:"name"`
	Quantity          int                      `json:"quantity"`
	ReorderLevel      int                      `json:"reorder_level"`
	PublicPrice       decimal.Decimal          `json:"public_price"`
	WholesalePrice    decimal.Decimal          `json:"wholesale_price"`
	DistributorPrice  decimal.Decimal          `json:"distributor_price"`
	AgentPrice        decimal.Decimal          `json:"agent_price"`
	BillOfMaterials   []BOMLine                `json:"bill_of_materials,omitempty"`
	ProductionHistory []ProductionHistoryEntry `json:"production_history,omitempty"`
	LastUpdated       string                   `json:"last_updated"`
}

// State is the catalog slice of the shared object graph. Ordering is
// insertion order.
type State struct {
	RawMaterials       []RawMaterial
	PackagingMaterials []PackagingMaterial
	WrappingMaterials  []WrappingMaterial
	FinishedProducts   []FinishedProduct
}

// FindProduct returns a pointer into FinishedProducts by SKU, or nil.
func (s *State) FindProduct(sku string) *FinishedProduct {
	for i := range s.FinishedProducts {
		if s.FinishedProducts[i].SKU == sku {
			return &s.FinishedProducts[i]
		}
	}
	return nil
}

// HasSKU reports whether any collection already carries the SKU.
func (s *State) HasSKU(sku string) bool {
	for i := range s.RawMaterials {
		if s.RawMaterials[i].SKU == sku {
			return true
		}
	}
	for i := range s.PackagingMaterials {
		if s.PackagingMaterials[i].SKU == sku {
			return true
		}
	}
	for i := range s.WrappingMaterials {
		if s.WrappingMaterials[i].SKU == sku {
			return true
		}
	}
	return s.FindProduct(sku) != nil
}

// ErrDuplicateSKU indicates an add-item command reused an existing SKU.
var ErrDuplicateSKU = errors.New("catalog: sku already exists")

// ErrDuplicateComponent indicates a BOM already lists the component.
var ErrDuplicateComponent = errors.New("catalog: component already in bill of materials")

// ErrInvalidComponentQty indicates a non-positive per-unit quantity.
var ErrInvalidComponentQty = errors.New("catalog: quantity per unit must be positive")

// ErrProductNotFound indicates an unknown finished product SKU.
var ErrProductNotFound = errors.New("catalog: finished product not found")

// ErrComponentNotFound indicates the BOM line to remove does not exist.
var ErrComponentNotFound = errors.New("catalog: component not in bill of materials")
