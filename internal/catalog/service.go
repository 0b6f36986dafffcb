package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the shared store the catalog service needs.
// Update runs the callback under the store's single-writer lock; any error
// aborts the command with no state change observed by later readers.
type StateStore interface {
	UpdateCatalog(fn func(*State) error) error
	ViewCatalog(fn func(State))
}

// Service executes catalog commands and cost projections.
type Service struct {
	store StateStore
	clock shared.Clock
}

// NewService builds Service.
func NewService(store StateStore, clock shared.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// AddItem creates a new item in the warehouse named by in.Type. SKUs are
// unique across every collection.
func (s *Service) AddItem(in NewItemInput) error {
	return s.store.UpdateCatalog(func(st *State) error {
		if st.HasSKU(in.SKU) {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, in.SKU)
		}
		switch in.Type {
		case ItemTypeRaw:
			st.RawMaterials = append(st.RawMaterials, NewRawMaterial(in, s.clock))
		case ItemTypePackaging:
			st.PackagingMaterials = append(st.PackagingMaterials, NewPackagingMaterial(in, s.clock))
		case ItemTypeWrapping:
			st.WrappingMaterials = append(st.WrappingMaterials, NewWrappingMaterial(in, s.clock))
		case ItemTypeFinished:
			st.FinishedProducts = append(st.FinishedProducts, NewFinishedProduct(in, s.clock))
		default:
			return fmt.Errorf("catalog: unknown item type %q", in.Type)
		}
		return nil
	})
}

// Snapshot returns a copy of every collection for listing views.
func (s *Service) Snapshot() State {
	var out State
	s.store.ViewCatalog(func(st State) {
		out.RawMaterials = append(out.RawMaterials, st.RawMaterials...)
		out.PackagingMaterials = append(out.PackagingMaterials, st.PackagingMaterials...)
		out.WrappingMaterials = append(out.WrappingMaterials, st.WrappingMaterials...)
		out.FinishedProducts = append(out.FinishedProducts, st.FinishedProducts...)
	})
	return out
}

// ProductCost is the read-time cost projection for one product.
type ProductCost struct {
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	TotalStockCost decimal.Decimal `json:"total_stock_cost"`
}

// Cost recomputes the product's unit and total stock cost from the current
// material costs.
func (s *Service) Cost(sku string) (ProductCost, error) {
	var (
		out   ProductCost
		found bool
	)
	s.store.ViewCatalog(func(st State) {
		p := st.FindProduct(sku)
		if p == nil {
			return
		}
		found = true
		idx := BuildCostIndex(&st)
		out = ProductCost{
			SKU:            p.SKU,
			Name:           p.Name,
			Quantity:       p.Quantity,
			UnitCost:       UnitCost(*p, idx),
			TotalStockCost: TotalStockCost(*p, idx),
		}
	})
	if !found {
		return ProductCost{}, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
	}
	return out, nil
}

// AddComponent adds a BOM line to the product.
func (s *Service) AddComponent(productSKU string, line BOMLine) error {
	return s.store.UpdateCatalog(func(st *State) error {
		p := st.FindProduct(productSKU)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrProductNotFound, productSKU)
		}
		return AddBOMLine(p, line)
	})
}

// RemoveComponent drops a BOM line from the product.
func (s *Service) RemoveComponent(productSKU, componentSKU string) error {
	return s.store.UpdateCatalog(func(st *State) error {
		p := st.FindProduct(productSKU)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrProductNotFound, productSKU)
		}
		return RemoveBOMLine(p, componentSKU)
	})
}

// SetComponentQuantity updates the per-unit quantity of an existing BOM line.
func (s *Service) SetComponentQuantity(productSKU, componentSKU string, qty decimal.Decimal) error {
	return s.store.UpdateCatalog(func(st *State) error {
		p := st.FindProduct(productSKU)
		if p == nil {
			return fmt.Errorf("%w: %s", ErrProductNotFound, productSKU)
		}
		return UpdateBOMLineQuantity(p, componentSKU, qty)
	})
}

// LowStockItem is one row of the reorder report.
type LowStockItem struct {
	Warehouse Warehouse `json:"warehouse"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Reorder   int       `json:"reorder_level"`
}

// LowStock lists items at or below their reorder level across all warehouses.
func (s *Service) LowStock() []LowStockItem {
	var out []LowStockItem
	s.store.ViewCatalog(func(st State) {
		for _, m := range st.RawMaterials {
			if m.Quantity <= m.ReorderLevel {
				out = append(out, LowStockItem{WarehouseRawMaterials, m.SKU, m.Name, m.Quantity, m.ReorderLevel})
			}
		}
		for _, m := range st.PackagingMaterials {
			if m.Quantity <= m.ReorderLevel {
				out = append(out, LowStockItem{WarehousePackaging, m.SKU, m.Name, m.Quantity, m.ReorderLevel})
			}
		}
		for _, m := range st.WrappingMaterials {
			if m.Quantity <= m.ReorderLevel {
				out = append(out, LowStockItem{WarehouseWrapping, m.SKU, m.Name, m.Quantity, m.ReorderLevel})
			}
		}
		for _, p := range st.FinishedProducts {
			if p.Quantity <= p.ReorderLevel {
				out = append(out, LowStockItem{WarehouseFinishedProducts, p.SKU, p.Name, p.Quantity, p.ReorderLevel})
			}
		}
	})
	return out
}
