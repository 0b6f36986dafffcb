package catalog

import "github.com/shopspring/decimal"

// CostIndex maps any material SKU (raw, packaging or wrapping) to its current
// unit cost. Missing SKUs are treated as cost-unknown and contribute zero,
// never an error, because historical BOMs may reference retired materials.
type CostIndex map[string]decimal.Decimal

// BuildCostIndex flattens the three material collections into one lookup.
func BuildCostIndex(s *State) CostIndex {
	idx := make(CostIndex, len(s.RawMaterials)+len(s.PackagingMaterials)+len(s.WrappingMaterials))
	for _, m := range s.RawMaterials {
		idx[m.SKU] = m.Cost
	}
	for _, m := range s.PackagingMaterials {
		idx[m.SKU] = m.Cost
	}
	for _, m := range s.WrappingMaterials {
		idx[m.SKU] = m.Cost
	}
	return idx
}

// UnitCost derives the per-unit production cost of a product from its bill of
// materials and current component costs. There is no cached cost field
// anywhere; every view that shows cost recomputes it from here. An absent or
// empty BOM means no cost model and yields zero. Accumulation keeps full
// decimal precision; rounding to two digits happens only at presentation.
func UnitCost(p FinishedProduct, idx CostIndex) decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.BillOfMaterials {
		cost, ok := idx[line.ComponentSKU]
		if !ok {
			continue
		}
		total = total.Add(cost.Mul(line.QuantityPerUnit))
	}
	return total
}

// TotalStockCost is the unit cost multiplied by current stock on hand.
func TotalStockCost(p FinishedProduct, idx CostIndex) decimal.Decimal {
	return UnitCost(p, idx).Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// AddBOMLine appends a component line to the product's bill of materials.
// Duplicate components and non-positive per-unit quantities are rejected;
// the product's stock and price fields are never touched, BOM editing is
// metadata-only until the next cost read.
func AddBOMLine(p *FinishedProduct, line BOMLine) error {
	if line.QuantityPerUnit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidComponentQty
	}
	for _, existing := range p.BillOfMaterials {
		if existing.ComponentSKU == line.ComponentSKU {
			return ErrDuplicateComponent
		}
	}
	p.BillOfMaterials = append(p.BillOfMaterials, line)
	return nil
}

// RemoveBOMLine drops the line for the given component SKU. No cascading
// effects.
func RemoveBOMLine(p *FinishedProduct, componentSKU string) error {
	for i, line := range p.BillOfMaterials {
		if line.ComponentSKU == componentSKU {
			p.BillOfMaterials = append(p.BillOfMaterials[:i], p.BillOfMaterials[i+1:]...)
			return nil
		}
	}
	return ErrComponentNotFound
}

// UpdateBOMLineQuantity sets the per-unit quantity for an existing component.
// Negative values are clamped to zero, matching the console's inline editor.
func UpdateBOMLineQuantity(p *FinishedProduct, componentSKU string, qty decimal.Decimal) error {
	for i := range p.BillOfMaterials {
		if p.BillOfMaterials[i].ComponentSKU == componentSKU {
			if qty.IsNegative() {
				qty = decimal.Zero
			}
			p.BillOfMaterials[i].QuantityPerUnit = qty
			return nil
		}
	}
	return ErrComponentNotFound
}
