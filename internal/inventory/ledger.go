// Package inventory holds the ledger engine: the only code allowed to mutate
// finished-product stock. Production completions add stock, sale commits
// subtract it; everything else treats quantity as read-only.
package inventory

import (
	"github.com/abkrino/cozmo-factor/internal/catalog"
)

// Completion is the stock-affecting event raised when a production order
// transitions into COMPLETED. Callers must guarantee edge-triggering: the
// event is built once per transition out of a non-COMPLETED status, never on
// re-selecting COMPLETED. The transition table in the production package is
// the layer that enforces this.
type Completion struct {
	OrderID     string
	ProductSKU  string
	ProductName string
	Quantity    int
	Date        string
}

// ApplyProductionCompletion adds the completed quantity to the product's
// stock and appends one history entry. When the SKU is unknown a new finished
// product is synthesized with zeroed reorder and price fields, an empty bill
// of materials, and the event as its first history entry. Exactly one product
// is touched; multiple orders for the same SKU accumulate additively.
func ApplyProductionCompletion(st *catalog.State, c Completion) {
	entry := catalog.ProductionHistoryEntry{
		OrderID:       c.OrderID,
		QuantityAdded: c.Quantity,
		Date:          c.Date,
	}
	if p := st.FindProduct(c.ProductSKU); p != nil {
		p.Quantity += c.Quantity
		p.ProductionHistory = append(p.ProductionHistory, entry)
		p.LastUpdated = c.Date
		return
	}
	st.FinishedProducts = append(st.FinishedProducts, catalog.FinishedProduct{
		ID:                "FP-" + c.ProductSKU,
		SKU:               c.ProductSKU,
		Name:              c.ProductName,
		Quantity:          c.Quantity,
		ProductionHistory: []catalog.ProductionHistoryEntry{entry},
		LastUpdated:       c.Date,
	})
}

// ShipmentLine is one sold line to subtract from stock.
type ShipmentLine struct {
	ProductSKU string
	Quantity   int
}

// ApplySale decrements stock for every line of a committed sale. Stock
// sufficiency is validated upstream by the sales engine; this layer enforces
// no negative-quantity guard. Lines referencing unknown SKUs are skipped so a
// half-applied sale can never crash the ledger.
func ApplySale(st *catalog.State, date string, lines []ShipmentLine) {
	for _, line := range lines {
		p := st.FindProduct(line.ProductSKU)
		if p == nil {
			continue
		}
		p.Quantity -= line.Quantity
		p.LastUpdated = date
	}
}
