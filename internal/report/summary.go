// Package report builds the dashboard summary the console's landing
// screen renders: stock valuation, sales totals and attention lists.
package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/production"
	"github.com/abkrino/cozmo-factor/internal/quality"
	"github.com/abkrino/cozmo-factor/internal/sales"
	"github.com/abkrino/cozmo-factor/internal/store"
)

// Summary is one dashboard payload. Display fields carry the Arabic
// grouped rendering of their numeric counterparts.
type Summary struct {
	FinishedUnits          int             `json:"finished_units"`
	InventoryValuation     decimal.Decimal `json:"inventory_valuation"`
	InventoryValuationText string          `json:"inventory_valuation_display"`

	SalesCount       int             `json:"sales_count"`
	SalesRevenue     decimal.Decimal `json:"sales_revenue"`
	SalesRevenueText string          `json:"sales_revenue_display"`

	OpenProductionOrders int `json:"open_production_orders"`
	PendingInspections   int `json:"pending_inspections"`
	PendingReturns       int `json:"pending_returns"`
	LowStockItems        int `json:"low_stock_items"`
}

// arabic renders grouped decimal amounts with Eastern Arabic digits, the
// way the console shows money.
var arabic = message.NewPrinter(language.Arabic)

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return arabic.Sprintf("%.2f", f)
}

// BuildSummary derives the dashboard from one state snapshot.
func BuildSummary(st store.State) Summary {
	idx := catalog.BuildCostIndex(&st.Catalog)

	var s Summary
	valuation := decimal.Zero
	for _, p := range st.Catalog.FinishedProducts {
		s.FinishedUnits += p.Quantity
		valuation = valuation.Add(catalog.TotalStockCost(p, idx))
	}
	s.InventoryValuation = valuation
	s.InventoryValuationText = formatAmount(valuation)

	revenue := decimal.Zero
	for _, sale := range st.Sales.Sales {
		revenue = revenue.Add(sale.TotalPrice)
	}
	s.SalesCount = len(st.Sales.Sales)
	s.SalesRevenue = revenue
	s.SalesRevenueText = formatAmount(revenue)

	for _, o := range st.Production.Orders {
		if o.Status != production.StatusCompleted {
			s.OpenProductionOrders++
		}
	}
	for _, l := range st.Quality.Logs {
		if l.Status == quality.StatusPending {
			s.PendingInspections++
		}
	}
	for _, r := range st.Sales.ReturnRequests {
		if r.Status == sales.ReturnPending {
			s.PendingReturns++
		}
	}
	s.LowStockItems = countLowStock(st.Catalog)
	return s
}

func countLowStock(c catalog.State) int {
	n := 0
	for _, m := range c.RawMaterials {
		if m.Quantity <= m.ReorderLevel {
			n++
		}
	}
	for _, m := range c.PackagingMaterials {
		if m.Quantity <= m.ReorderLevel {
			n++
		}
	}
	for _, m := range c.WrappingMaterials {
		if m.Quantity <= m.ReorderLevel {
			n++
		}
	}
	for _, p := range c.FinishedProducts {
		if p.Quantity <= p.ReorderLevel {
			n++
		}
	}
	return n
}
