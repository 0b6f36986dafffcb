package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/abkrino/cozmo-factor/internal/catalog"
)

func lavenderState() *catalog.State {
	return &catalog.State{
		FinishedProducts: []catalog.FinishedProduct{
			{
				ID:           "FP-001",
				SKU:          "LAV-CREAM-50",
				Name:         "كريم اللافندر 50 مل",
				Quantity:     750,
				ReorderLevel: 100,
				PublicPrice:  decimal.NewFromInt(120),
				ProductionHistory: []catalog.ProductionHistoryEntry{
					{OrderID: "PO-1024", QuantityAdded: 1000, Date: "2024-07-18"},
				},
				LastUpdated: "2024-07-21",
			},
		},
	}
}

func TestApplyProductionCompletionExistingProduct(t *testing.T) {
	st := lavenderState()

	ApplyProductionCompletion(st, Completion{
		OrderID:     "PO-1025",
		ProductSKU:  "LAV-CREAM-50",
		ProductName: "كريم اللافندر 50 مل",
		Quantity:    500,
		Date:        "2024-07-24",
	})

	p := st.FindProduct("LAV-CREAM-50")
	require.NotNil(t, p)
	require.Equal(t, 1250, p.Quantity)
	require.Len(t, p.ProductionHistory, 2)
	require.Equal(t, "PO-1025", p.ProductionHistory[1].OrderID)
	require.Equal(t, 500, p.ProductionHistory[1].QuantityAdded)
	require.Equal(t, "2024-07-24", p.LastUpdated)
}

func TestApplyProductionCompletionSynthesizesProduct(t *testing.T) {
	st := lavenderState()

	ApplyProductionCompletion(st, Completion{
		OrderID:     "PO-2001",
		ProductSKU:  "ROSE-SOAP-100",
		ProductName: "صابون الورد 100 جم",
		Quantity:    300,
		Date:        "2024-08-01",
	})

	require.Len(t, st.FinishedProducts, 2)
	p := st.FindProduct("ROSE-SOAP-100")
	require.NotNil(t, p)
	require.Equal(t, "FP-ROSE-SOAP-100", p.ID)
	require.Equal(t, 300, p.Quantity)
	require.Equal(t, 0, p.ReorderLevel)
	require.True(t, p.PublicPrice.IsZero())
	require.Empty(t, p.BillOfMaterials)
	require.Len(t, p.ProductionHistory, 1)
	require.Equal(t, "PO-2001", p.ProductionHistory[0].OrderID)

	// the existing product is untouched
	require.Equal(t, 750, st.FindProduct("LAV-CREAM-50").Quantity)
}

func TestApplyProductionCompletionAccumulates(t *testing.T) {
	st := lavenderState()

	ApplyProductionCompletion(st, Completion{OrderID: "PO-A", ProductSKU: "LAV-CREAM-50", Quantity: 100, Date: "2024-08-01"})
	ApplyProductionCompletion(st, Completion{OrderID: "PO-B", ProductSKU: "LAV-CREAM-50", Quantity: 250, Date: "2024-08-02"})

	p := st.FindProduct("LAV-CREAM-50")
	require.Equal(t, 1100, p.Quantity)
	require.Len(t, p.ProductionHistory, 3)
}

func TestApplySale(t *testing.T) {
	st := lavenderState()

	ApplySale(st, "2024-07-25", []ShipmentLine{
		{ProductSKU: "LAV-CREAM-50", Quantity: 100},
		{ProductSKU: "GHOST-SKU", Quantity: 40},
	})

	p := st.FindProduct("LAV-CREAM-50")
	require.Equal(t, 650, p.Quantity)
	require.Equal(t, "2024-07-25", p.LastUpdated)
	// unknown SKUs are skipped, not created
	require.Len(t, st.FinishedProducts, 1)
}
