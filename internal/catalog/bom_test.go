package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func lavenderFactory() *State {
	return &State{
		RawMaterials: []RawMaterial{
			{ID: "RM-001", SKU: "LAV-OIL-1L", Name: "زيت اللافندر الخام", Quantity: 150, Unit: UnitKilogram, ReorderLevel: 50, Cost: decimal.NewFromInt(850)},
			{ID: "RM-002", SKU: "BEES-WAX-5K", Name: "شمع العسل", Quantity: 80, Unit: UnitKilogram, ReorderLevel: 20, Cost: decimal.NewFromInt(300)},
		},
		PackagingMaterials: []PackagingMaterial{
			{ID: "PM-001", SKU: "JAR-50ML", Name: "برطمان زجاجي 50 مل", Quantity: 2500, ReorderLevel: 500, Cost: decimal.NewFromFloat(5.5)},
		},
		WrappingMaterials: []WrappingMaterial{
			{ID: "WM-001", SKU: "BOX-SML", Name: "علبة كرتون صغيرة", Quantity: 1800, ReorderLevel: 300, Cost: decimal.NewFromInt(2)},
		},
		FinishedProducts: []FinishedProduct{
			{
				ID:       "FP-001",
				SKU:      "LAV-CREAM-50",
				Name:     "كريم اللافندر 50 مل",
				Quantity: 750,
				BillOfMaterials: []BOMLine{
					{ComponentSKU: "LAV-OIL-1L", ComponentType: WarehouseRawMaterials, QuantityPerUnit: decimal.NewFromFloat(0.05)},
					{ComponentSKU: "BEES-WAX-5K", ComponentType: WarehouseRawMaterials, QuantityPerUnit: decimal.NewFromFloat(0.01)},
					{ComponentSKU: "JAR-50ML", ComponentType: WarehousePackaging, QuantityPerUnit: decimal.NewFromInt(1)},
					{ComponentSKU: "BOX-SML", ComponentType: WarehouseWrapping, QuantityPerUnit: decimal.NewFromInt(1)},
				},
			},
		},
	}
}

func TestUnitCostLavenderCream(t *testing.T) {
	st := lavenderFactory()
	idx := BuildCostIndex(st)
	p := *st.FindProduct("LAV-CREAM-50")

	// 850*0.05 + 300*0.01 + 5.5 + 2 = 42.5 + 3 + 5.5 + 2 = 53
	unit := UnitCost(p, idx)
	require.True(t, unit.Equal(decimal.NewFromInt(53)), unit.String())

	total := TotalStockCost(p, idx)
	require.True(t, total.Equal(decimal.NewFromInt(39750)), total.String())
	require.Equal(t, "39750.00", total.StringFixed(2))
}

func TestCostLinearity(t *testing.T) {
	st := lavenderFactory()
	idx := BuildCostIndex(st)
	p := *st.FindProduct("LAV-CREAM-50")

	for _, qty := range []int{0, 1, 17, 750, 10000} {
		p.Quantity = qty
		want := UnitCost(p, idx).Mul(decimal.NewFromInt(int64(qty)))
		require.True(t, TotalStockCost(p, idx).Equal(want), "quantity %d", qty)
	}
}

func TestUnitCostMissingComponentContributesZero(t *testing.T) {
	st := lavenderFactory()
	p := st.FindProduct("LAV-CREAM-50")
	p.BillOfMaterials = append(p.BillOfMaterials, BOMLine{
		ComponentSKU:    "RETIRED-SKU",
		ComponentType:   WarehouseRawMaterials,
		QuantityPerUnit: decimal.NewFromInt(3),
	})
	idx := BuildCostIndex(st)
	require.True(t, UnitCost(*p, idx).Equal(decimal.NewFromInt(53)))
}

func TestUnitCostEmptyBOM(t *testing.T) {
	idx := CostIndex{"X": decimal.NewFromInt(10)}
	require.True(t, UnitCost(FinishedProduct{SKU: "NO-BOM"}, idx).IsZero())
	require.True(t, TotalStockCost(FinishedProduct{SKU: "NO-BOM", Quantity: 40}, idx).IsZero())
}

func TestUnitCostKeepsFullPrecision(t *testing.T) {
	idx := CostIndex{
		"A": decimal.NewFromFloat(0.1),
		"B": decimal.NewFromFloat(0.2),
	}
	p := FinishedProduct{
		SKU:      "P",
		Quantity: 3,
		BillOfMaterials: []BOMLine{
			{ComponentSKU: "A", QuantityPerUnit: decimal.NewFromInt(1)},
			{ComponentSKU: "B", QuantityPerUnit: decimal.NewFromInt(1)},
		},
	}
	// no float drift: 0.1 + 0.2 is exactly 0.3
	require.True(t, UnitCost(p, idx).Equal(decimal.NewFromFloat(0.3)))
	require.True(t, TotalStockCost(p, idx).Equal(decimal.NewFromFloat(0.9)))
}

func TestAddBOMLineRejectsDuplicateComponent(t *testing.T) {
	st := lavenderFactory()
	p := st.FindProduct("LAV-CREAM-50")

	err := AddBOMLine(p, BOMLine{ComponentSKU: "JAR-50ML", ComponentType: WarehousePackaging, QuantityPerUnit: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrDuplicateComponent)
	require.Len(t, p.BillOfMaterials, 4)
}

func TestAddBOMLineRejectsNonPositiveQuantity(t *testing.T) {
	st := lavenderFactory()
	p := st.FindProduct("LAV-CREAM-50")

	err := AddBOMLine(p, BOMLine{ComponentSKU: "NEW-SKU", QuantityPerUnit: decimal.Zero})
	require.ErrorIs(t, err, ErrInvalidComponentQty)

	err = AddBOMLine(p, BOMLine{ComponentSKU: "NEW-SKU", QuantityPerUnit: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, ErrInvalidComponentQty)
	require.Len(t, p.BillOfMaterials, 4)
}

func TestBOMEditingIsMetadataOnly(t *testing.T) {
	st := lavenderFactory()
	p := st.FindProduct("LAV-CREAM-50")

	require.NoError(t, AddBOMLine(p, BOMLine{ComponentSKU: "LABEL-01", ComponentType: WarehouseWrapping, QuantityPerUnit: decimal.NewFromInt(1)}))
	require.NoError(t, RemoveBOMLine(p, "BOX-SML"))
	require.NoError(t, UpdateBOMLineQuantity(p, "JAR-50ML", decimal.NewFromInt(2)))

	require.Equal(t, 750, p.Quantity, "stock is never touched by BOM edits")
	require.Len(t, p.BillOfMaterials, 4)
	require.ErrorIs(t, RemoveBOMLine(p, "BOX-SML"), ErrComponentNotFound)
}

func TestUpdateBOMLineQuantityClampsNegative(t *testing.T) {
	st := lavenderFactory()
	p := st.FindProduct("LAV-CREAM-50")

	require.NoError(t, UpdateBOMLineQuantity(p, "JAR-50ML", decimal.NewFromInt(-5)))
	require.True(t, p.BillOfMaterials[2].QuantityPerUnit.IsZero())
}
