package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/abkrino/cozmo-factor/internal/shared"
)

type memoryStore struct {
	state *State
}

func (m *memoryStore) UpdateCatalog(fn func(*State) error) error {
	return fn(m.state)
}

func (m *memoryStore) ViewCatalog(fn func(State)) {
	fn(*m.state)
}

func newTestService(st *State) *Service {
	return NewService(&memoryStore{state: st}, shared.FixedClock("2025-07-20"))
}

func TestAddItemRejectsDuplicateSKU(t *testing.T) {
	st := lavenderFactory()
	svc := newTestService(st)

	err := svc.AddItem(NewItemInput{
		Type: ItemTypeRaw,
		SKU:  "LAV-OIL-1L",
		Name: "duplicate",
	})
	require.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestAddItemDuplicateCheckSpansWarehouses(t *testing.T) {
	st := lavenderFactory()
	svc := newTestService(st)

	// a finished-product SKU blocks new raw materials too
	err := svc.AddItem(NewItemInput{Type: ItemTypeRaw, SKU: "LAV-CREAM-50", Name: "clash"})
	require.ErrorIs(t, err, ErrDuplicateSKU)
}

func TestAddItemEachType(t *testing.T) {
	st := lavenderFactory()
	svc := newTestService(st)

	cases := []struct {
		itemType ItemType
		sku      string
	}{
		{ItemTypeRaw, "ROSE-OIL-1L"},
		{ItemTypePackaging, "JAR-100ML"},
		{ItemTypeWrapping, "BOX-LRG"},
		{ItemTypeFinished, "ROSE-CREAM-100"},
	}
	for _, tc := range cases {
		require.NoError(t, svc.AddItem(NewItemInput{
			Type:     tc.itemType,
			SKU:      tc.sku,
			Name:     tc.sku,
			Quantity: 10,
			Cost:     decimal.NewFromInt(7),
		}))
	}

	require.Len(t, st.RawMaterials, 3)
	require.Len(t, st.PackagingMaterials, 2)
	require.Len(t, st.WrappingMaterials, 2)
	require.Len(t, st.FinishedProducts, 2)
	require.Equal(t, "2025-07-20", st.RawMaterials[2].LastUpdated)
}

func TestCostEndpointView(t *testing.T) {
	svc := newTestService(lavenderFactory())

	pc, err := svc.Cost("LAV-CREAM-50")
	require.NoError(t, err)
	require.True(t, pc.UnitCost.Equal(decimal.NewFromInt(53)))
	require.True(t, pc.TotalStockCost.Equal(decimal.NewFromInt(39750)))

	_, err = svc.Cost("NOPE")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestComponentMutations(t *testing.T) {
	st := lavenderFactory()
	svc := newTestService(st)

	require.NoError(t, svc.AddComponent("LAV-CREAM-50", BOMLine{
		ComponentSKU:    "LABEL-01",
		ComponentType:   WarehouseWrapping,
		QuantityPerUnit: decimal.NewFromInt(1),
	}))
	require.NoError(t, svc.SetComponentQuantity("LAV-CREAM-50", "JAR-50ML", decimal.NewFromInt(2)))
	require.NoError(t, svc.RemoveComponent("LAV-CREAM-50", "BOX-SML"))

	p := st.FindProduct("LAV-CREAM-50")
	require.Len(t, p.BillOfMaterials, 4)

	require.ErrorIs(t, svc.AddComponent("NOPE", BOMLine{ComponentSKU: "X", QuantityPerUnit: decimal.NewFromInt(1)}), ErrProductNotFound)
	require.ErrorIs(t, svc.RemoveComponent("LAV-CREAM-50", "BOX-SML"), ErrComponentNotFound)
}

func TestLowStock(t *testing.T) {
	st := lavenderFactory()
	st.RawMaterials[0].Quantity = 50 // at reorder level counts as low
	st.WrappingMaterials[0].Quantity = 100
	svc := newTestService(st)

	low := svc.LowStock()
	require.Len(t, low, 2)

	skus := []string{low[0].SKU, low[1].SKU}
	require.Contains(t, skus, "LAV-OIL-1L")
	require.Contains(t, skus, "BOX-SML")
}
