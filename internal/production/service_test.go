package production

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/shared"
)

type memoryStore struct {
	production State
	catalog    catalog.State
}

func (m *memoryStore) UpdateProduction(fn func(*State, *catalog.State) error) error {
	return fn(&m.production, &m.catalog)
}

func (m *memoryStore) ViewProduction(fn func(State)) {
	fn(m.production)
}

func newTestStore() *memoryStore {
	return &memoryStore{
		production: State{Orders: []Order{
			{ID: "PO-1025", ProductSKU: "LAV-CREAM-50", ProductName: "كريم اللافندر 50 مل", Quantity: 500, Status: StatusPending},
		}},
		catalog: catalog.State{FinishedProducts: []catalog.FinishedProduct{
			{ID: "FP-001", SKU: "LAV-CREAM-50", Name: "كريم اللافندر 50 مل", Quantity: 750},
		}},
	}
}

func TestTransitionTable(t *testing.T) {
	statuses := []Status{StatusPending, StatusInProgress, StatusCompleted, StatusDelayed}
	for _, from := range statuses {
		for _, to := range statuses {
			effects := Transition(from, to)
			if to == StatusCompleted && from != StatusCompleted {
				require.Equal(t, []SideEffect{EffectApplyCompletion}, effects, "%s -> %s", from, to)
			} else {
				require.Empty(t, effects, "%s -> %s", from, to)
			}
		}
	}
}

func TestChangeStatusAppliesCompletionOnce(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, shared.FixedClock("2024-07-24"), nil)

	order, err := svc.ChangeStatus("PO-1025", StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, order.Status)

	p := store.catalog.FindProduct("LAV-CREAM-50")
	require.Equal(t, 1250, p.Quantity)
	require.Len(t, p.ProductionHistory, 1)
	require.Equal(t, 500, p.ProductionHistory[0].QuantityAdded)
	require.Equal(t, "2024-07-24", p.ProductionHistory[0].Date)

	// selecting COMPLETED again must not double-apply stock
	_, err = svc.ChangeStatus("PO-1025", StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, 1250, p.Quantity)
	require.Len(t, p.ProductionHistory, 1)
}

func TestLeavingCompletedDoesNotReverseStock(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, shared.FixedClock("2024-07-24"), nil)

	_, err := svc.ChangeStatus("PO-1025", StatusCompleted)
	require.NoError(t, err)
	_, err = svc.ChangeStatus("PO-1025", StatusDelayed)
	require.NoError(t, err)

	p := store.catalog.FindProduct("LAV-CREAM-50")
	require.Equal(t, 1250, p.Quantity)

	// completing again after the round trip applies a second time: every
	// non-COMPLETED to COMPLETED edge is a real completion event
	_, err = svc.ChangeStatus("PO-1025", StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, 1750, p.Quantity)
	require.Len(t, p.ProductionHistory, 2)
}

func TestChangeStatusUnknownOrder(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, shared.FixedClock("2024-07-24"), nil)

	_, err := svc.ChangeStatus("PO-MISSING", StatusInProgress)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCreateOrderStartsPending(t *testing.T) {
	store := newTestStore()
	svc := NewService(store, shared.FixedClock("2024-07-24"), nil)

	order, err := svc.CreateOrder(NewOrderInput{
		ProductSKU:  "ROSE-SOAP-100",
		ProductName: "صابون الورد 100 جم",
		Quantity:    200,
		StartDate:   "2024-08-01",
		EndDate:     "2024-08-03",
	})
	require.NoError(t, err)
	require.Equal(t, StatusPending, order.Status)
	require.NotEmpty(t, order.ID)
	require.Len(t, svc.ListOrders(), 2)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "IN_PROGRESS", "COMPLETED", "DELAYED"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		require.Equal(t, Status(valid), status)
	}
	_, err := ParseStatus("SHIPPED")
	require.ErrorIs(t, err, ErrUnknownStatus)
}
