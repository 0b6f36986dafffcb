package production

import (
	"fmt"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/inventory"
	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the shared store the production service needs.
// Updates see the catalog state too because completing an order mutates
// finished-goods stock in the same command.
type StateStore interface {
	UpdateProduction(fn func(*State, *catalog.State) error) error
	ViewProduction(fn func(State))
}

// Metrics receives engine-level counters.
type Metrics interface {
	ProductionCompletionApplied()
}

// Service coordinates production order commands.
type Service struct {
	store   StateStore
	clock   shared.Clock
	metrics Metrics
}

// NewService builds Service. metrics may be nil.
func NewService(store StateStore, clock shared.Clock, metrics Metrics) *Service {
	return &Service{store: store, clock: clock, metrics: metrics}
}

// NewOrderInput carries the create-order form fields.
type NewOrderInput struct {
	ProductSKU  string
	ProductName string
	Quantity    int
	StartDate   string
	EndDate     string
}

// CreateOrder registers a new PENDING order. Orders may target SKUs that do
// not exist yet; completion synthesizes the product in that case.
func (s *Service) CreateOrder(in NewOrderInput) (Order, error) {
	order := Order{
		ID:          shared.NewCode("PO"),
		ProductSKU:  in.ProductSKU,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      StatusPending,
	}
	err := s.store.UpdateProduction(func(st *State, _ *catalog.State) error {
		st.Orders = append(st.Orders, order)
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// ChangeStatus moves an order to newStatus and dispatches the side effects
// the transition table yields. The status write and the stock effect happen
// inside one store update, so readers never observe a completed order whose
// output has not entered stock.
func (s *Service) ChangeStatus(orderID string, newStatus Status) (Order, error) {
	var (
		updated Order
		applied bool
	)
	err := s.store.UpdateProduction(func(st *State, cat *catalog.State) error {
		order := st.FindOrder(orderID)
		if order == nil {
			return fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		for _, effect := range Transition(order.Status, newStatus) {
			if effect == EffectApplyCompletion {
				inventory.ApplyProductionCompletion(cat, inventory.Completion{
					OrderID:     order.ID,
					ProductSKU:  order.ProductSKU,
					ProductName: order.ProductName,
					Quantity:    order.Quantity,
					Date:        s.clock.Today(),
				})
				applied = true
			}
		}
		// the status field updates for every change, effectful or not
		order.Status = newStatus
		updated = *order
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	if applied && s.metrics != nil {
		s.metrics.ProductionCompletionApplied()
	}
	return updated, nil
}

// ListOrders returns a copy of all orders in insertion order.
func (s *Service) ListOrders() []Order {
	var out []Order
	s.store.ViewProduction(func(st State) {
		out = append(out, st.Orders...)
	})
	return out
}
