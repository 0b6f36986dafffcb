package production

import "errors"

// Status is the production order lifecycle state. Any status is reachable
// from any other through direct user selection; only the transition into
// COMPLETED carries an inventory consequence.
type Status string

const (
	// StatusPending marks a newly planned order.
	StatusPending Status = "PENDING"
	// StatusInProgress marks an order on the line.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusCompleted marks a finished order whose output entered stock.
	StatusCompleted Status = "COMPLETED"
	// StatusDelayed marks an order behind schedule.
	StatusDelayed Status = "DELAYED"
)

// ParseStatus validates a user-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDelayed:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// Order is one production order against a finished product SKU.
type Order struct {
	ID          string `json:"id"`
	ProductSKU  string `json:"product_sku"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      Status `json:"status"`
}

// State is the production slice of the shared object graph.
type State struct {
	Orders []Order
}

// FindOrder returns a pointer into Orders by id, or nil.
func (s *State) FindOrder(id string) *Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// ErrUnknownStatus indicates a status value outside the lifecycle set.
var ErrUnknownStatus = errors.New("production: unknown status")

// ErrOrderNotFound indicates an unknown order id.
var ErrOrderNotFound = errors.New("production: order not found")
