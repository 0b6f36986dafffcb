package procurement

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/catalog"
)

// PaymentType distinguishes cash and credit suppliers.
type PaymentType string

const (
	// PaymentCash settles on delivery.
	PaymentCash PaymentType = "CASH"
	// PaymentCredit settles against the running balance.
	PaymentCredit PaymentType = "CREDIT"
)

// SupplierStatus marks whether a supplier is still used.
type SupplierStatus string

const (
	// SupplierActive receives new orders.
	SupplierActive SupplierStatus = "ACTIVE"
	// SupplierInactive is retired.
	SupplierInactive SupplierStatus = "INACTIVE"
)

// Supplier is a vendor record.
type Supplier struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	PaymentType       PaymentType     `json:"payment_type"`
	ContactPerson     string          `json:"contact_person"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	Address           string          `json:"address"`
	JoinDate          string          `json:"join_date"`
	Status            SupplierStatus  `json:"status"`
	CreditLimit       decimal.Decimal `json:"credit_limit"`
	MaterialsSupplied []string        `json:"materials_supplied"`
}

// PurchaseStatus is the lifecycle of a purchase order.
type PurchaseStatus string

const (
	// PurchasePending is drafted but not yet placed.
	PurchasePending PurchaseStatus = "PENDING"
	// PurchaseOrdered has been sent to the supplier.
	PurchaseOrdered PurchaseStatus = "ORDERED"
	// PurchaseReceived has arrived at the factory.
	PurchaseReceived PurchaseStatus = "RECEIVED"
	// PurchaseCancelled was withdrawn.
	PurchaseCancelled PurchaseStatus = "CANCELLED"
)

// ParsePurchaseStatus validates a user-supplied purchase status.
func ParsePurchaseStatus(s string) (PurchaseStatus, error) {
	switch PurchaseStatus(s) {
	case PurchasePending, PurchaseOrdered, PurchaseReceived, PurchaseCancelled:
		return PurchaseStatus(s), nil
	}
	return "", ErrUnknownPurchaseStatus
}

// PurchaseItem is one line of a purchase order. Category says which
// warehouse the goods belong to once received.
type PurchaseItem struct {
	ID          string            `json:"id"`
	ItemName    string            `json:"item_name"`
	Category    catalog.Warehouse `json:"category"`
	Quantity    int               `json:"quantity"`
	Unit        catalog.Unit      `json:"unit"`
	CostPerUnit decimal.Decimal   `json:"cost_per_unit"`
}

// PurchaseOrder is a material order placed with a supplier. TotalAmount is
// computed at creation and stored with the order.
type PurchaseOrder struct {
	ID           string          `json:"id"`
	SupplierName string          `json:"supplier_name"`
	Date         string          `json:"date"`
	Items        []PurchaseItem  `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	PaymentType  PaymentType     `json:"payment_type"`
	Status       PurchaseStatus  `json:"status"`
}

// SupplierPayment is money paid out to a supplier.
type SupplierPayment struct {
	ID           string          `json:"id"`
	SupplierName string          `json:"supplier_name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
}

// State is the procurement slice of the shared object graph. Purchase
// orders are kept newest first.
type State struct {
	Suppliers        []Supplier
	PurchaseOrders   []PurchaseOrder
	SupplierPayments []SupplierPayment
}

// FindSupplierByName looks a supplier up by display name.
func (s *State) FindSupplierByName(name string) *Supplier {
	for i := range s.Suppliers {
		if s.Suppliers[i].Name == name {
			return &s.Suppliers[i]
		}
	}
	return nil
}

// FindPurchaseOrder returns a pointer into PurchaseOrders by id, or nil.
func (s *State) FindPurchaseOrder(id string) *PurchaseOrder {
	for i := range s.PurchaseOrders {
		if s.PurchaseOrders[i].ID == id {
			return &s.PurchaseOrders[i]
		}
	}
	return nil
}

// ErrDuplicateSupplier indicates the supplier name is already registered.
var ErrDuplicateSupplier = errors.New("procurement: supplier already exists")

// ErrUnknownSupplier indicates the named supplier does not exist.
var ErrUnknownSupplier = errors.New("procurement: unknown supplier")

// ErrNoItems rejects a purchase order without a single valid line.
var ErrNoItems = errors.New("procurement: at least one item is required")

// ErrPurchaseOrderNotFound indicates an unknown purchase order id.
var ErrPurchaseOrderNotFound = errors.New("procurement: purchase order not found")

// ErrUnknownPurchaseStatus indicates a status outside the lifecycle set.
var ErrUnknownPurchaseStatus = errors.New("procurement: unknown purchase status")
