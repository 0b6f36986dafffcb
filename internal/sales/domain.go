package sales

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Channel is the price tier an invoice sells through.
type Channel string

const (
	// ChannelPublic sells at the list price.
	ChannelPublic Channel = "PUBLIC"
	// ChannelWholesale sells at the wholesale tier.
	ChannelWholesale Channel = "WHOLESALE"
	// ChannelDistributor sells at the distributor tier.
	ChannelDistributor Channel = "DISTRIBUTOR"
	// ChannelAgent sells at the agent tier.
	ChannelAgent Channel = "AGENT"
)

// Line is one invoice line. PublicPrice is a point-in-time snapshot taken
// when the line was first added; it is never re-fetched from the catalog,
// because the discount percentage is derived against it.
type Line struct {
	ProductSKU         string          `json:"product_sku"`
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	PublicPrice        decimal.Decimal `json:"public_price"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	LineTotal          decimal.Decimal `json:"line_total"`
}

// Sale is an immutable committed invoice.
type Sale struct {
	ID                 string          `json:"id"`
	OrderID            string          `json:"order_id"`
	CustomerName       string          `json:"customer_name"`
	Channel            Channel         `json:"channel"`
	Date               string          `json:"date"`
	Items              []Line          `json:"items"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	AdditionalDiscount decimal.Decimal `json:"additional_discount"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Notes              string          `json:"notes,omitempty"`
}

// PaymentType distinguishes cash and credit customers.
type PaymentType string

const (
	// PaymentCash pays on delivery.
	PaymentCash PaymentType = "CASH"
	// PaymentCredit pays against a credit limit.
	PaymentCredit PaymentType = "CREDIT"
)

// CustomerStatus marks whether a customer may place orders.
type CustomerStatus string

const (
	// CustomerActive may buy.
	CustomerActive CustomerStatus = "ACTIVE"
	// CustomerInactive is retired.
	CustomerInactive CustomerStatus = "INACTIVE"
)

// Customer is a buyer record.
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PaymentType   PaymentType     `json:"payment_type"`
	ContactPerson string          `json:"contact_person"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	JoinDate      string          `json:"join_date"`
	Status        CustomerStatus  `json:"status"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
}

// Payment is money received from a customer.
type Payment struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
}

// ReturnStatus is the review state of a return request.
type ReturnStatus string

const (
	// ReturnPending awaits review.
	ReturnPending ReturnStatus = "PENDING"
	// ReturnApproved was accepted.
	ReturnApproved ReturnStatus = "APPROVED"
	// ReturnRejected was declined.
	ReturnRejected ReturnStatus = "REJECTED"
)

// ParseReturnStatus validates a user-supplied return status.
func ParseReturnStatus(s string) (ReturnStatus, error) {
	switch ReturnStatus(s) {
	case ReturnPending, ReturnApproved, ReturnRejected:
		return ReturnStatus(s), nil
	}
	return "", ErrUnknownReturnStatus
}

// ReturnItem is one returned product line. Returns never restock
// automatically; quality control inspects them first.
type ReturnItem struct {
	ProductSKU  string `json:"product_sku"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// ReturnRequest references a committed sales invoice.
type ReturnRequest struct {
	ID              string       `json:"id"`
	ReturnRequestID string       `json:"return_request_id"`
	SalesInvoiceID  string       `json:"sales_invoice_id"`
	CustomerName    string       `json:"customer_name"`
	Items           []ReturnItem `json:"items"`
	Reason          string       `json:"reason"`
	Status          ReturnStatus `json:"status"`
	Date            string       `json:"date"`
}

// State is the sales slice of the shared object graph. Sales and returns are
// kept newest first, matching the console's lists.
type State struct {
	Sales          []Sale
	Customers      []Customer
	Payments       []Payment
	ReturnRequests []ReturnRequest
}

// FindCustomerByName looks a customer up by display name, the console's key.
func (s *State) FindCustomerByName(name string) *Customer {
	for i := range s.Customers {
		if s.Customers[i].Name == name {
			return &s.Customers[i]
		}
	}
	return nil
}

// FindReturn returns a pointer into ReturnRequests by id, or nil.
func (s *State) FindReturn(id string) *ReturnRequest {
	for i := range s.ReturnRequests {
		if s.ReturnRequests[i].ID == id {
			return &s.ReturnRequests[i]
		}
	}
	return nil
}

// ErrNoValidLines indicates a sale draft without a single complete line.
var ErrNoValidLines = errors.New("sales: at least one complete line is required")

// ErrNoCustomer indicates a sale draft without a customer.
var ErrNoCustomer = errors.New("sales: customer is required")

// ErrUnknownCustomer indicates the named customer does not exist.
var ErrUnknownCustomer = errors.New("sales: unknown customer")

// ErrInsufficientStock rejects a sale whose line exceeds current stock.
var ErrInsufficientStock = errors.New("sales: insufficient stock")

// ErrUnknownProduct indicates a line references a SKU missing from the catalog.
var ErrUnknownProduct = errors.New("sales: unknown product")

// ErrDuplicateCustomer indicates the customer name is already registered.
var ErrDuplicateCustomer = errors.New("sales: customer already exists")

// ErrReturnNotFound indicates an unknown return request id.
var ErrReturnNotFound = errors.New("sales: return request not found")

// ErrUnknownReturnStatus indicates a status outside the review set.
var ErrUnknownReturnStatus = errors.New("sales: unknown return status")
