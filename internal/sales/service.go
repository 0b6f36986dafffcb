package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/inventory"
	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the shared store the sales service needs.
// Commands see the catalog state too: pricing reads it and a committed sale
// subtracts stock in the same update.
type StateStore interface {
	UpdateSales(fn func(*State, *catalog.State) error) error
	ViewSales(fn func(State, catalog.State))
}

// Metrics receives engine-level counters.
type Metrics interface {
	SaleCommitted()
	SaleRejected()
}

// Service runs the pricing engine and sale/customer/return commands.
type Service struct {
	store   StateStore
	clock   shared.Clock
	metrics Metrics
}

// NewService builds Service. metrics may be nil.
func NewService(store StateStore, clock shared.Clock, metrics Metrics) *Service {
	return &Service{store: store, clock: clock, metrics: metrics}
}

// DraftLine is one row of a sale draft. A row with no SKU or a non-positive
// quantity is a blank row and is skipped. DiscountPercentage, when set,
// overrides the channel-derived discount and recomputes the unit price from
// the public-price snapshot.
type DraftLine struct {
	ProductSKU         string
	Quantity           int
	DiscountPercentage *decimal.Decimal
}

// Draft is a sale submission before validation.
type Draft struct {
	CustomerName       string
	Channel            Channel
	Date               string
	Lines              []DraftLine
	AdditionalDiscount decimal.Decimal
	Notes              string
}

func (s *Service) priceDraft(d Draft, cat *catalog.State) ([]Line, error) {
	var lines []Line
	for _, row := range d.Lines {
		if row.ProductSKU == "" || row.Quantity <= 0 {
			continue
		}
		p := cat.FindProduct(row.ProductSKU)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, row.ProductSKU)
		}
		line := NewLine(*p, d.Channel, row.Quantity)
		if row.DiscountPercentage != nil {
			line.DiscountPercentage = *row.DiscountPercentage
			line.UnitPrice = UnitPriceFromDiscount(line.PublicPrice, line.DiscountPercentage)
			line.LineTotal = LineTotal(line.UnitPrice, line.Quantity)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, ErrNoValidLines
	}
	return lines, nil
}

// Preview prices a draft without committing anything: resolved lines plus
// invoice totals, for the live form.
func (s *Service) Preview(d Draft) ([]Line, InvoiceTotals, error) {
	var (
		lines []Line
		err   error
	)
	s.store.ViewSales(func(_ State, cat catalog.State) {
		lines, err = s.priceDraft(d, &cat)
	})
	if err != nil {
		return nil, InvoiceTotals{}, err
	}
	return lines, ComputeInvoiceTotals(lines, d.AdditionalDiscount), nil
}

// Reprice re-resolves already-priced form lines after the operator switches
// channel mid-draft. Each line keeps its public-price snapshot; only the
// tier price, discount and total change.
func (s *Service) Reprice(lines []Line, ch Channel, additionalDiscount decimal.Decimal) ([]Line, InvoiceTotals) {
	var out []Line
	s.store.ViewSales(func(_ State, cat catalog.State) {
		out = RepriceForChannel(lines, ch, &cat)
	})
	return out, ComputeInvoiceTotals(out, additionalDiscount)
}

// Commit validates the draft and, on success, freezes it into a Sale and
// hands the lines to the inventory ledger. Validation is all-or-nothing: any
// failing line aborts the whole sale with stock untouched.
func (s *Service) Commit(d Draft) (Sale, error) {
	var sale Sale
	err := s.store.UpdateSales(func(st *State, cat *catalog.State) error {
		if d.CustomerName == "" {
			return ErrNoCustomer
		}
		if st.FindCustomerByName(d.CustomerName) == nil {
			return fmt.Errorf("%w: %s", ErrUnknownCustomer, d.CustomerName)
		}
		lines, err := s.priceDraft(d, cat)
		if err != nil {
			return err
		}
		for _, line := range lines {
			p := cat.FindProduct(line.ProductSKU)
			if p.Quantity < line.Quantity {
				return fmt.Errorf("%w: %s has %d, requested %d",
					ErrInsufficientStock, line.ProductName, p.Quantity, line.Quantity)
			}
		}
		date := d.Date
		if date == "" {
			date = s.clock.Today()
		}
		totals := ComputeInvoiceTotals(lines, d.AdditionalDiscount)
		sale = Sale{
			ID:                 shared.NewCode("SALE"),
			OrderID:            shared.NewCode("ORD"),
			CustomerName:       d.CustomerName,
			Channel:            d.Channel,
			Date:               date,
			Items:              lines,
			Subtotal:           totals.Subtotal,
			AdditionalDiscount: d.AdditionalDiscount,
			TotalPrice:         totals.FinalTotalPrice,
			Notes:              d.Notes,
		}
		st.Sales = append([]Sale{sale}, st.Sales...)

		shipment := make([]inventory.ShipmentLine, 0, len(lines))
		for _, line := range lines {
			shipment = append(shipment, inventory.ShipmentLine{ProductSKU: line.ProductSKU, Quantity: line.Quantity})
		}
		inventory.ApplySale(cat, s.clock.Today(), shipment)
		return nil
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.SaleRejected()
		}
		return Sale{}, err
	}
	if s.metrics != nil {
		s.metrics.SaleCommitted()
	}
	return sale, nil
}

// ListSales returns invoices newest first.
func (s *Service) ListSales() []Sale {
	var out []Sale
	s.store.ViewSales(func(st State, _ catalog.State) {
		out = append(out, st.Sales...)
	})
	return out
}

// NewCustomerInput carries the add-customer form fields.
type NewCustomerInput struct {
	Name          string
	PaymentType   PaymentType
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreditLimit   decimal.Decimal
}

// AddCustomer registers an active customer. Names are unique because sales
// reference customers by name.
func (s *Service) AddCustomer(in NewCustomerInput) (Customer, error) {
	customer := Customer{
		ID:            shared.NewCode("CUST"),
		Name:          in.Name,
		PaymentType:   in.PaymentType,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		JoinDate:      s.clock.Today(),
		Status:        CustomerActive,
		CreditLimit:   in.CreditLimit,
	}
	err := s.store.UpdateSales(func(st *State, _ *catalog.State) error {
		if st.FindCustomerByName(in.Name) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateCustomer, in.Name)
		}
		st.Customers = append(st.Customers, customer)
		return nil
	})
	if err != nil {
		return Customer{}, err
	}
	return customer, nil
}

// ListCustomers returns customers in insertion order.
func (s *Service) ListCustomers() []Customer {
	var out []Customer
	s.store.ViewSales(func(st State, _ catalog.State) {
		out = append(out, st.Customers...)
	})
	return out
}

// AddPayment records money received from a customer.
func (s *Service) AddPayment(customerName string, amount decimal.Decimal, date string) (Payment, error) {
	if date == "" {
		date = s.clock.Today()
	}
	payment := Payment{
		ID:           shared.NewCode("PAY"),
		CustomerName: customerName,
		Date:         date,
		Amount:       amount,
	}
	err := s.store.UpdateSales(func(st *State, _ *catalog.State) error {
		if st.FindCustomerByName(customerName) == nil {
			return fmt.Errorf("%w: %s", ErrUnknownCustomer, customerName)
		}
		st.Payments = append(st.Payments, payment)
		return nil
	})
	if err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// CustomerBalance is the running credit position of one customer.
type CustomerBalance struct {
	CustomerName string          `json:"customer_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Balance      decimal.Decimal `json:"balance"`
}

// Balance sums invoices minus payments for the customer.
func (s *Service) Balance(customerName string) (CustomerBalance, error) {
	var (
		out   CustomerBalance
		found bool
	)
	s.store.ViewSales(func(st State, _ catalog.State) {
		if st.FindCustomerByName(customerName) == nil {
			return
		}
		found = true
		sold := decimal.Zero
		for _, sale := range st.Sales {
			if sale.CustomerName == customerName {
				sold = sold.Add(sale.TotalPrice)
			}
		}
		paid := decimal.Zero
		for _, p := range st.Payments {
			if p.CustomerName == customerName {
				paid = paid.Add(p.Amount)
			}
		}
		out = CustomerBalance{
			CustomerName: customerName,
			TotalSales:   sold,
			TotalPaid:    paid,
			Balance:      sold.Sub(paid),
		}
	})
	if !found {
		return CustomerBalance{}, fmt.Errorf("%w: %s", ErrUnknownCustomer, customerName)
	}
	return out, nil
}

// NewReturnInput carries the add-return form fields.
type NewReturnInput struct {
	SalesInvoiceID string
	CustomerName   string
	Items          []ReturnItem
	Reason         string
}

// CreateReturn registers a PENDING return request against an invoice.
func (s *Service) CreateReturn(in NewReturnInput) (ReturnRequest, error) {
	request := ReturnRequest{
		ID:              shared.NewCode("RET"),
		ReturnRequestID: shared.NewCode("RTN"),
		SalesInvoiceID:  in.SalesInvoiceID,
		CustomerName:    in.CustomerName,
		Items:           in.Items,
		Reason:          in.Reason,
		Status:          ReturnPending,
		Date:            s.clock.Today(),
	}
	err := s.store.UpdateSales(func(st *State, _ *catalog.State) error {
		st.ReturnRequests = append([]ReturnRequest{request}, st.ReturnRequests...)
		return nil
	})
	if err != nil {
		return ReturnRequest{}, err
	}
	return request, nil
}

// ListReturns returns requests newest first.
func (s *Service) ListReturns() []ReturnRequest {
	var out []ReturnRequest
	s.store.ViewSales(func(st State, _ catalog.State) {
		out = append(out, st.ReturnRequests...)
	})
	return out
}

// ChangeReturnStatus moves a return request through review. No stock effect:
// approved returns go to quality control before any restock decision.
func (s *Service) ChangeReturnStatus(id string, status ReturnStatus) (ReturnRequest, error) {
	var updated ReturnRequest
	err := s.store.UpdateSales(func(st *State, _ *catalog.State) error {
		req := st.FindReturn(id)
		if req == nil {
			return fmt.Errorf("%w: %s", ErrReturnNotFound, id)
		}
		req.Status = status
		updated = *req
		return nil
	})
	if err != nil {
		return ReturnRequest{}, err
	}
	return updated, nil
}
