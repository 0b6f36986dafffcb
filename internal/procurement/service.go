package procurement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/shared"
)

// StateStore is the slice of the store procurement needs.
type StateStore interface {
	UpdateProcurement(fn func(*State) error) error
	ViewProcurement(fn func(State))
}

// Service owns supplier and purchase-order commands.
type Service struct {
	store StateStore
	clock shared.Clock
}

// NewService wires the procurement service.
func NewService(store StateStore, clock shared.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// NewSupplierInput carries the add-supplier form.
type NewSupplierInput struct {
	Name              string
	PaymentType       PaymentType
	ContactPerson     string
	Email             string
	Phone             string
	Address           string
	CreditLimit       decimal.Decimal
	MaterialsSupplied []string
}

// AddSupplier registers a vendor. Supplier names are the join key for
// orders and payments, so they must be unique.
func (s *Service) AddSupplier(in NewSupplierInput) (Supplier, error) {
	sup := Supplier{
		ID:                shared.NewCode("SUP"),
		Name:              in.Name,
		PaymentType:       in.PaymentType,
		ContactPerson:     in.ContactPerson,
		Email:             in.Email,
		Phone:             in.Phone,
		Address:           in.Address,
		JoinDate:          s.clock.Today(),
		Status:            SupplierActive,
		CreditLimit:       in.CreditLimit,
		MaterialsSupplied: in.MaterialsSupplied,
	}
	err := s.store.UpdateProcurement(func(st *State) error {
		if st.FindSupplierByName(in.Name) != nil {
			return fmt.Errorf("add supplier %q: %w", in.Name, ErrDuplicateSupplier)
		}
		st.Suppliers = append(st.Suppliers, sup)
		return nil
	})
	if err != nil {
		return Supplier{}, err
	}
	return sup, nil
}

// ListSuppliers returns a copy of the supplier roster.
func (s *Service) ListSuppliers() []Supplier {
	var out []Supplier
	s.store.ViewProcurement(func(st State) {
		out = append([]Supplier(nil), st.Suppliers...)
	})
	return out
}

// NewPurchaseItemInput is one line of the create-order form.
type NewPurchaseItemInput struct {
	ItemName    string
	Category    string
	Quantity    int
	Unit        string
	CostPerUnit decimal.Decimal
}

// NewPurchaseOrderInput carries the create-order form.
type NewPurchaseOrderInput struct {
	SupplierName string
	PaymentType  PaymentType
	Items        []NewPurchaseItemInput
}

// CreatePurchaseOrder drafts an order for a known supplier, totalling the
// lines at full precision. Lines with no name or non-positive quantity are
// dropped; an order with nothing left is rejected.
func (s *Service) CreatePurchaseOrder(in NewPurchaseOrderInput) (PurchaseOrder, error) {
	var items []PurchaseItem
	total := decimal.Zero
	for _, it := range in.Items {
		if it.ItemName == "" || it.Quantity <= 0 {
			continue
		}
		line := PurchaseItem{
			ID:          shared.NewCode("PI"),
			ItemName:    it.ItemName,
			Category:    warehouseOrDefault(it.Category),
			Quantity:    it.Quantity,
			Unit:        unitOrDefault(it.Unit),
			CostPerUnit: it.CostPerUnit,
		}
		items = append(items, line)
		total = total.Add(line.CostPerUnit.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if len(items) == 0 {
		return PurchaseOrder{}, ErrNoItems
	}

	po := PurchaseOrder{
		ID:           shared.NewCode("PUR"),
		SupplierName: in.SupplierName,
		Date:         s.clock.Today(),
		Items:        items,
		TotalAmount:  total,
		PaymentType:  in.PaymentType,
		Status:       PurchasePending,
	}
	err := s.store.UpdateProcurement(func(st *State) error {
		if st.FindSupplierByName(in.SupplierName) == nil {
			return fmt.Errorf("create purchase order for %q: %w", in.SupplierName, ErrUnknownSupplier)
		}
		st.PurchaseOrders = append([]PurchaseOrder{po}, st.PurchaseOrders...)
		return nil
	})
	if err != nil {
		return PurchaseOrder{}, err
	}
	return po, nil
}

// ListPurchaseOrders returns a copy of the purchase orders, newest first.
func (s *Service) ListPurchaseOrders() []PurchaseOrder {
	var out []PurchaseOrder
	s.store.ViewProcurement(func(st State) {
		out = append([]PurchaseOrder(nil), st.PurchaseOrders...)
	})
	return out
}

// ChangeStatus moves a purchase order through its lifecycle. Receiving an
// order records the fact only; stock arrives through the warehouse screens
// once quality control clears the goods.
func (s *Service) ChangeStatus(orderID string, status PurchaseStatus) (PurchaseOrder, error) {
	var updated PurchaseOrder
	err := s.store.UpdateProcurement(func(st *State) error {
		po := st.FindPurchaseOrder(orderID)
		if po == nil {
			return fmt.Errorf("change status of %q: %w", orderID, ErrPurchaseOrderNotFound)
		}
		po.Status = status
		updated = *po
		return nil
	})
	if err != nil {
		return PurchaseOrder{}, err
	}
	return updated, nil
}

// AddPayment records money paid to a supplier.
func (s *Service) AddPayment(supplierName string, amount decimal.Decimal, date string) (SupplierPayment, error) {
	p := SupplierPayment{
		ID:           shared.NewCode("SPAY"),
		SupplierName: supplierName,
		Date:         date,
		Amount:       amount,
	}
	if p.Date == "" {
		p.Date = s.clock.Today()
	}
	err := s.store.UpdateProcurement(func(st *State) error {
		if st.FindSupplierByName(supplierName) == nil {
			return fmt.Errorf("add payment for %q: %w", supplierName, ErrUnknownSupplier)
		}
		st.SupplierPayments = append(st.SupplierPayments, p)
		return nil
	})
	if err != nil {
		return SupplierPayment{}, err
	}
	return p, nil
}

// SupplierBalance is what the factory still owes a supplier.
type SupplierBalance struct {
	SupplierName string          `json:"supplier_name"`
	TotalOrdered decimal.Decimal `json:"total_ordered"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	Balance      decimal.Decimal `json:"balance"`
}

// Balance sums non-cancelled purchase orders against payments made.
func (s *Service) Balance(supplierName string) (SupplierBalance, error) {
	var (
		found   bool
		ordered = decimal.Zero
		paid    = decimal.Zero
	)
	s.store.ViewProcurement(func(st State) {
		if st.FindSupplierByName(supplierName) == nil {
			return
		}
		found = true
		for _, po := range st.PurchaseOrders {
			if po.SupplierName == supplierName && po.Status != PurchaseCancelled {
				ordered = ordered.Add(po.TotalAmount)
			}
		}
		for _, p := range st.SupplierPayments {
			if p.SupplierName == supplierName {
				paid = paid.Add(p.Amount)
			}
		}
	})
	if !found {
		return SupplierBalance{}, fmt.Errorf("balance for %q: %w", supplierName, ErrUnknownSupplier)
	}
	return SupplierBalance{
		SupplierName: supplierName,
		TotalOrdered: ordered,
		TotalPaid:    paid,
		Balance:      ordered.Sub(paid),
	}, nil
}

func warehouseOrDefault(s string) catalog.Warehouse {
	switch catalog.Warehouse(s) {
	case catalog.WarehouseRawMaterials, catalog.WarehousePackaging, catalog.WarehouseWrapping, catalog.WarehouseFinishedProducts:
		return catalog.Warehouse(s)
	}
	return catalog.WarehouseRawMaterials
}

func unitOrDefault(s string) catalog.Unit {
	if catalog.Unit(s) == catalog.UnitCount {
		return catalog.UnitCount
	}
	return catalog.UnitKilogram
}
