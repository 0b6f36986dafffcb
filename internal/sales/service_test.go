package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/shared"
)

type memoryStore struct {
	sales   State
	catalog catalog.State
}

func (m *memoryStore) UpdateSales(fn func(*State, *catalog.State) error) error {
	return fn(&m.sales, &m.catalog)
}

func (m *memoryStore) ViewSales(fn func(State, catalog.State)) {
	fn(m.sales, m.catalog)
}

func newTestStore() *memoryStore {
	return &memoryStore{
		sales: State{Customers: []Customer{
			{ID: "CUST-01", Name: "صيدليات العزبي", PaymentType: PaymentCredit, Status: CustomerActive, CreditLimit: decimal.NewFromInt(20000)},
		}},
		catalog: catalog.State{FinishedProducts: []catalog.FinishedProduct{
			{
				ID:               "FP-001",
				SKU:              "LAV-CREAM-50",
				Name:             "كريم اللافندر 50 مل",
				Quantity:         50,
				PublicPrice:      decimal.NewFromInt(120),
				WholesalePrice:   decimal.NewFromInt(90),
				DistributorPrice: decimal.NewFromInt(80),
				AgentPrice:       decimal.NewFromInt(75),
			},
		}},
	}
}

func newTestService(store *memoryStore) *Service {
	return NewService(store, shared.FixedClock("2024-07-25"), nil)
}

func TestCommitWholesaleSale(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	sale, err := svc.Commit(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelWholesale,
		Lines:        []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 30}},
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 1)
	require.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromInt(90)))
	require.True(t, sale.Items[0].DiscountPercentage.Equal(decimal.NewFromInt(25)))
	require.True(t, sale.Subtotal.Equal(decimal.NewFromInt(2700)))
	require.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(2700)))
	require.Equal(t, "2024-07-25", sale.Date)
	require.NotEmpty(t, sale.ID)
	require.NotEmpty(t, sale.OrderID)

	// stock decremented, invoice prepended
	require.Equal(t, 20, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
	require.Len(t, store.sales.Sales, 1)
	require.Equal(t, sale.ID, store.sales.Sales[0].ID)
}

func TestCommitRejectsInsufficientStock(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	// 100 requested with only 50 on hand
	_, err := svc.Commit(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelPublic,
		Lines:        []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 100}},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// rejection leaves everything untouched
	require.Equal(t, 50, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
	require.Empty(t, store.sales.Sales)
}

func TestCommitAllOrNothing(t *testing.T) {
	store := newTestStore()
	store.catalog.FinishedProducts = append(store.catalog.FinishedProducts, catalog.FinishedProduct{
		ID: "FP-002", SKU: "ROSE-SOAP-100", Name: "صابون الورد", Quantity: 500,
		PublicPrice: decimal.NewFromInt(60), WholesalePrice: decimal.NewFromInt(45),
	})
	svc := newTestService(store)

	_, err := svc.Commit(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelWholesale,
		Lines: []DraftLine{
			{ProductSKU: "ROSE-SOAP-100", Quantity: 10},
			{ProductSKU: "LAV-CREAM-50", Quantity: 60}, // exceeds stock
		},
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.Equal(t, 500, store.catalog.FindProduct("ROSE-SOAP-100").Quantity)
	require.Equal(t, 50, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
}

func TestCommitRequiresCustomerAndLines(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	_, err := svc.Commit(Draft{Channel: ChannelPublic, Lines: []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 1}}})
	require.ErrorIs(t, err, ErrNoCustomer)

	_, err = svc.Commit(Draft{CustomerName: "مجهول", Channel: ChannelPublic, Lines: []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 1}}})
	require.ErrorIs(t, err, ErrUnknownCustomer)

	// blank rows are skipped; nothing left means no valid lines
	_, err = svc.Commit(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelPublic,
		Lines:        []DraftLine{{}, {ProductSKU: "LAV-CREAM-50", Quantity: 0}},
	})
	require.ErrorIs(t, err, ErrNoValidLines)
	require.Equal(t, 50, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
}

func TestCommitWithManualDiscountOverride(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	override := decimal.NewFromInt(10)
	sale, err := svc.Commit(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelPublic,
		Lines:        []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 5, DiscountPercentage: &override}},
	})
	require.NoError(t, err)
	// 120 * (1 - 10/100) = 108
	require.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromInt(108)), sale.Items[0].UnitPrice.String())
	require.True(t, sale.Items[0].LineTotal.Equal(decimal.NewFromInt(540)))
}

func TestPreviewDoesNotMutate(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	lines, totals, err := svc.Preview(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelAgent,
		Lines:        []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(75)))
	require.True(t, totals.FinalTotalPrice.Equal(decimal.NewFromInt(150)))

	require.Equal(t, 50, store.catalog.FindProduct("LAV-CREAM-50").Quantity)
	require.Empty(t, store.sales.Sales)
}

func TestRepriceAfterChannelChange(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	lines, _, err := svc.Preview(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelWholesale,
		Lines:        []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 10}},
	})
	require.NoError(t, err)
	require.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(90)))

	repriced, totals := svc.Reprice(lines, ChannelAgent, decimal.Zero)
	require.True(t, repriced[0].UnitPrice.Equal(decimal.NewFromInt(75)))
	require.True(t, repriced[0].DiscountPercentage.Equal(decimal.NewFromFloat(37.5)))
	require.True(t, totals.FinalTotalPrice.Equal(decimal.NewFromInt(750)))

	// the input lines stay as they were
	require.True(t, lines[0].UnitPrice.Equal(decimal.NewFromInt(90)))
}

func TestRepriceKeepsPublicPriceSnapshot(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	// line snapshotted before the catalog was repriced to 120
	snapshot := Line{
		ProductSKU:  "LAV-CREAM-50",
		Quantity:    2,
		PublicPrice: decimal.NewFromInt(100),
		UnitPrice:   decimal.NewFromInt(100),
	}
	repriced, _ := svc.Reprice([]Line{snapshot}, ChannelWholesale, decimal.Zero)
	require.True(t, repriced[0].UnitPrice.Equal(decimal.NewFromInt(90)))
	// discount derives from the 100 snapshot, not the catalog's 120
	require.True(t, repriced[0].DiscountPercentage.Equal(decimal.NewFromInt(10)))
}

func TestCustomerPaymentsAndBalance(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	_, err := svc.Commit(Draft{
		CustomerName: "صيدليات العزبي",
		Channel:      ChannelWholesale,
		Lines:        []DraftLine{{ProductSKU: "LAV-CREAM-50", Quantity: 10}},
	})
	require.NoError(t, err)

	_, err = svc.AddPayment("صيدليات العزبي", decimal.NewFromInt(400), "")
	require.NoError(t, err)

	balance, err := svc.Balance("صيدليات العزبي")
	require.NoError(t, err)
	require.True(t, balance.TotalSales.Equal(decimal.NewFromInt(900)))
	require.True(t, balance.TotalPaid.Equal(decimal.NewFromInt(400)))
	require.True(t, balance.Balance.Equal(decimal.NewFromInt(500)))

	_, err = svc.AddPayment("مجهول", decimal.NewFromInt(1), "")
	require.ErrorIs(t, err, ErrUnknownCustomer)
}

func TestAddCustomerRejectsDuplicateName(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	_, err := svc.AddCustomer(NewCustomerInput{Name: "صيدليات العزبي", PaymentType: PaymentCash})
	require.ErrorIs(t, err, ErrDuplicateCustomer)
}

func TestReturnLifecycle(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	req, err := svc.CreateReturn(NewReturnInput{
		SalesInvoiceID: "ORD-5501",
		CustomerName:   "صيدليات العزبي",
		Items:          []ReturnItem{{ProductSKU: "LAV-CREAM-50", ProductName: "كريم اللافندر 50 مل", Quantity: 5}},
		Reason:         "تلف في العبوة الخارجية",
	})
	require.NoError(t, err)
	require.Equal(t, ReturnPending, req.Status)

	updated, err := svc.ChangeReturnStatus(req.ID, ReturnApproved)
	require.NoError(t, err)
	require.Equal(t, ReturnApproved, updated.Status)

	// approval never restocks on its own
	require.Equal(t, 50, store.catalog.FindProduct("LAV-CREAM-50").Quantity)

	_, err = svc.ChangeReturnStatus("RET-MISSING", ReturnRejected)
	require.ErrorIs(t, err, ErrReturnNotFound)
}
