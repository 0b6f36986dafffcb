package store

import (
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/catalog"
	"github.com/abkrino/cozmo-factor/internal/hr"
	"github.com/abkrino/cozmo-factor/internal/marketing"
	"github.com/abkrino/cozmo-factor/internal/procurement"
	"github.com/abkrino/cozmo-factor/internal/production"
	"github.com/abkrino/cozmo-factor/internal/quality"
	"github.com/abkrino/cozmo-factor/internal/sales"
)

// NewSeeded builds a store carrying the demo factory: one lavender cream
// line with its materials, orders, invoices and staff.
func NewSeeded() *Store {
	return NewWithState(Seed())
}

// Seed returns the demo dataset.
func Seed() State {
	return State{
		Catalog:     seedCatalog(),
		Production:  seedProduction(),
		Sales:       seedSales(),
		Procurement: seedProcurement(),
		Quality:     seedQuality(),
		HR:          seedHR(),
		Marketing:   seedMarketing(),
	}
}

func seedCatalog() catalog.State {
	return catalog.State{
		RawMaterials: []catalog.RawMaterial{
			{
				ID: "RM-001", SKU: "LAV-OIL-1L", Name: "زيت اللافندر الخام",
				Quantity: 150, Unit: catalog.UnitKilogram, ReorderLevel: 50,
				Cost: decimal.NewFromInt(850), Supplier: "مورد الزيوت الطبيعية", LastUpdated: "2024-07-20",
			},
			{
				ID: "RM-002", SKU: "BEES-WAX-5K", Name: "شمع العسل",
				Quantity: 80, Unit: catalog.UnitKilogram, ReorderLevel: 20,
				Cost: decimal.NewFromInt(300), Supplier: "مورد منتجات النحل", LastUpdated: "2024-07-18",
			},
		},
		PackagingMaterials: []catalog.PackagingMaterial{
			{
				ID: "PM-001", SKU: "JAR-50ML", Name: "برطمان زجاجي 50 مل",
				Quantity: 2500, ReorderLevel: 500,
				Cost: decimal.NewFromFloat(5.5), Supplier: "مورد العبوات الزجاجية", LastUpdated: "2024-07-19",
			},
		},
		WrappingMaterials: []catalog.WrappingMaterial{
			{
				ID: "WM-001", SKU: "BOX-SML", Name: "علبة كرتون صغيرة",
				Quantity: 1800, ReorderLevel: 300,
				Cost: decimal.NewFromInt(2), Supplier: "مورد مواد التغليف", LastUpdated: "2024-07-19",
			},
		},
		FinishedProducts: []catalog.FinishedProduct{
			{
				ID: "FP-001", SKU: "LAV-CREAM-50", Name: "كريم اللافندر 50 مل",
				Quantity: 750, ReorderLevel: 100,
				PublicPrice:      decimal.NewFromInt(120),
				WholesalePrice:   decimal.NewFromInt(90),
				DistributorPrice: decimal.NewFromInt(80),
				AgentPrice:       decimal.NewFromInt(75),
				BillOfMaterials: []catalog.BOMLine{
					{ComponentSKU: "LAV-OIL-1L", ComponentType: catalog.WarehouseRawMaterials, QuantityPerUnit: decimal.NewFromFloat(0.05)},
					{ComponentSKU: "BEES-WAX-5K", ComponentType: catalog.WarehouseRawMaterials, QuantityPerUnit: decimal.NewFromFloat(0.01)},
					{ComponentSKU: "JAR-50ML", ComponentType: catalog.WarehousePackaging, QuantityPerUnit: decimal.NewFromInt(1)},
					{ComponentSKU: "BOX-SML", ComponentType: catalog.WarehouseWrapping, QuantityPerUnit: decimal.NewFromInt(1)},
				},
				ProductionHistory: []catalog.ProductionHistoryEntry{
					{OrderID: "PO-1024", QuantityAdded: 1000, Date: "2024-07-18"},
				},
				LastUpdated: "2024-07-21",
			},
		},
	}
}

func seedProduction() production.State {
	return production.State{
		Orders: []production.Order{
			{ID: "PO-1025", ProductSKU: "LAV-CREAM-50", ProductName: "كريم اللافندر 50 مل", Quantity: 500, StartDate: "2024-07-22", EndDate: "2024-07-24", Status: production.StatusInProgress},
			{ID: "PO-1024", ProductSKU: "LAV-CREAM-50", ProductName: "كريم اللافندر 50 مل", Quantity: 1000, StartDate: "2024-07-15", EndDate: "2024-07-18", Status: production.StatusCompleted},
		},
	}
}

func seedSales() sales.State {
	lavLine := func(qty int, total int64) sales.Line {
		return sales.Line{
			ProductSKU:         "LAV-CREAM-50",
			ProductName:        "كريم اللافندر 50 مل",
			Quantity:           qty,
			PublicPrice:        decimal.NewFromInt(120),
			UnitPrice:          decimal.NewFromInt(90),
			DiscountPercentage: decimal.NewFromInt(25),
			LineTotal:          decimal.NewFromInt(total),
		}
	}
	return sales.State{
		Sales: []sales.Sale{
			{
				ID: "S-202", OrderID: "ORD-5502", CustomerName: "صيدليات العزبي",
				Channel: sales.ChannelWholesale, Date: "2024-07-22",
				Items:    []sales.Line{lavLine(150, 13500)},
				Subtotal: decimal.NewFromInt(13500), AdditionalDiscount: decimal.Zero,
				TotalPrice: decimal.NewFromInt(13500),
			},
			{
				ID: "S-201", OrderID: "ORD-5501", CustomerName: "صيدليات العزبي",
				Channel: sales.ChannelWholesale, Date: "2024-07-20",
				Items:    []sales.Line{lavLine(100, 9000)},
				Subtotal: decimal.NewFromInt(9000), AdditionalDiscount: decimal.Zero,
				TotalPrice: decimal.NewFromInt(9000),
				Notes:      "الدفعة الأولى من الطلب الشهري.",
			},
		},
		Customers: []sales.Customer{
			{
				ID: "CUST-01", Name: "صيدليات العزبي", PaymentType: sales.PaymentCredit,
				ContactPerson: "أ/ محمود", Email: "purchases@el-ezaby.com", Phone: "01xxxxxxxxx",
				Address: "القاهرة", JoinDate: "2023-05-10", Status: sales.CustomerActive,
				CreditLimit: decimal.NewFromInt(20000),
			},
			{
				ID: "CUST-02", Name: "عميل جمهور", PaymentType: sales.PaymentCash,
				ContactPerson: "لا يوجد", Email: "n/a", Phone: "n/a", Address: "n/a",
				JoinDate: "2024-01-01", Status: sales.CustomerActive, CreditLimit: decimal.Zero,
			},
		},
		Payments: []sales.Payment{
			{ID: "PAY-C-01", CustomerName: "صيدليات العزبي", Date: "2024-07-01", Amount: decimal.NewFromInt(15000)},
		},
		ReturnRequests: []sales.ReturnRequest{
			{
				ID: "RET-01", ReturnRequestID: "RTN-2024-01", SalesInvoiceID: "ORD-5501",
				CustomerName: "صيدليات العزبي",
				Items:        []sales.ReturnItem{{ProductSKU: "LAV-CREAM-50", ProductName: "كريم اللافندر 50 مل", Quantity: 5}},
				Reason:       "تلف في العبوة الخارجية", Status: sales.ReturnApproved, Date: "2024-07-21",
			},
		},
	}
}

func seedProcurement() procurement.State {
	return procurement.State{
		Suppliers: []procurement.Supplier{
			{
				ID: "SUP-01", Name: "مورد الزيوت الطبيعية", PaymentType: procurement.PaymentCash,
				ContactPerson: "الحاج سعيد", Email: "saeed.oils@email.com", Phone: "01xxxxxxxxx",
				Address: "المنصورة، مصر", JoinDate: "2022-03-15", Status: procurement.SupplierActive,
				CreditLimit:       decimal.NewFromInt(50000),
				MaterialsSupplied: []string{"زيت اللافندر الخام"},
			},
		},
		PurchaseOrders: []procurement.PurchaseOrder{
			{
				ID: "P-ORD-102", SupplierName: "مورد الزيوت الطبيعية", Date: "2024-07-25",
				Items: []procurement.PurchaseItem{
					{ID: "item-2", ItemName: "زيت اللافندر الخام", Category: catalog.WarehouseRawMaterials, Quantity: 50, Unit: catalog.UnitKilogram, CostPerUnit: decimal.NewFromInt(900)},
					{ID: "item-3", ItemName: "شمع العسل", Category: catalog.WarehouseRawMaterials, Quantity: 20, Unit: catalog.UnitKilogram, CostPerUnit: decimal.NewFromInt(250)},
				},
				TotalAmount: decimal.NewFromInt(50000),
				PaymentType: procurement.PaymentCredit, Status: procurement.PurchaseOrdered,
			},
			{
				ID: "P-ORD-101", SupplierName: "مورد الزيوت الطبيعية", Date: "2024-07-10",
				Items: []procurement.PurchaseItem{
					{ID: "item-1", ItemName: "زيت اللافندر الخام", Category: catalog.WarehouseRawMaterials, Quantity: 50, Unit: catalog.UnitKilogram, CostPerUnit: decimal.NewFromInt(850)},
				},
				TotalAmount: decimal.NewFromInt(42500),
				PaymentType: procurement.PaymentCash, Status: procurement.PurchaseReceived,
			},
		},
		SupplierPayments: []procurement.SupplierPayment{
			{ID: "PAY-S-01", SupplierName: "مورد الزيوت الطبيعية", Date: "2024-07-10", Amount: decimal.NewFromInt(42500)},
		},
	}
}

func seedQuality() quality.State {
	return quality.State{
		Logs: []quality.Log{
			{ID: "QC-401", Type: quality.TypePurchases, ReferenceID: "P-ORD-101", ProductName: "زيت اللافندر الخام", Date: "2024-07-11", Inspector: "فاطمة محمود", Status: quality.StatusPass, Notes: "العينة مطابقة للمعايير"},
			{ID: "QC-301", Type: quality.TypeFinishedProducts, ReferenceID: "PO-1025", ProductName: "كريم اللافندر 50 مل", Date: "2024-07-24", Inspector: "أحمد علي", Status: quality.StatusPending},
			{ID: "QC-300", Type: quality.TypeFinishedProducts, ReferenceID: "PO-1024", ProductName: "كريم اللافندر 50 مل", Date: "2024-07-18", Inspector: "أحمد علي", Status: quality.StatusPass, Notes: "مطابق للمواصفات"},
			{ID: "QC-501", Type: quality.TypeReturns, ReferenceID: "RET-01", ProductName: "كريم اللافندر 50 مل", Date: "2024-07-20", Inspector: "فاطمة محمود", Status: quality.StatusFail, Notes: "تلف واضح في العبوة الخارجية، المنتج سليم."},
		},
	}
}

func seedHR() hr.State {
	return hr.State{
		Employees: []hr.Employee{
			{ID: "EMP-01", Name: "محمد حسن", Position: "مدير إنتاج", Department: "الإنتاج", HireDate: "2022-01-15", HourlyRate: decimal.NewFromInt(50)},
		},
		Attendance: []hr.AttendanceLog{
			{ID: "ATT-101", EmployeeName: "محمد حسن", Date: "2024-07-21", CheckIn: "08:55", CheckOut: "17:05"},
		},
		Payroll: []hr.PayrollRecord{
			{ID: "PAY-01", EmployeeName: "محمد حسن", PayPeriod: "يوليو 2024", TotalHours: decimal.NewFromInt(160), HourlyRate: decimal.NewFromInt(50), TotalPay: decimal.NewFromInt(8000)},
		},
	}
}

func seedMarketing() marketing.State {
	return marketing.State{
		Campaigns: []marketing.Campaign{
			{ID: "CAMP-01", Name: "حملة إطلاق الصيف", Channel: "Facebook", StartDate: "2024-07-01", EndDate: "2024-07-31", Budget: decimal.NewFromInt(15000), Status: marketing.CampaignActive},
		},
	}
}
