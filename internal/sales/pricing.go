package sales

import (
	"github.com/shopspring/decimal"

	"github.com/abkrino/cozmo-factor/internal/catalog"
)

var hundred = decimal.NewFromInt(100)

// ResolveUnitPrice picks the product's price tier for the channel. Unknown
// channels fall back to the public price.
func ResolveUnitPrice(p catalog.FinishedProduct, ch Channel) decimal.Decimal {
	switch ch {
	case ChannelWholesale:
		return p.WholesalePrice
	case ChannelDistributor:
		return p.DistributorPrice
	case ChannelAgent:
		return p.AgentPrice
	default:
		return p.PublicPrice
	}
}

// LineDiscountPercentage derives the display discount from the public-price
// snapshot and the resolved unit price. A zero public price yields zero.
func LineDiscountPercentage(publicPrice, unitPrice decimal.Decimal) decimal.Decimal {
	if !publicPrice.IsPositive() {
		return decimal.Zero
	}
	return publicPrice.Sub(unitPrice).Div(publicPrice).Mul(hundred)
}

// UnitPriceFromDiscount is the inverse direction: a manually edited discount
// percentage recomputes the unit price against the public-price snapshot.
// Editing either side recomputes the other; they never drift independently.
func UnitPriceFromDiscount(publicPrice, discountPercentage decimal.Decimal) decimal.Decimal {
	return publicPrice.Mul(decimal.NewFromInt(1).Sub(discountPercentage.Div(hundred)))
}

// LineTotal recomputes unitPrice times quantity. Non-positive quantities
// yield zero; the total is always derived, never edited on its own.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// RepriceForChannel re-resolves every line with a selected product after a
// channel change. The unit price comes from the catalog tier for the new
// channel, but the discount is derived against the line's original
// public-price snapshot, not the catalog's current list price.
func RepriceForChannel(lines []Line, ch Channel, cat *catalog.State) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].ProductSKU == "" {
			continue
		}
		p := cat.FindProduct(out[i].ProductSKU)
		if p == nil {
			continue
		}
		unitPrice := ResolveUnitPrice(*p, ch)
		out[i].UnitPrice = unitPrice
		out[i].DiscountPercentage = LineDiscountPercentage(out[i].PublicPrice, unitPrice)
		out[i].LineTotal = LineTotal(unitPrice, out[i].Quantity)
	}
	return out
}

// InvoiceTotals aggregates an invoice draft.
type InvoiceTotals struct {
	// Subtotal sums line totals after per-line discounts.
	Subtotal decimal.Decimal `json:"subtotal"`
	// TotalBeforeDiscount is the list-price baseline, ignoring line discounts.
	TotalBeforeDiscount decimal.Decimal `json:"total_before_discount"`
	// TotalDiscountedAmount is everything taken off the baseline.
	TotalDiscountedAmount decimal.Decimal `json:"total_discounted_amount"`
	// FinalTotalPrice is what the customer pays.
	FinalTotalPrice decimal.Decimal `json:"final_total_price"`
}

// ComputeInvoiceTotals derives the invoice figures from its lines and the
// additional invoice-level discount. By construction
// FinalTotalPrice = TotalBeforeDiscount - TotalDiscountedAmount.
func ComputeInvoiceTotals(lines []Line, additionalDiscount decimal.Decimal) InvoiceTotals {
	subtotal := decimal.Zero
	baseline := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
		baseline = baseline.Add(line.PublicPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return InvoiceTotals{
		Subtotal:              subtotal,
		TotalBeforeDiscount:   baseline,
		TotalDiscountedAmount: baseline.Sub(subtotal).Add(additionalDiscount),
		FinalTotalPrice:       subtotal.Sub(additionalDiscount),
	}
}

// NewLine builds a fully priced invoice line for a product at the given
// channel, snapshotting the public price.
func NewLine(p catalog.FinishedProduct, ch Channel, quantity int) Line {
	unitPrice := ResolveUnitPrice(p, ch)
	return Line{
		ProductSKU:         p.SKU,
		ProductName:        p.Name,
		Quantity:           quantity,
		PublicPrice:        p.PublicPrice,
		UnitPrice:          unitPrice,
		DiscountPercentage: LineDiscountPercentage(p.PublicPrice, unitPrice),
		LineTotal:          LineTotal(unitPrice, quantity),
	}
}
