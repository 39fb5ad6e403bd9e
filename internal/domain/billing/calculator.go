// Package billing implements the pure arithmetic of the invoicing workflow:
// line totals, ownership split resolution and draft invoice construction.
// Nothing in this package touches storage or presentation.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// RoundCurrency rounds an amount to 2 decimals using round-half-up.
// shopspring rounds halves away from zero, which is half-up for the
// non-negative amounts billing deals in.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// LineTotal computes quantity x unit price rounded to 2 decimals half-up.
// This is the single place the line rounding rule lives; transaction totals
// must always be recomputed through it when either factor changes.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return RoundCurrency(quantity.Mul(unitPrice))
}

// Subtotal sums the stored totals of the given transactions.
func Subtotal(transactions []*entity.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Total)
	}
	return sum
}

// TaxableSubtotal sums the totals of the transactions flagged taxable.
func TaxableSubtotal(transactions []*entity.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if t.Taxable {
			sum = sum.Add(t.Total)
		}
	}
	return sum
}

// TaxFromRate derives a tax amount from a percentage rate applied to a
// taxable subtotal, rounded to 2 decimals half-up.
func TaxFromRate(taxableSubtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return RoundCurrency(taxableSubtotal.Mul(ratePercent).Div(oneHundred))
}

// GrandTotal computes subtotal + tax - discount. Tax may come from
// TaxFromRate or be a manual override; both paths feed the same formula so
// either entry point is testable on its own.
func GrandTotal(subtotal, taxAmount, discount decimal.Decimal) decimal.Decimal {
	return subtotal.Add(taxAmount).Sub(discount)
}
