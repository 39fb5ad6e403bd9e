package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

// OwnerShare is one owner's normalized fraction of a horse. Shares keep the
// association insertion order; the allocator's residual-cent tie-break
// depends on it.
type OwnerShare struct {
	OwnerID  uuid.UUID
	Fraction decimal.Decimal
}

// ResolveSplits normalizes a horse's ownership associations into fractions
// summing to 1.
//
// Zero owners fail with ErrNoOwner. A sole owner with no recorded
// percentage is treated as full owner. Otherwise fractions are
// percentage/sum(percentages); missing percentages contribute nothing. When
// every percentage is missing or zero the split is ambiguous and resolution
// fails with ErrInvalidOwnership instead of guessing an even division.
func ResolveSplits(owners []*entity.HorseOwner) ([]OwnerShare, error) {
	if len(owners) == 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeNoOwner,
			"horse has no ownership records",
			domainerror.ErrNoOwner,
		)
	}

	if len(owners) == 1 && owners[0].Percentage == nil {
		return []OwnerShare{{OwnerID: owners[0].OwnerID, Fraction: decimal.NewFromInt(1)}}, nil
	}

	sum := decimal.Zero
	for _, o := range owners {
		if o.Percentage != nil {
			sum = sum.Add(*o.Percentage)
		}
	}
	if !sum.IsPositive() {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidOwnership,
			"ownership percentages are all missing or zero",
			domainerror.ErrInvalidOwnership,
		)
	}

	shares := make([]OwnerShare, len(owners))
	for i, o := range owners {
		fraction := decimal.Zero
		if o.Percentage != nil {
			fraction = o.Percentage.Div(sum)
		}
		shares[i] = OwnerShare{OwnerID: o.OwnerID, Fraction: fraction}
	}
	return shares, nil
}

// AllocateTotal splits a monetary total across shares proportionally,
// rounding each amount to the cent. Any residual left by rounding lands on
// the first share so the allocated amounts always sum back to the total
// exactly.
func AllocateTotal(total decimal.Decimal, shares []OwnerShare) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(shares))
	if len(shares) == 0 {
		return amounts
	}

	allocated := decimal.Zero
	for i, s := range shares {
		amounts[i] = RoundCurrency(total.Mul(s.Fraction))
		allocated = allocated.Add(amounts[i])
	}

	residual := total.Sub(allocated)
	if !residual.IsZero() {
		amounts[0] = amounts[0].Add(residual)
	}
	return amounts
}
