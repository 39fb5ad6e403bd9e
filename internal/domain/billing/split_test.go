package billing

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/equivet/backend/internal/domain/entity"
	domainerror "github.com/equivet/backend/internal/domain/error"
)

func ownerWithPercentage(pct string) *entity.HorseOwner {
	p := dec(pct)
	return &entity.HorseOwner{OwnerID: uuid.New(), Percentage: &p}
}

func TestResolveSplits(t *testing.T) {
	t.Run("no owners fails", func(t *testing.T) {
		_, err := ResolveSplits(nil)
		if !errors.Is(err, domainerror.ErrNoOwner) {
			t.Errorf("expected ErrNoOwner, got %v", err)
		}
	})

	t.Run("sole owner without percentage owns everything", func(t *testing.T) {
		shares, err := ResolveSplits([]*entity.HorseOwner{{OwnerID: uuid.New()}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(shares) != 1 || !shares[0].Fraction.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected single full share, got %+v", shares)
		}
	})

	t.Run("percentages summing to 100 normalize directly", func(t *testing.T) {
		shares, err := ResolveSplits([]*entity.HorseOwner{
			ownerWithPercentage("60"),
			ownerWithPercentage("40"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shares[0].Fraction.Equal(dec("0.6")) {
			t.Errorf("first fraction = %s, want 0.6", shares[0].Fraction)
		}
		if !shares[1].Fraction.Equal(dec("0.4")) {
			t.Errorf("second fraction = %s, want 0.4", shares[1].Fraction)
		}
	})

	t.Run("percentages not summing to 100 are normalized", func(t *testing.T) {
		// 50 + 25 = 75: fractions become 2/3 and 1/3.
		shares, err := ResolveSplits([]*entity.HorseOwner{
			ownerWithPercentage("50"),
			ownerWithPercentage("25"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum := shares[0].Fraction.Add(shares[1].Fraction)
		if !sum.Round(10).Equal(decimal.NewFromInt(1)) {
			t.Errorf("fractions sum to %s, want 1", sum)
		}
		if !shares[0].Fraction.GreaterThan(shares[1].Fraction) {
			t.Error("larger percentage should yield larger fraction")
		}
	})

	t.Run("missing percentage contributes nothing", func(t *testing.T) {
		shares, err := ResolveSplits([]*entity.HorseOwner{
			ownerWithPercentage("100"),
			{OwnerID: uuid.New()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shares[1].Fraction.IsZero() {
			t.Errorf("nil percentage fraction = %s, want 0", shares[1].Fraction)
		}
	})

	t.Run("all percentages missing or zero fails", func(t *testing.T) {
		_, err := ResolveSplits([]*entity.HorseOwner{
			{OwnerID: uuid.New()},
			ownerWithPercentage("0"),
		})
		if !errors.Is(err, domainerror.ErrInvalidOwnership) {
			t.Errorf("expected ErrInvalidOwnership, got %v", err)
		}
	})

	t.Run("order follows association order", func(t *testing.T) {
		first := ownerWithPercentage("10")
		second := ownerWithPercentage("90")
		shares, err := ResolveSplits([]*entity.HorseOwner{first, second})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shares[0].OwnerID != first.OwnerID || shares[1].OwnerID != second.OwnerID {
			t.Error("shares were reordered")
		}
	})
}

func TestAllocateTotal(t *testing.T) {
	t.Run("residual cent lands on first share", func(t *testing.T) {
		// 1/3 split of $100.00 rounds to 33.33 each, leaving $0.01.
		third := dec("1").Div(dec("3"))
		shares := []OwnerShare{
			{OwnerID: uuid.New(), Fraction: third},
			{OwnerID: uuid.New(), Fraction: third},
			{OwnerID: uuid.New(), Fraction: third},
		}

		amounts := AllocateTotal(dec("100.00"), shares)
		if !amounts[0].Equal(dec("33.34")) {
			t.Errorf("first amount = %s, want 33.34", amounts[0])
		}
		if !amounts[1].Equal(dec("33.33")) || !amounts[2].Equal(dec("33.33")) {
			t.Errorf("remaining amounts = %s, %s, want 33.33 each", amounts[1], amounts[2])
		}
	})

	t.Run("empty shares allocate nothing", func(t *testing.T) {
		if amounts := AllocateTotal(dec("10.00"), nil); len(amounts) != 0 {
			t.Errorf("expected no amounts, got %v", amounts)
		}
	})
}

// TestAllocateTotalConservation checks that no cent is ever lost or gained,
// for random percentage sets both summing to 100 and not.
func TestAllocateTotalConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		ownerCount := 1 + rng.Intn(5)
		owners := make([]*entity.HorseOwner, ownerCount)

		if i%2 == 0 {
			// Percentages summing to exactly 100.
			remaining := int64(100)
			for j := range owners {
				var pct int64
				if j == ownerCount-1 {
					pct = remaining
				} else {
					pct = rng.Int63n(remaining + 1)
					remaining -= pct
				}
				p := decimal.NewFromInt(pct)
				owners[j] = &entity.HorseOwner{OwnerID: uuid.New(), Percentage: &p}
			}
		} else {
			// Arbitrary positive percentages, normalized case.
			for j := range owners {
				p := decimal.NewFromInt(1 + rng.Int63n(200))
				owners[j] = &entity.HorseOwner{OwnerID: uuid.New(), Percentage: &p}
			}
		}

		shares, err := ResolveSplits(owners)
		if err != nil {
			// Random zero-sum sets are legitimately rejected.
			if errors.Is(err, domainerror.ErrInvalidOwnership) {
				continue
			}
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}

		total := decimal.NewFromInt(rng.Int63n(100000)).Div(dec("100"))
		amounts := AllocateTotal(total, shares)

		sum := decimal.Zero
		for _, a := range amounts {
			sum = sum.Add(a)
		}
		if !sum.Equal(total) {
			t.Fatalf("iteration %d: allocated %s from total %s", i, sum, total)
		}
	}
}
