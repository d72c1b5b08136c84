package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"bankist-ledger/domain"
)

// The canonical movement list used throughout the original demo data.
func canonicalMovements() []domain.Movement {
	amounts := []int64{200, 450, -400, 3000, -650, -130, 70, 1300}
	movs := make([]domain.Movement, 0, len(amounts))
	for _, a := range amounts {
		movs = append(movs, domain.NewMovement(decimal.NewFromInt(a)))
	}
	return movs
}

func TestBalance(t *testing.T) {
	if got := domain.Balance(canonicalMovements()); !got.Equal(dec("3840")) {
		t.Errorf("expected balance 3840, got %s", got)
	}
	if got := domain.Balance(nil); !got.IsZero() {
		t.Errorf("expected zero balance for no movements, got %s", got)
	}
}

func TestTotalDeposits(t *testing.T) {
	// 200 + 450 + 3000 + 70 + 1300
	if got := domain.TotalDeposits(canonicalMovements()); !got.Equal(dec("5020")) {
		t.Errorf("expected deposits 5020, got %s", got)
	}
}

func TestTotalWithdrawals(t *testing.T) {
	// |(-400) + (-650) + (-130)|
	if got := domain.TotalWithdrawals(canonicalMovements()); !got.Equal(dec("1180")) {
		t.Errorf("expected withdrawals 1180, got %s", got)
	}
}

func TestTotalInterest(t *testing.T) {
	t.Run("PerDepositFloor", func(t *testing.T) {
		// At 1.2%: 200 -> 2.4, 450 -> 5.4, 3000 -> 36, 70 -> 0.84 (dropped),
		// 1300 -> 15.6. Total 59.4: the floor applies to each contribution,
		// not the sum.
		got := domain.TotalInterest(canonicalMovements(), dec("1.2"))
		if !got.Equal(dec("59.4")) {
			t.Errorf("expected interest 59.4, got %s", got)
		}
	})

	t.Run("SingleDepositBelowFloor", func(t *testing.T) {
		movs := []domain.Movement{domain.NewMovement(dec("70"))}
		if got := domain.TotalInterest(movs, dec("1.2")); !got.IsZero() {
			t.Errorf("0.84 contribution must be excluded, got %s", got)
		}
	})

	t.Run("ContributionOfExactlyOneIncluded", func(t *testing.T) {
		// 100 * 1 / 100 = 1, right on the boundary
		movs := []domain.Movement{domain.NewMovement(dec("100"))}
		if got := domain.TotalInterest(movs, dec("1")); !got.Equal(dec("1")) {
			t.Errorf("contribution of exactly 1 must be included, got %s", got)
		}
	})

	t.Run("WithdrawalsEarnNothing", func(t *testing.T) {
		movs := []domain.Movement{domain.NewMovement(dec("-3000"))}
		if got := domain.TotalInterest(movs, dec("1.2")); !got.IsZero() {
			t.Errorf("withdrawals must not contribute interest, got %s", got)
		}
	})
}
