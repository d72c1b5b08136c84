package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bankist-ledger/domain"
)

// Helper to create decimals in tests, panics on error
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Helper to build an account from int64 movement amounts
func acct(t *testing.T, owner string, pin int, rate string, movements ...int64) *domain.Account {
	t.Helper()
	amounts := make([]decimal.Decimal, 0, len(movements))
	for _, m := range movements {
		amounts = append(amounts, decimal.NewFromInt(m))
	}
	acc, err := domain.NewAccount(owner, pin, dec(rate), amounts...)
	if err != nil {
		t.Fatalf("NewAccount failed: %v", err)
	}
	return acc
}

func TestDeriveUsername(t *testing.T) {
	cases := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Sarah Smith", "ss"},
		{"Steven Thomas Williams", "stw"},
		{"JESSICA DAVIS", "jd"},
		{"  Spaced   Out  Name ", "son"},
	}
	for _, c := range cases {
		got, err := domain.DeriveUsername(c.owner)
		if err != nil {
			t.Errorf("DeriveUsername(%q) failed: %v", c.owner, err)
			continue
		}
		if got != c.want {
			t.Errorf("DeriveUsername(%q) = %q, want %q", c.owner, got, c.want)
		}
	}

	t.Run("FailOnEmptyOwner", func(t *testing.T) {
		for _, owner := range []string{"", "   "} {
			_, err := domain.DeriveUsername(owner)
			var domainErr *domain.DomainError
			if !errors.As(err, &domainErr) {
				t.Errorf("DeriveUsername(%q): expected DomainError, got %v", owner, err)
			}
		}
	})
}

func TestNewAccount(t *testing.T) {
	acc := acct(t, "Jonas Schmedtmann", 1111, "1.2", 200, 450, -400)

	if acc.Username != "js" {
		t.Errorf("expected username 'js', got %q", acc.Username)
	}
	if acc.PIN != 1111 {
		t.Errorf("expected pin 1111, got %d", acc.PIN)
	}
	if len(acc.Movements) != 3 {
		t.Fatalf("expected 3 movements, got %d", len(acc.Movements))
	}
	if !acc.Movements[0].Amount.Equal(dec("200")) || !acc.Movements[2].Amount.Equal(dec("-400")) {
		t.Errorf("movements not in insertion order: %v", acc.Movements)
	}
	if acc.FirstName() != "Jonas" {
		t.Errorf("expected first name 'Jonas', got %q", acc.FirstName())
	}

	t.Run("FailOnEmptyOwner", func(t *testing.T) {
		_, err := domain.NewAccount("", 1234, dec("1"))
		if err == nil {
			t.Error("expected error for empty owner")
		}
	})
}

func TestAccount_Balance(t *testing.T) {
	acc := acct(t, "Jonas Schmedtmann", 1111, "1.2", 200, 450, -400, 3000, -650, -130, 70, 1300)
	if !acc.Balance().Equal(dec("3840")) {
		t.Errorf("expected balance 3840, got %s", acc.Balance())
	}

	acc.Append(domain.NewMovement(dec("160")))
	if !acc.Balance().Equal(dec("4000")) {
		t.Errorf("balance must reflect appended movement: got %s", acc.Balance())
	}
}

func TestAccount_HasQualifyingMovement(t *testing.T) {
	t.Run("DepositAtThresholdQualifies", func(t *testing.T) {
		acc := acct(t, "Sarah Smith", 4444, "1", 430, 1000, 700, 50, 90)
		// 5000 * 0.1 = 500; the 1000 deposit qualifies
		if !acc.HasQualifyingMovement(dec("5000")) {
			t.Error("expected loan of 5000 to qualify via the 1000 deposit")
		}
	})

	t.Run("NoMovementLargeEnough", func(t *testing.T) {
		acc := acct(t, "Sarah Smith", 4444, "1", 430, 1000, 700, 50, 90)
		// 50000 * 0.1 = 5000; largest movement is 1000
		if acc.HasQualifyingMovement(dec("50000")) {
			t.Error("expected loan of 50000 not to qualify")
		}
	})

	t.Run("SignedComparisonIgnoresWithdrawalMagnitude", func(t *testing.T) {
		// The raw signed value is compared, so a large withdrawal never
		// qualifies even though its magnitude clears the threshold.
		acc := acct(t, "Jonas Schmedtmann", 1111, "1.2", -10000, 5)
		if acc.HasQualifyingMovement(dec("100")) {
			t.Error("a -10000 movement must not qualify a 100 loan")
		}
	})
}
