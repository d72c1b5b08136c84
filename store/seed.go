package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bankist-ledger/domain"
)

// The four built-in demo accounts. All process state starts from this list;
// there is no persistence and no way to create accounts at runtime.
var seedAccounts = []struct {
	owner        string
	pin          int
	interestRate string
	movements    []int64
}{
	{"Jonas Schmedtmann", 1111, "1.2", []int64{200, 450, -400, 3000, -650, -130, 70, 1300}},
	{"Jessica Davis", 2222, "1.5", []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30}},
	{"Steven Thomas Williams", 3333, "0.7", []int64{200, -200, 340, -300, -20, 50, 400, -460}},
	{"Sarah Smith", 4444, "1", []int64{430, 1000, 700, 50, 90}},
}

// NewSeededStore builds the in-memory store pre-loaded with the demo
// accounts. Username derivation runs once over the whole set here; a
// collision or an empty owner name fails construction.
func NewSeededStore() (*InMemoryAccountStore, error) {
	s := NewInMemoryAccountStore()
	for _, seed := range seedAccounts {
		rate, err := decimal.NewFromString(seed.interestRate)
		if err != nil {
			return nil, fmt.Errorf("invalid seed interest rate %q for %q: %w", seed.interestRate, seed.owner, err)
		}

		amounts := make([]decimal.Decimal, 0, len(seed.movements))
		for _, mov := range seed.movements {
			amounts = append(amounts, decimal.NewFromInt(mov))
		}

		acc, err := domain.NewAccount(seed.owner, seed.pin, rate, amounts...)
		if err != nil {
			return nil, fmt.Errorf("invalid seed account %q: %w", seed.owner, err)
		}
		if err := s.Add(acc); err != nil {
			return nil, fmt.Errorf("seeding account store: %w", err)
		}
	}
	return s, nil
}
