package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is the central entity of the ledger engine. The username is never
// user-supplied: it is derived from the owner's name at construction time.
// The pin is stored and compared in plaintext by design; this engine is an
// educational demo with security explicitly out of scope.
type Account struct {
	Owner        string          `json:"owner"`
	Username     string          `json:"username"`
	PIN          int             `json:"pin"`
	InterestRate decimal.Decimal `json:"interestRate"` // percent, 1.2 means 1.2%
	Movements    []Movement      `json:"movements"`
}

// NewAccount builds an account with its derived username and one movement
// per initial amount, in order.
func NewAccount(owner string, pin int, interestRate decimal.Decimal, amounts ...decimal.Decimal) (*Account, error) {
	username, err := DeriveUsername(owner)
	if err != nil {
		return nil, err
	}

	acc := &Account{
		Owner:        owner,
		Username:     username,
		PIN:          pin,
		InterestRate: interestRate,
		Movements:    make([]Movement, 0, len(amounts)),
	}
	for _, amount := range amounts {
		acc.Movements = append(acc.Movements, NewMovement(amount))
	}
	return acc, nil
}

// DeriveUsername returns the lowercase initials of the owner's name:
// "Jonas Schmedtmann" -> "js". Collisions between derived usernames are a
// data-entry error and are rejected at store seeding, not here.
func DeriveUsername(owner string) (string, error) {
	words := strings.Fields(strings.ToLower(owner))
	if len(words) == 0 {
		return "", NewDomainError("owner name must not be empty")
	}

	var b strings.Builder
	for _, word := range words {
		b.WriteRune([]rune(word)[0])
	}
	return b.String(), nil
}

// FirstName is the greeting name the presentation layer shows after login.
func (a *Account) FirstName() string {
	first, _, _ := strings.Cut(a.Owner, " ")
	return first
}

// Append records a movement at the end of the ledger.
func (a *Account) Append(m Movement) {
	a.Movements = append(a.Movements, m)
}

// Balance is always the exact sum of the movements at the instant it is
// read; nothing caches it.
func (a *Account) Balance() decimal.Decimal {
	return Balance(a.Movements)
}

var loanThresholdRatio = decimal.RequireFromString("0.1")

// HasQualifyingMovement reports whether some movement's raw signed value is
// at least a tenth of the requested amount. The comparison is on the signed
// value, not its magnitude, so in practice only a sufficiently large deposit
// qualifies.
func (a *Account) HasQualifyingMovement(amount decimal.Decimal) bool {
	threshold := amount.Mul(loanThresholdRatio)
	for _, m := range a.Movements {
		if m.Amount.GreaterThanOrEqual(threshold) {
			return true
		}
	}
	return false
}
