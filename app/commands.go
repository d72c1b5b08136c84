package app

import (
	"github.com/shopspring/decimal"

	"bankist-ledger/domain"
)

// Commands represent the intent to perform one of the engine's mutating
// operations. Pin inputs stay raw strings: a non-numeric pin must behave as
// a pin that cannot match any account rather than as a distinct error.

type LoginCommand struct {
	Username string
	PIN      string
}

type TransferCommand struct {
	ToUsername string
	Amount     decimal.Decimal
}

type LoanCommand struct {
	Amount decimal.Decimal
}

type CloseAccountCommand struct {
	UsernameConfirm string
	PINConfirm      string
}

// Statement is the full view the presentation layer re-reads after every
// operation: movements (honoring the session sort flag), balance, and the
// summary figures. All values are plain numbers; formatting and user-facing
// text are presentation concerns.
type Statement struct {
	Owner            string
	FirstName        string
	Username         string
	Movements        []domain.MovementView
	Balance          decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TotalInterest    decimal.Decimal
	SortAscending    bool
}
