package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind classifies a movement by the sign of its amount.
type MovementKind string

const (
	Deposit    MovementKind = "deposit"
	Withdrawal MovementKind = "withdrawal"
)

// Movement is a single signed ledger entry on an account: positive amounts
// are deposits, negative amounts are withdrawals. Slice order is insertion
// order and is semantically meaningful; the ID and timestamp are bookkeeping
// only and never enter any balance or summary computation.
type Movement struct {
	ID         uuid.UUID       `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	RecordedAt time.Time       `json:"recordedAt"`

	// TransferID correlates the debit and credit legs of a transfer.
	// Zero for movements that are not part of a transfer.
	TransferID uuid.UUID `json:"transferId,omitempty"`
}

func NewMovement(amount decimal.Decimal) Movement {
	return Movement{
		ID:         uuid.New(),
		Amount:     amount,
		RecordedAt: time.Now().UTC(),
	}
}

func NewTransferMovement(amount decimal.Decimal, transferID uuid.UUID) Movement {
	m := NewMovement(amount)
	m.TransferID = transferID
	return m
}

func (m Movement) Kind() MovementKind {
	if m.Amount.IsPositive() {
		return Deposit
	}
	return Withdrawal
}

// MovementView is the row data handed to the presentation layer.
type MovementView struct {
	Index  int             `json:"index"`
	Amount decimal.Decimal `json:"amount"`
	Kind   MovementKind    `json:"kind"`
}

// MovementViews produces the display sequence for a movement list. With
// sortAscending the views are built from a stably sorted copy (ties keep
// insertion order) and the stored slice is left untouched.
//
// Index is 1-based and always reflects the position in the sequence actually
// iterated, so under sorting it is the sorted position, not the chronological
// one. That matches the behavior of the rendering this engine was extracted
// from.
func MovementViews(movements []Movement, sortAscending bool) []MovementView {
	movs := movements
	if sortAscending {
		movs = make([]Movement, len(movements))
		copy(movs, movements)
		sort.SliceStable(movs, func(i, j int) bool {
			return movs[i].Amount.LessThan(movs[j].Amount)
		})
	}

	views := make([]MovementView, len(movs))
	for i, m := range movs {
		views[i] = MovementView{
			Index:  i + 1,
			Amount: m.Amount,
			Kind:   m.Kind(),
		}
	}
	return views
}
