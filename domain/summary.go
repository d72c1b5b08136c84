package domain

import "github.com/shopspring/decimal"

// Balance, TotalDeposits, TotalWithdrawals and TotalInterest are pure
// functions of the movement list (and interest rate); they hold no state and
// are recomputed on demand.

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Balance is the sum of all movements.
func Balance(movements []Movement) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range movements {
		sum = sum.Add(m.Amount)
	}
	return sum
}

// TotalDeposits is the sum of the positive movements.
func TotalDeposits(movements []Movement) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range movements {
		if m.Amount.IsPositive() {
			sum = sum.Add(m.Amount)
		}
	}
	return sum
}

// TotalWithdrawals is the absolute value of the sum of the negative
// movements.
func TotalWithdrawals(movements []Movement) decimal.Decimal {
	sum := decimal.Zero
	for _, m := range movements {
		if m.Amount.IsNegative() {
			sum = sum.Add(m.Amount)
		}
	}
	return sum.Abs()
}

// TotalInterest sums deposit * rate / 100 over all deposits, skipping any
// individual contribution below one currency unit. The floor applies per
// deposit, not to the total.
func TotalInterest(movements []Movement, interestRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if !m.Amount.IsPositive() {
			continue
		}
		contribution := m.Amount.Mul(interestRate).Div(hundred)
		if contribution.LessThan(one) {
			continue
		}
		total = total.Add(contribution)
	}
	return total
}
