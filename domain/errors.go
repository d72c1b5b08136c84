package domain

import "fmt"

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	// ErrAuthenticationFailed covers unknown username, wrong pin, and
	// non-numeric pin input alike; the failed check is not distinguishable
	// from the outcome.
	ErrAuthenticationFailed = NewDomainError("authentication failed")

	ErrAccountNotFound      = NewDomainError("account not found")
	ErrUsernameTaken        = NewDomainError("username already taken")
	ErrInvalidAmount        = NewDomainError("amount must be positive")
	ErrInsufficientFunds    = NewDomainError("insufficient funds")
	ErrSelfTransfer         = NewDomainError("cannot transfer to the same account")
	ErrNoQualifyingMovement = NewDomainError("no movement qualifies for the requested loan")
	ErrCloseConfirmation    = NewDomainError("close confirmation mismatch")
	ErrNotLoggedIn          = NewDomainError("no authenticated session")
)
