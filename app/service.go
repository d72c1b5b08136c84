package app

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"bankist-ledger/domain"
	"bankist-ledger/store"
)

// LedgerService is the application layer: it owns the account store and the
// single session (the current account plus the sort flag) and executes the
// four mutating operations. A single mutex serializes every operation, so
// each one either fully applies its mutation or fully aborts; on any failure
// the store and session are left untouched.
type LedgerService struct {
	mu            sync.Mutex
	accounts      store.AccountStore
	current       *domain.Account
	sortAscending bool
}

func NewLedgerService(accounts store.AccountStore) *LedgerService {
	if accounts == nil {
		log.Fatal("FATAL: AccountStore must not be nil")
	}
	return &LedgerService{accounts: accounts}
}

// Authenticate looks up the account by exact username match and compares the
// pin by numeric equality. Unknown user, wrong pin, and non-numeric pin all
// collapse into ErrAuthenticationFailed; the session is only replaced on
// success.
func (s *LedgerService) Authenticate(cmd LoginCommand) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pin, err := strconv.Atoi(strings.TrimSpace(cmd.PIN))
	if err != nil {
		log.Printf("Login attempt for %q rejected", cmd.Username)
		return nil, domain.ErrAuthenticationFailed
	}

	acc, err := s.accounts.Find(cmd.Username)
	if err != nil || acc.PIN != pin {
		log.Printf("Login attempt for %q rejected", cmd.Username)
		return nil, domain.ErrAuthenticationFailed
	}

	s.current = acc
	log.Printf("Login successful for %q", acc.Username)
	return s.statementLocked(), nil
}

// Transfer moves a positive amount from the current account to the named
// recipient. All preconditions are checked before any mutation; the debit is
// appended before the credit, both under the same critical section, so no
// partial transfer is ever observable.
func (s *LedgerService) Transfer(cmd TransferCommand) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.currentLocked()
	if err != nil {
		return nil, err
	}

	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, cmd.Amount.String())
	}
	dst, err := s.accounts.Find(cmd.ToUsername)
	if err != nil {
		return nil, fmt.Errorf("transfer recipient %q: %w", cmd.ToUsername, domain.ErrAccountNotFound)
	}
	if src.Balance().LessThan(cmd.Amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s",
			domain.ErrInsufficientFunds, src.Balance().String(), cmd.Amount.String())
	}
	if dst.Username == src.Username {
		return nil, domain.ErrSelfTransfer
	}

	transferID := uuid.New()
	src.Append(domain.NewTransferMovement(cmd.Amount.Neg(), transferID))
	dst.Append(domain.NewTransferMovement(cmd.Amount, transferID))

	log.Printf("Transfer %s: %s -> %s, amount %s", transferID, src.Username, dst.Username, cmd.Amount.String())
	return s.statementLocked(), nil
}

// RequestLoan grants a loan when the amount is positive and some existing
// movement's raw signed value is at least 10% of it. The loan arrives as one
// positive movement on the current account.
func (s *LedgerService) RequestLoan(cmd LoanCommand) (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.currentLocked()
	if err != nil {
		return nil, err
	}

	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, cmd.Amount.String())
	}
	if !acc.HasQualifyingMovement(cmd.Amount) {
		return nil, fmt.Errorf("%w: requested %s", domain.ErrNoQualifyingMovement, cmd.Amount.String())
	}

	acc.Append(domain.NewMovement(cmd.Amount))
	log.Printf("Loan of %s granted to %q", cmd.Amount.String(), acc.Username)
	return s.statementLocked(), nil
}

// CloseAccount removes the current account from the store after the username
// and pin confirmation both match. On success the session is cleared; on any
// mismatch nothing changes.
func (s *LedgerService) CloseAccount(cmd CloseAccountCommand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.currentLocked()
	if err != nil {
		return err
	}

	pin, pinErr := strconv.Atoi(strings.TrimSpace(cmd.PINConfirm))
	if pinErr != nil || cmd.UsernameConfirm != acc.Username || pin != acc.PIN {
		return domain.ErrCloseConfirmation
	}

	if err := s.accounts.Remove(acc.Username); err != nil {
		return fmt.Errorf("closing account %q: %w", acc.Username, err)
	}
	s.current = nil
	s.sortAscending = false
	log.Printf("Account %q closed", cmd.UsernameConfirm)
	return nil
}

// ToggleSort flips the session's sort flag and returns the new value. The
// flag starts false and is purely a presentation hint.
func (s *LedgerService) ToggleSort() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sortAscending = !s.sortAscending
	return s.sortAscending
}

// Statement returns the current account's full view, honoring the session
// sort flag.
func (s *LedgerService) Statement() (*Statement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.currentLocked(); err != nil {
		return nil, err
	}
	return s.statementLocked(), nil
}

// Movements returns the current account's movement views with an explicit
// sort choice, independent of the session flag.
func (s *LedgerService) Movements(sortAscending bool) ([]domain.MovementView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, err := s.currentLocked()
	if err != nil {
		return nil, err
	}
	return domain.MovementViews(acc.Movements, sortAscending), nil
}

// CurrentUsername reports the session's account, if any.
func (s *LedgerService) CurrentUsername() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return "", false
	}
	return s.current.Username, true
}

func (s *LedgerService) currentLocked() (*domain.Account, error) {
	if s.current == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return s.current, nil
}

func (s *LedgerService) statementLocked() *Statement {
	acc := s.current
	return &Statement{
		Owner:            acc.Owner,
		FirstName:        acc.FirstName(),
		Username:         acc.Username,
		Movements:        domain.MovementViews(acc.Movements, s.sortAscending),
		Balance:          domain.Balance(acc.Movements),
		TotalDeposits:    domain.TotalDeposits(acc.Movements),
		TotalWithdrawals: domain.TotalWithdrawals(acc.Movements),
		TotalInterest:    domain.TotalInterest(acc.Movements, acc.InterestRate),
		SortAscending:    s.sortAscending,
	}
}
