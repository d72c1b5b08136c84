package store

import (
	"fmt"
	"sync"

	"bankist-ledger/domain"
)

// AccountStore is the engine's view of the account collection: an ordered
// set of accounts unique by derived username. The only mutations are account
// removal and movement appends on the accounts it hands out.
type AccountStore interface {
	// Find returns the live account for a username. Callers share the
	// returned pointer; mutations are immediately observable through every
	// reference, which is exactly the session semantics this engine wants.
	Find(username string) (*domain.Account, error)

	Remove(username string) error

	// All returns the accounts in insertion order.
	All() []*domain.Account

	Len() int
}

type InMemoryAccountStore struct {
	sync.RWMutex
	order    []string
	accounts map[string]*domain.Account
}

func NewInMemoryAccountStore() *InMemoryAccountStore {
	return &InMemoryAccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

// Add registers an account, failing fast on a derived-username collision.
func (s *InMemoryAccountStore) Add(acc *domain.Account) error {
	if acc == nil {
		return fmt.Errorf("cannot add nil account")
	}
	s.Lock()
	defer s.Unlock()

	if existing, ok := s.accounts[acc.Username]; ok {
		return fmt.Errorf("%w: %q derived for both %q and %q",
			domain.ErrUsernameTaken, acc.Username, existing.Owner, acc.Owner)
	}
	s.accounts[acc.Username] = acc
	s.order = append(s.order, acc.Username)
	return nil
}

func (s *InMemoryAccountStore) Find(username string) (*domain.Account, error) {
	s.RLock()
	defer s.RUnlock()

	acc, ok := s.accounts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrAccountNotFound, username)
	}
	return acc, nil
}

func (s *InMemoryAccountStore) Remove(username string) error {
	s.Lock()
	defer s.Unlock()

	if _, ok := s.accounts[username]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrAccountNotFound, username)
	}
	delete(s.accounts, username)
	for i, u := range s.order {
		if u == username {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *InMemoryAccountStore) All() []*domain.Account {
	s.RLock()
	defer s.RUnlock()

	out := make([]*domain.Account, 0, len(s.order))
	for _, username := range s.order {
		out = append(out, s.accounts[username])
	}
	return out
}

func (s *InMemoryAccountStore) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.accounts)
}
