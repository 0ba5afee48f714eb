// Package memory implements the ledger store as a process-local, in-memory
// collection. This is deliberate: the demo has no persistence and all state
// resets with the process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/notify"
	"irispay/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds the authoritative collections of users, transactions and
// merchant settings. One RWMutex serializes all mutations; every successful
// mutating call publishes exactly one change notification on the bus.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	userOrder    []string // insertion order for deterministic listings
	transactions []*domain.Transaction // newest first
	txIndex      map[string]*domain.Transaction
	settings     map[string]*domain.MerchantSettings // keyed by merchant id
	bus          *notify.Bus
}

var _ ports.LedgerStore = (*Store)(nil)

// NewStore creates an empty ledger publishing changes on bus.
func NewStore(bus *notify.Bus) *Store {
	return &Store{
		users:    make(map[string]*domain.User),
		txIndex:  make(map[string]*domain.Transaction),
		settings: make(map[string]*domain.MerchantSettings),
		bus:      bus,
	}
}

// Subscribe registers a change observer on the store's bus.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.bus.Subscribe(fn)
}

// --- Users ---

// UserByCredentialHash scans users in insertion order and returns the first
// one whose stored iris digest matches. A miss returns (nil, nil).
func (s *Store) UserByCredentialHash(ctx context.Context, hash string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.userOrder {
		if u := s.users[id]; u.IrisHash == hash {
			return u.Clone(), nil
		}
	}
	return nil, nil
}

// UserByID returns the user or (nil, nil) when absent.
func (s *Store) UserByID(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id].Clone(), nil
}

// ListUsers returns users in insertion order, optionally filtered by type.
func (s *Store) ListUsers(ctx context.Context, userType *domain.UserType) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		u := s.users[id]
		if userType != nil && u.UserType != *userType {
			continue
		}
		out = append(out, *u.Clone())
	}
	return out, nil
}

// SetUserBalance unconditionally overwrites the balance. A missing user is
// a silent no-op with no notification.
func (s *Store) SetUserBalance(ctx context.Context, userID string, balance decimal.Decimal) error {
	s.mu.Lock()
	u, ok := s.users[userID]
	if ok {
		u.AccountBalance = balance
	}
	s.mu.Unlock()

	if ok {
		s.bus.Notify()
	}
	return nil
}

// --- Transactions ---

// TransactionByID returns the transaction or (nil, nil) when absent.
func (s *Store) TransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.txIndex[id].Clone(), nil
}

// TransactionsForUser returns every transaction where the user is client or
// merchant, newest first by CreatedAt. Ties keep insertion order.
func (s *Store) TransactionsForUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Transaction
	for _, t := range s.transactions {
		if t.InvolvesUser(userID) {
			out = append(out, *t.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// PendingTransactionsForClient filters by client id and pending status in
// source order.
func (s *Store) PendingTransactionsForClient(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Transaction
	for _, t := range s.transactions {
		if t.ClientID == clientID && t.Status == domain.TransactionStatusPending {
			out = append(out, *t.Clone())
		}
	}
	return out, nil
}

// CreateTransaction assigns a fresh internal id, stamps both timestamps,
// prepends to the collection and notifies.
func (s *Store) CreateTransaction(ctx context.Context, draft ports.TransactionDraft) (*domain.Transaction, error) {
	now := time.Now().UTC()
	txn := &domain.Transaction{
		ID:            uuid.NewString(),
		TransactionID: draft.TransactionID,
		ClientID:      draft.ClientID,
		MerchantID:    draft.MerchantID,
		Amount:        draft.Amount,
		Status:        draft.Status,
		Description:   draft.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.transactions = append([]*domain.Transaction{txn}, s.transactions...)
	s.txIndex[txn.ID] = txn
	s.mu.Unlock()

	s.bus.Notify()
	return txn.Clone(), nil
}

// UpdateTransaction merges the patch, refreshes UpdatedAt and notifies.
// An absent id returns (nil, nil) with no notification. Status transitions
// are not validated here; callers enforce the state machine.
func (s *Store) UpdateTransaction(ctx context.Context, id string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	s.mu.Lock()
	updated := s.applyPatchLocked(id, patch)
	s.mu.Unlock()

	if updated == nil {
		return nil, nil
	}
	s.bus.Notify()
	return updated, nil
}

// --- Merchant settings ---

// MerchantSettings returns the merchant's settings or (nil, nil).
func (s *Store) MerchantSettings(ctx context.Context, merchantID string) (*domain.MerchantSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings[merchantID].Clone(), nil
}

// --- Transact ---

// Transact runs fn while holding the write lock, so the whole closure is
// one critical section: no reader can observe a debit without its matching
// credit and status change. A nil return commits with a single
// notification; a non-nil return suppresses it.
func (s *Store) Transact(ctx context.Context, fn func(tx ports.LedgerTx) error) error {
	s.mu.Lock()
	err := fn(&txView{store: s})
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.bus.Notify()
	return nil
}

// txView exposes ledger operations against already-locked state.
type txView struct {
	store *Store
}

var _ ports.LedgerTx = (*txView)(nil)

func (v *txView) UserByID(id string) (*domain.User, error) {
	return v.store.users[id].Clone(), nil
}

func (v *txView) SetUserBalance(userID string, balance decimal.Decimal) error {
	if u, ok := v.store.users[userID]; ok {
		u.AccountBalance = balance
	}
	return nil
}

func (v *txView) TransactionByID(id string) (*domain.Transaction, error) {
	return v.store.txIndex[id].Clone(), nil
}

func (v *txView) UpdateTransaction(id string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	return v.store.applyPatchLocked(id, patch), nil
}

// applyPatchLocked merges patch into the stored transaction. Callers hold mu.
func (s *Store) applyPatchLocked(id string, patch domain.TransactionPatch) *domain.Transaction {
	t, ok := s.txIndex[id]
	if !ok {
		return nil
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	t.UpdatedAt = time.Now().UTC()
	return t.Clone()
}
