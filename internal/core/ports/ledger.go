package ports

import (
	"context"

	"irispay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// LedgerStore is the single source of truth for users, transactions and
// merchant settings. Implementations serialize all mutations, return
// defensive copies from every read, and publish exactly one change
// notification per successful mutating call (a committed Transact counts
// as one call regardless of how many writes it performed).
//
// Lookups that miss return (nil, nil); absence is a normal result, not an
// error.
type LedgerStore interface {
	// UserByCredentialHash scans users comparing the stored iris digest and
	// returns the first match.
	UserByCredentialHash(ctx context.Context, hash string) (*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)
	// ListUsers returns users filtered by type; nil means all users.
	ListUsers(ctx context.Context, userType *domain.UserType) ([]domain.User, error)

	// SetUserBalance unconditionally overwrites the balance. A missing user
	// is a silent no-op and produces no notification.
	SetUserBalance(ctx context.Context, userID string, balance decimal.Decimal) error

	TransactionByID(ctx context.Context, id string) (*domain.Transaction, error)
	// TransactionsForUser returns every transaction where the user is either
	// the client or the merchant, newest first by creation time.
	TransactionsForUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	// PendingTransactionsForClient filters by client id and pending status;
	// order follows insertion.
	PendingTransactionsForClient(ctx context.Context, clientID string) ([]domain.Transaction, error)
	// CreateTransaction assigns a fresh internal id unique for the process
	// lifetime, stamps CreatedAt/UpdatedAt, and prepends to the collection.
	CreateTransaction(ctx context.Context, draft TransactionDraft) (*domain.Transaction, error)
	// UpdateTransaction merges the patch and refreshes UpdatedAt. No status
	// transition validation happens here; that is the caller's job.
	UpdateTransaction(ctx context.Context, id string, patch domain.TransactionPatch) (*domain.Transaction, error)

	MerchantSettings(ctx context.Context, merchantID string) (*domain.MerchantSettings, error)

	// Transact runs fn as one serialized critical section over the ledger.
	// No other operation can observe intermediate state, and a nil return
	// from fn commits the writes with a single notification. A non-nil
	// return discards nothing (writes through the view are applied as they
	// happen) but suppresses the notification, so fn must validate before
	// writing.
	Transact(ctx context.Context, fn func(tx LedgerTx) error) error

	// Subscribe registers a change observer; the returned handle
	// unregisters it and is safe to invoke more than once.
	Subscribe(fn func()) (unsubscribe func())
}

// LedgerTx is the ledger view inside a Transact critical section. Reads
// still return defensive copies; writes do not notify individually.
type LedgerTx interface {
	UserByID(id string) (*domain.User, error)
	SetUserBalance(userID string, balance decimal.Decimal) error
	TransactionByID(id string) (*domain.Transaction, error)
	UpdateTransaction(id string, patch domain.TransactionPatch) (*domain.Transaction, error)
}

// TransactionDraft holds caller-supplied fields for a new transaction.
// The store owns id assignment and timestamps.
type TransactionDraft struct {
	TransactionID string // human-facing reference
	ClientID      string
	MerchantID    string
	Amount        decimal.Decimal
	Status        domain.TransactionStatus
	Description   string
}
