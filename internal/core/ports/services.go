package ports

import (
	"context"
	"time"

	"irispay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// HashService maps a raw credential sample to a fixed-length hex digest.
// The same function serves iris samples and PIN digests. It is deterministic
// and unsalted on purpose: the digest doubles as the credential lookup key.
type HashService interface {
	Digest(sample string) string
	// Matches compares a raw sample against a stored digest.
	Matches(sample string, digest string) bool
}

// TokenService issues and validates the session tokens the HTTP layer uses
// to carry the "current user" pointer.
type TokenService interface {
	Generate(user *domain.User) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session claims.
type TokenClaims struct {
	UserID   string
	UserType domain.UserType
}

// AuthService resolves presented credentials to users.
type AuthService interface {
	// Authenticate hashes the sample and looks it up. A miss is reported as
	// a generic authentication failure, never a crash.
	Authenticate(ctx context.Context, sample string) (*domain.User, error)
	// Login authenticates and mints a session token.
	Login(ctx context.Context, sample string) (*LoginResult, error)
	// CurrentUser re-reads the session user, picking up balance changes.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

// LoginResult is a successful credential resolution plus its session token.
type LoginResult struct {
	User        *domain.User
	Token       string
	TokenExpiry time.Time
}

// PaymentService owns the payment-request lifecycle: creation by a merchant
// and settlement (approve) or rejection by the addressed client.
type PaymentService interface {
	CreatePaymentRequest(ctx context.Context, req CreatePaymentRequest) (*domain.Transaction, error)
	// ApproveTransaction debits the client, credits the merchant and marks
	// the transaction success as one atomic unit. The acting client must be
	// the transaction's client, and the transaction must still be pending.
	ApproveTransaction(ctx context.Context, transactionID, actingClientID string) (*SettlementResult, error)
	// RejectTransaction marks the transaction rejected with no balance
	// movement, under the same authorization and state guards.
	RejectTransaction(ctx context.Context, transactionID, actingClientID string) (*domain.Transaction, error)
}

// CreatePaymentRequest holds validated input for a new pending transaction.
type CreatePaymentRequest struct {
	MerchantID  string
	ClientID    string
	Amount      decimal.Decimal
	Description string
}

// SettlementResult reports the post-settlement state.
type SettlementResult struct {
	Transaction     *domain.Transaction
	ClientBalance   decimal.Decimal
	MerchantBalance decimal.Decimal
}

// ReportingService serves the dashboards' read queries.
type ReportingService interface {
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListPendingTransactions(ctx context.Context, clientID string) ([]domain.Transaction, error)
	GetDashboardStats(ctx context.Context, userID string) (*DashboardStats, error)
	GetMerchantSettings(ctx context.Context, merchantID string) (*domain.MerchantSettings, error)
	// ListClients backs the merchant's payment-request form.
	ListClients(ctx context.Context) ([]domain.User, error)
}

// DashboardStats aggregates a user's transaction history.
type DashboardStats struct {
	TotalTransactions int64
	Pending           int64
	Successful        int64
	Rejected          int64
	Failed            int64
	// SettledVolume sums the amounts of successful transactions.
	SettledVolume decimal.Decimal
}
