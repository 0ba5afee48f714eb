package domain

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of a payment request.
//
// The only transitions are pending -> success (client approved, balances
// moved) and pending -> rejected (client declined, no transfer). Success,
// failed and rejected are terminal.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusSuccess  TransactionStatus = "success"
	TransactionStatusFailed   TransactionStatus = "failed"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Transaction is a merchant-initiated payment request against a client.
type Transaction struct {
	ID            string            `json:"id"`             // internal key, unique for the process lifetime
	TransactionID string            `json:"transaction_id"` // human-facing TXN<YYYYMMDD>-<6 digits> reference
	ClientID      string            `json:"client_id"`
	MerchantID    string            `json:"merchant_id"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	Description   string            `json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// IsTerminal returns true if the transaction can no longer be acted on.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusRejected
}

// InvolvesUser reports whether the user is either side of the request.
func (t *Transaction) InvolvesUser(userID string) bool {
	return t.ClientID == userID || t.MerchantID == userID
}

// Clone returns a defensive copy.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// TransactionPatch holds the mergeable fields of an update. Nil fields are
// left untouched; UpdatedAt is always refreshed by the store.
type TransactionPatch struct {
	Status      *TransactionStatus
	Description *string
}

// NewTransactionRef builds a human-facing reference of the form
// TXN<YYYYMMDD>-<6 digits>. The random suffix is display-only and carries no
// uniqueness guarantee; internal ids are what the store deduplicates on.
func NewTransactionRef(now time.Time) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to the clock
		binary.LittleEndian.PutUint64(buf[:], uint64(now.UnixNano()))
	}
	suffix := binary.LittleEndian.Uint64(buf[:]) % 1000000
	return fmt.Sprintf("TXN%s-%06d", now.Format("20060102"), suffix)
}
