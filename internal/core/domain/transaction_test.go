package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransactionRef_Format(t *testing.T) {
	now := time.Date(2024, 10, 3, 14, 30, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		ref := NewTransactionRef(now)
		assert.Regexp(t, `^TXN20241003-\d{6}$`, ref)
	}
}

func TestTransaction_IsTerminal(t *testing.T) {
	cases := []struct {
		status   TransactionStatus
		terminal bool
	}{
		{TransactionStatusPending, false},
		{TransactionStatusSuccess, true},
		{TransactionStatusFailed, true},
		{TransactionStatusRejected, true},
	}

	for _, tc := range cases {
		txn := Transaction{Status: tc.status}
		assert.Equal(t, tc.terminal, txn.IsTerminal(), "status %s", tc.status)
	}
}

func TestTransaction_InvolvesUser(t *testing.T) {
	txn := Transaction{ClientID: "1", MerchantID: "3"}

	assert.True(t, txn.InvolvesUser("1"))
	assert.True(t, txn.InvolvesUser("3"))
	assert.False(t, txn.InvolvesUser("2"))
}

func TestTransaction_CloneIsIndependent(t *testing.T) {
	txn := &Transaction{ID: "a", Amount: decimal.NewFromInt(10), Status: TransactionStatusPending}

	clone := txn.Clone()
	clone.Status = TransactionStatusSuccess

	assert.Equal(t, TransactionStatusPending, txn.Status)

	var nilTxn *Transaction
	assert.Nil(t, nilTxn.Clone())
}

func TestSimulateIrisScan_ReturnsKnownPattern(t *testing.T) {
	for i := 0; i < 20; i++ {
		sample := SimulateIrisScan()
		assert.Contains(t, demoScanPatterns, sample)
	}
}
