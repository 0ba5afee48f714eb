package service

import (
	"context"
	"fmt"
	"time"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService. It enforces the
// transaction state machine (pending -> success | rejected, both terminal)
// and the authorization rule that only the addressed client may finalize a
// request. The store never validates transitions itself.
type PaymentServiceImpl struct {
	ledger ports.LedgerStore
	log    zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(ledger ports.LedgerStore, log zerolog.Logger) *PaymentServiceImpl {
	return &PaymentServiceImpl{ledger: ledger, log: log}
}

var _ ports.PaymentService = (*PaymentServiceImpl)(nil)

// CreatePaymentRequest creates a pending transaction addressed to a client.
func (s *PaymentServiceImpl) CreatePaymentRequest(ctx context.Context, req ports.CreatePaymentRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.ClientID == "" {
		return nil, apperror.Validation("client selection is required")
	}

	merchant, err := s.ledger.UserByID(ctx, req.MerchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load merchant: %w", err))
	}
	if merchant == nil {
		return nil, apperror.ErrNotFound("merchant")
	}
	if !merchant.IsMerchant() {
		return nil, apperror.ErrForbidden("create payment requests")
	}

	client, err := s.ledger.UserByID(ctx, req.ClientID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load client: %w", err))
	}
	if client == nil || !client.IsClient() {
		return nil, apperror.Validation("selected client does not exist")
	}

	txn, err := s.ledger.CreateTransaction(ctx, ports.TransactionDraft{
		TransactionID: domain.NewTransactionRef(time.Now().UTC()),
		ClientID:      req.ClientID,
		MerchantID:    req.MerchantID,
		Amount:        req.Amount,
		Status:        domain.TransactionStatusPending,
		Description:   req.Description,
	})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.ID).
		Str("tx_ref", txn.TransactionID).
		Str("client_id", req.ClientID).
		Str("merchant_id", req.MerchantID).
		Str("amount", req.Amount.String()).
		Msg("payment request created")

	return txn, nil
}

// ApproveTransaction settles a pending request: debit the client, credit
// the merchant, mark the transaction success. The three writes run inside
// one ledger critical section so no observer can see a debit without its
// matching credit, and the store publishes a single notification for the
// whole settlement.
func (s *PaymentServiceImpl) ApproveTransaction(ctx context.Context, transactionID, actingClientID string) (*ports.SettlementResult, error) {
	var result ports.SettlementResult

	err := s.ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		txn, err := tx.TransactionByID(transactionID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load transaction: %w", err))
		}
		if txn == nil {
			return apperror.ErrNotFound("transaction")
		}
		if txn.ClientID != actingClientID {
			return apperror.ErrForbidden("approve this transaction")
		}
		if txn.IsTerminal() {
			return apperror.ErrAlreadyFinalized(string(txn.Status))
		}

		client, err := tx.UserByID(txn.ClientID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load client: %w", err))
		}
		merchant, err := tx.UserByID(txn.MerchantID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load merchant: %w", err))
		}
		if client == nil || merchant == nil {
			return apperror.ErrNotFound("settlement party")
		}

		clientBalance := client.AccountBalance.Sub(txn.Amount)
		merchantBalance := merchant.AccountBalance.Add(txn.Amount)

		if err := tx.SetUserBalance(client.ID, clientBalance); err != nil {
			return apperror.InternalError(fmt.Errorf("debit client: %w", err))
		}
		if err := tx.SetUserBalance(merchant.ID, merchantBalance); err != nil {
			return apperror.InternalError(fmt.Errorf("credit merchant: %w", err))
		}

		status := domain.TransactionStatusSuccess
		updated, err := tx.UpdateTransaction(txn.ID, domain.TransactionPatch{Status: &status})
		if err != nil {
			return apperror.InternalError(fmt.Errorf("mark success: %w", err))
		}

		result = ports.SettlementResult{
			Transaction:     updated,
			ClientBalance:   clientBalance,
			MerchantBalance: merchantBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", result.Transaction.ID).
		Str("tx_ref", result.Transaction.TransactionID).
		Str("amount", result.Transaction.Amount.String()).
		Msg("transaction settled")

	return &result, nil
}

// RejectTransaction declines a pending request. No balance moves.
func (s *PaymentServiceImpl) RejectTransaction(ctx context.Context, transactionID, actingClientID string) (*domain.Transaction, error) {
	var rejected *domain.Transaction

	err := s.ledger.Transact(ctx, func(tx ports.LedgerTx) error {
		txn, err := tx.TransactionByID(transactionID)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load transaction: %w", err))
		}
		if txn == nil {
			return apperror.ErrNotFound("transaction")
		}
		if txn.ClientID != actingClientID {
			return apperror.ErrForbidden("reject this transaction")
		}
		if txn.IsTerminal() {
			return apperror.ErrAlreadyFinalized(string(txn.Status))
		}

		status := domain.TransactionStatusRejected
		rejected, err = tx.UpdateTransaction(txn.ID, domain.TransactionPatch{Status: &status})
		if err != nil {
			return apperror.InternalError(fmt.Errorf("mark rejected: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", rejected.ID).
		Str("tx_ref", rejected.TransactionID).
		Msg("transaction rejected")

	return rejected, nil
}
