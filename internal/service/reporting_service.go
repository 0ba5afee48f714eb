package service

import (
	"context"
	"fmt"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"

	"github.com/shopspring/decimal"
)

// reportingService implements ports.ReportingService over the ledger store.
type reportingService struct {
	ledger ports.LedgerStore
}

// NewReportingService creates a new reporting service.
func NewReportingService(ledger ports.LedgerStore) ports.ReportingService {
	return &reportingService{ledger: ledger}
}

// ListTransactions returns the user's full history, newest first.
func (s *reportingService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	txns, err := s.ledger.TransactionsForUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// ListPendingTransactions returns the client's open payment requests.
func (s *reportingService) ListPendingTransactions(ctx context.Context, clientID string) ([]domain.Transaction, error) {
	txns, err := s.ledger.PendingTransactionsForClient(ctx, clientID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pending: %w", err))
	}
	return txns, nil
}

// GetDashboardStats aggregates the user's history for the dashboard header.
func (s *reportingService) GetDashboardStats(ctx context.Context, userID string) (*ports.DashboardStats, error) {
	txns, err := s.ledger.TransactionsForUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load history: %w", err))
	}

	stats := &ports.DashboardStats{SettledVolume: decimal.Zero}
	for _, t := range txns {
		stats.TotalTransactions++
		switch t.Status {
		case domain.TransactionStatusPending:
			stats.Pending++
		case domain.TransactionStatusSuccess:
			stats.Successful++
			stats.SettledVolume = stats.SettledVolume.Add(t.Amount)
		case domain.TransactionStatusRejected:
			stats.Rejected++
		case domain.TransactionStatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

// GetMerchantSettings returns the merchant's business profile.
func (s *reportingService) GetMerchantSettings(ctx context.Context, merchantID string) (*domain.MerchantSettings, error) {
	settings, err := s.ledger.MerchantSettings(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load settings: %w", err))
	}
	if settings == nil {
		return nil, apperror.ErrNotFound("merchant settings")
	}
	return settings, nil
}

// ListClients returns the client users a merchant can address a payment
// request to.
func (s *reportingService) ListClients(ctx context.Context) ([]domain.User, error) {
	clientType := domain.UserTypeClient
	users, err := s.ledger.ListUsers(ctx, &clientType)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list clients: %w", err))
	}
	return users, nil
}
