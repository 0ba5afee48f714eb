package service_test

import (
	"context"
	"errors"
	"testing"

	"irispay/internal/adapter/storage/memory"
	"irispay/internal/core/domain"
	"irispay/internal/core/notify"
	"irispay/internal/core/ports"
	"irispay/internal/service"
	"irispay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportingFixture(t *testing.T) (ports.ReportingService, *memory.Store) {
	t.Helper()
	store := memory.NewStore(notify.NewBus(zerolog.Nop()))
	memory.SeedDemo(store, service.NewSHA256HashService())
	return service.NewReportingService(store), store
}

func TestReportingService_ListTransactions(t *testing.T) {
	svc, _ := newReportingFixture(t)

	txns, err := svc.ListTransactions(context.Background(), memory.SeedCafeID)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].CreatedAt.After(txns[i-1].CreatedAt), "history must be newest first")
	}
}

func TestReportingService_GetDashboardStats(t *testing.T) {
	svc, store := newReportingFixture(t)
	ctx := context.Background()

	paySvc := service.NewPaymentService(store, zerolog.Nop())
	_, err := paySvc.CreatePaymentRequest(ctx, ports.CreatePaymentRequest{
		MerchantID: memory.SeedCafeID,
		ClientID:   memory.SeedAliceID,
		Amount:     decimal.NewFromFloat(12.00),
	})
	require.NoError(t, err)

	stats, err := svc.GetDashboardStats(ctx, memory.SeedCafeID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalTransactions)
	assert.Equal(t, int64(3), stats.Successful)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(0), stats.Rejected)
	// 25.50 + 18.75 + 42.00 settled in the seed history.
	assert.True(t, stats.SettledVolume.Equal(decimal.NewFromFloat(86.25)), "settled volume: %s", stats.SettledVolume)
}

func TestReportingService_GetMerchantSettings(t *testing.T) {
	svc, _ := newReportingFixture(t)

	settings, err := svc.GetMerchantSettings(context.Background(), memory.SeedCafeID)
	require.NoError(t, err)
	assert.Equal(t, "Food & Beverage", settings.BusinessCategory)

	_, err = svc.GetMerchantSettings(context.Background(), memory.SeedAliceID)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LEDGER_001", appErr.Code)
}

func TestReportingService_ListClients(t *testing.T) {
	svc, _ := newReportingFixture(t)

	clients, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)
	for _, c := range clients {
		assert.Equal(t, domain.UserTypeClient, c.UserType)
	}
}
