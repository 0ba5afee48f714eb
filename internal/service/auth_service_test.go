package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"irispay/internal/adapter/storage/memory"
	"irispay/internal/core/domain"
	"irispay/internal/core/notify"
	"irispay/internal/service"
	"irispay/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*service.AuthServiceImpl, *memory.Store) {
	t.Helper()
	store := memory.NewStore(notify.NewBus(zerolog.Nop()))
	hashSvc := service.NewSHA256HashService()
	memory.SeedDemo(store, hashSvc)

	tokenSvc := service.NewJWTTokenService("test-session-secret", time.Hour, "irispay-test")
	return service.NewAuthService(store, hashSvc, tokenSvc, zerolog.Nop()), store
}

func TestAuthService_Authenticate_KnownSample(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.Authenticate(context.Background(), memory.SeedAliceSample)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, memory.SeedAliceID, user.ID)
	assert.Equal(t, domain.UserTypeClient, user.UserType)
}

func TestAuthService_Authenticate_UnknownSampleFailsGenerically(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// A simulated scan produces a pattern no seeded credential matches.
	user, err := svc.Authenticate(context.Background(), domain.SimulateIrisScan())
	assert.Nil(t, user)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
	// The message must not leak whether the credential exists.
	assert.NotContains(t, appErr.Message, "iris")
	assert.NotContains(t, appErr.Message, "user")
}

func TestAuthService_Login_IssuesValidatableToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	tokenSvc := service.NewJWTTokenService("test-session-secret", time.Hour, "irispay-test")

	result, err := svc.Login(context.Background(), memory.SeedCafeSample)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, memory.SeedCafeID, result.User.ID)
	assert.True(t, result.TokenExpiry.After(time.Now()))

	claims, err := tokenSvc.Validate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, memory.SeedCafeID, claims.UserID)
	assert.Equal(t, domain.UserTypeMerchant, claims.UserType)
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	user, err := svc.CurrentUser(context.Background(), memory.SeedBobID)
	require.NoError(t, err)
	assert.Equal(t, "Bob Smith", user.FullName)

	missing, err := svc.CurrentUser(context.Background(), "ghost")
	assert.Nil(t, missing)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LEDGER_001", appErr.Code)
}

func TestJWTTokenService_RejectsTamperedToken(t *testing.T) {
	tokenSvc := service.NewJWTTokenService("secret-a", time.Hour, "irispay-test")
	other := service.NewJWTTokenService("secret-b", time.Hour, "irispay-test")

	token, _, err := tokenSvc.Generate(&domain.User{ID: "1", UserType: domain.UserTypeClient})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}
