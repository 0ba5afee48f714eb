package service

import (
	"context"
	"fmt"

	"irispay/internal/core/domain"
	"irispay/internal/core/ports"
	"irispay/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService: it resolves a presented
// iris sample to a user by digest lookup and mints session tokens.
type AuthServiceImpl struct {
	ledger   ports.LedgerStore
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	ledger ports.LedgerStore,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		ledger:   ledger,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

var _ ports.AuthService = (*AuthServiceImpl)(nil)

// Authenticate hashes the presented sample and looks the digest up in the
// ledger. A miss is a generic authentication failure; the response does not
// reveal whether the credential was close to a known one.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, sample string) (*domain.User, error) {
	hash := s.hashSvc.Digest(sample)

	user, err := s.ledger.UserByCredentialHash(ctx, hash)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credential lookup: %w", err))
	}
	if user == nil {
		s.log.Debug().Msg("credential digest matched no user")
		return nil, apperror.ErrAuthFailed()
	}

	s.log.Info().
		Str("user_id", user.ID).
		Str("user_type", string(user.UserType)).
		Msg("user authenticated")

	return user, nil
}

// Login authenticates and issues a session token.
func (s *AuthServiceImpl) Login(ctx context.Context, sample string) (*ports.LoginResult, error) {
	user, err := s.Authenticate(ctx, sample)
	if err != nil {
		return nil, err
	}

	token, expiry, err := s.tokenSvc.Generate(user)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return &ports.LoginResult{
		User:        user,
		Token:       token,
		TokenExpiry: expiry,
	}, nil
}

// CurrentUser re-reads the session user from the ledger so callers see the
// balance as of now, not as of login.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.ledger.UserByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user")
	}
	return user, nil
}
