package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/victoreder/admin-hublabel-sub000/internal/auth"
	"github.com/victoreder/admin-hublabel-sub000/internal/config"
	"github.com/victoreder/admin-hublabel-sub000/internal/domain"
	"github.com/victoreder/admin-hublabel-sub000/internal/repository"
	apperrors "github.com/victoreder/admin-hublabel-sub000/pkg/util/errorutil"
)

// AuthService handles operator login.
type AuthService struct {
	operators repository.OperatorRepository
	tokens    *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.AuthConfig, operators repository.OperatorRepository) *AuthService {
	return &AuthService{
		operators: operators,
		tokens:    auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login validates credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, *domain.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", time.Time{}, nil, apperrors.NewValidationError("email e senha obrigatórios", nil)
	}

	operator, err := s.operators.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return "", time.Time{}, nil, err
	}

	if err := auth.ComparePassword(operator.PasswordHash, password); err != nil {
		return "", time.Time{}, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(operator.ID, operator.Email)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return token, expiresAt, operator, nil
}
