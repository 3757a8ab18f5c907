package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/shopease/helpdesk/internal/auth"
	"github.com/shopease/helpdesk/internal/config"
	"github.com/shopease/helpdesk/internal/domain"
	"github.com/shopease/helpdesk/internal/repository"
	apperrors "github.com/shopease/helpdesk/pkg/util"
)

// AuthService coordinates signup and login flows.
type AuthService struct {
	customers  repository.CustomerRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, customers repository.CustomerRepository) *AuthService {
	return &AuthService{
		customers:  customers,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		bcryptCost: cfg.BcryptCost,
	}
}

// SignupInput describes a new account request.
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Password  string
	Role      string
}

// Signup registers a customer account. Only the password hash is
// stored; the role defaults to customer when none is given.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.Customer, error) {
	role := domain.RoleCustomer
	if input.Role != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		role = parsed
	}

	if _, err := s.customers.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Login authenticates by exact email match and password verification
// and issues a token carrying the stored role. Unknown email and wrong
// password collapse into the same failure so accounts cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return "", time.Time{}, err
	}
	if !auth.VerifyPassword(password, customer.PasswordHash) {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.tokenMgr.Issue(customer.Email, customer.Role)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
