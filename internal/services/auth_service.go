package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"luxe-estates/internal/models"
	"luxe-estates/internal/repositories"
	"luxe-estates/internal/utils"
)

// Session lifetimes per principal kind. Agents get the short window.
const (
	UserTokenDuration  = 72 * time.Hour
	AgentTokenDuration = 5 * time.Hour
)

// AgentRole is the fixed role tag stamped on every agent account.
const AgentRole = "agent"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the caller cannot tell which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAccountNotFound = errors.New("account not found")
)

// Duplicate sentinels come from the repository so a registration race lost at
// the unique index surfaces as the same error as the pre-insert check.
var (
	ErrDuplicateEmail    = repositories.ErrDuplicateEmail
	ErrDuplicateUsername = repositories.ErrDuplicateUsername
)

// AccountStore is the persistence surface the auth flow needs.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, kind models.AccountKind, email string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByID(ctx context.Context, kind models.AccountKind, id uuid.UUID) (*models.Account, error)
}

// AuthService drives registration and login for both principal kinds through
// one code path. Kind-specific policy is limited to the token lifetime and
// the claim shape; password hashing is one explicit bcrypt step here, never a
// persistence-layer side effect.
type AuthService struct {
	accounts AccountStore
	secret   []byte
}

func NewAuthService(accounts AccountStore, secret []byte) *AuthService {
	return &AuthService{accounts: accounts, secret: secret}
}

func (s *AuthService) RegisterUser(ctx context.Context, username, email, phone, password string) (*models.Account, error) {
	email = normalizeEmail(email)

	existing, err := s.accounts.FindByEmail(ctx, models.KindUser, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	existing, err = s.accounts.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Kind:         models.KindUser,
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hashed,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, *models.Account, error) {
	return s.login(ctx, models.KindUser, email, password)
}

func (s *AuthService) RegisterAgent(ctx context.Context, name, email, password, phone, location string) (string, *models.Account, error) {
	email = normalizeEmail(email)

	existing, err := s.accounts.FindByEmail(ctx, models.KindAgent, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrDuplicateEmail
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	account := &models.Account{
		Kind:         models.KindAgent,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Location:     location,
		Role:         AgentRole,
		PasswordHash: hashed,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return "", nil, err
	}

	token, err := s.tokenFor(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) LoginAgent(ctx context.Context, email, password string) (string, *models.Account, error) {
	return s.login(ctx, models.KindAgent, email, password)
}

// GetAccount resolves the principal behind a verified token.
func (s *AuthService) GetAccount(ctx context.Context, kind models.AccountKind, id uuid.UUID) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *AuthService) login(ctx context.Context, kind models.AccountKind, email, password string) (string, *models.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, kind, normalizeEmail(email))
	if err != nil {
		return "", nil, err
	}
	if account == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := utils.ComparePassword(account.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenFor(account)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *AuthService) tokenFor(account *models.Account) (string, error) {
	ttl := UserTokenDuration
	if account.Kind == models.KindAgent {
		ttl = AgentTokenDuration
	}
	return utils.GenerateJWT(utils.NewAccountClaims(account, ttl), s.secret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
