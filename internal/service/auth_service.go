package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/models"
	"github.com/lumen-academy/academy-api/internal/repository"
	"github.com/lumen-academy/academy-api/internal/session"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
)

type adminRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.AdminAccount, error)
	Create(ctx context.Context, username, passwordHash string) error
}

// AuthService provides admin signup, login and logout use cases backed by a
// server-side session store.
type AuthService struct {
	repo     adminRepository
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(repo adminRepository, sessions session.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{repo: repo, sessions: sessions, logger: logger}
}

// Signup creates a new admin account. The new account is never
// auto-authenticated; the caller must log in afterwards.
func (s *AuthService) Signup(ctx context.Context, req dto.CredentialsRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Username and password are required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Server error during account creation.")
	}

	if err := s.repo.Create(ctx, req.Username, string(hash)); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return appErrors.Clone(appErrors.ErrConflict, "Username already exists. Please login.")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Server error during account creation.")
	}

	s.logger.Info("admin account created", zap.String("username", req.Username))
	return nil
}

// Login verifies credentials and establishes a new session, returning its
// token. An unknown username and a wrong password yield the same error so
// the response does not reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, req dto.CredentialsRequest) (string, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Username and password are required.")
	}

	account, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.ErrInvalidCredentials
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Internal Server Error during authentication.")
	}

	// A row without a hash is a misconfigured account, not bad credentials.
	if account.PasswordHash == nil || *account.PasswordHash == "" {
		s.logger.Error("admin account has no password hash", zap.String("username", req.Username))
		return "", appErrors.ErrMisconfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return "", appErrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, account.Username)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Internal Server Error during authentication.")
	}

	s.logger.Info("admin logged in", zap.String("username", account.Username))
	return token, nil
}

// Logout destroys the session behind the given token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Could not log out.")
	}
	return nil
}
