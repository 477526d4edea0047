package accountapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	accountEntity "chirp/internal/core/account"
	accountPort "chirp/internal/ports/account"
	sessionPort "chirp/internal/ports/session"
)

// SessionTTL bounds both the JWT lifetime and the backing session record.
const SessionTTL = 24 * time.Hour

// AccountService handles registration, login and logout.
type AccountService struct {
	AccountRepository accountPort.AccountRepository
	Sessions          sessionPort.Store
	jwtKey            []byte
	logger            *zap.Logger
}

func NewAccountService(repo accountPort.AccountRepository, sessions sessionPort.Store, jwtKey []byte, logger *zap.Logger) *AccountService {
	return &AccountService{
		AccountRepository: repo,
		Sessions:          sessions,
		jwtKey:            jwtKey,
		logger:            logger,
	}
}

// Register creates a new account with a bcrypt-hashed password. The
// username pre-check produces the friendly error; the unique column on
// accounts.username is the authority under concurrent registration.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*accountPort.AccountDTO, error) {
	if existing, err := s.AccountRepository.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, accountEntity.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &accountEntity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	created, err := s.AccountRepository.Create(ctx, a)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, accountEntity.ErrUsernameTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return toDTO(created), nil
}

// Login verifies the credentials, records a session and issues a JWT
// whose jti references the session record. Deleting the session revokes
// the token before its expiry.
func (s *AccountService) Login(ctx context.Context, username, password string) (*accountPort.LoginResponse, error) {
	a, err := s.AccountRepository.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("login failed: unknown username", zap.String("username", username))
		return nil, accountEntity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login failed: wrong password", zap.String("username", username))
		return nil, accountEntity.ErrInvalidCredentials
	}

	sessionID := uuid.Must(uuid.NewV4()).String()
	if err := s.Sessions.Save(ctx, sessionID, a.ID.String(), SessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	expiresAt := time.Now().Add(SessionTTL).Unix()
	claims := &jwt.StandardClaims{
		Id:        sessionID,
		Subject:   a.ID.String(),
		Issuer:    "chirp",
		ExpiresAt: expiresAt,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &accountPort.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session referenced by the presented token.
func (s *AccountService) Logout(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*accountPort.AccountDTO, error) {
	a, err := s.AccountRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (s *AccountService) GetByUsername(ctx context.Context, username string) (*accountPort.AccountDTO, error) {
	a, err := s.AccountRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func toDTO(a *accountEntity.Account) *accountPort.AccountDTO {
	return &accountPort.AccountDTO{
		ID:       a.ID.String(),
		Username: a.Username,
		Email:    a.Email,
	}
}
