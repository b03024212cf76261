package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/config"
	"github.com/elllibres/elllibres/internal/database/tokens"
	"github.com/elllibres/elllibres/internal/database/users"
	"github.com/elllibres/elllibres/internal/entities"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service handles credential verification and bearer token lifecycle.
type Service struct {
	users  *users.Repository
	tokens *tokens.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(userRepo *users.Repository, tokenRepo *tokens.Repository, cfg config.Auth) *Service {
	return &Service{
		users:  userRepo,
		tokens: tokenRepo,
		config: cfg,
	}
}

// HashPassword hashes a plaintext password with the configured bcrypt cost.
func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.config.BcryptCost)
}

// Authenticate looks a user up by email and verifies the password against
// the stored bcrypt hash. Both failure modes return ErrInvalidCredentials.
func (s *Service) Authenticate(email, password string) (*entities.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.Password); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

// IssueToken creates a new bearer token for the user and returns the
// plaintext once. Earlier tokens stay valid; concurrent sessions are
// allowed.
func (s *Service) IssueToken(user *entities.User) (string, error) {
	plaintext, hash, err := GenerateAccessToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	token := &entities.AccessToken{
		UserID:    user.ID,
		Name:      user.Name + "-token",
		TokenHash: hash,
	}
	if err := s.tokens.Insert(token); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}

	return plaintext, nil
}

// ValidateToken resolves a plaintext bearer token to its user.
func (s *Service) ValidateToken(plaintext string) (*entities.User, error) {
	if plaintext == "" {
		return nil, ErrInvalidToken
	}

	token, err := s.tokens.FindByHash(HashToken(plaintext))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.users.FindByID(token.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	// Best effort; authentication proceeds even if the timestamp write fails.
	_ = s.tokens.TouchLastUsed(token.ID)

	return user, nil
}

// RevokeTokens deletes every token issued to the user.
func (s *Service) RevokeTokens(userID uint) error {
	if err := s.tokens.DeleteByUser(userID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (s *Service) GetUserByID(id uint) (*entities.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
