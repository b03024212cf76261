// Package tokens provides storage for bearer access tokens.
//
// Only SHA-256 hashes of tokens are persisted; the plaintext token is shown
// to the caller once at issuance and never stored.
package tokens

import (
	"time"

	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/entities"
)

// Repository handles access token database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tokens repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores a new access token row.
func (r *Repository) Insert(token *entities.AccessToken) error {
	return r.db.Create(token).Error
}

// FindByHash retrieves a token by its SHA-256 hash.
// Returns gorm.ErrRecordNotFound if no such token exists.
func (r *Repository) FindByHash(hash string) (*entities.AccessToken, error) {
	var token entities.AccessToken
	if err := r.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// FindByUser returns all tokens issued to a user.
func (r *Repository) FindByUser(userID uint) ([]entities.AccessToken, error) {
	var tokens []entities.AccessToken
	err := r.db.Where("user_id = ?", userID).Find(&tokens).Error
	return tokens, err
}

// TouchLastUsed records when a token last authenticated a request.
func (r *Repository) TouchLastUsed(tokenID uint) error {
	now := time.Now()
	return r.db.Model(&entities.AccessToken{}).
		Where("id = ?", tokenID).
		Update("last_used_at", now).Error
}

// DeleteByUser removes every token issued to a user. Used by logout.
func (r *Repository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&entities.AccessToken{}).Error
}
