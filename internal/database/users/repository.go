// Package users provides database operations for user management.
package users

import (
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.Find(&users).Error
	return users, err
}

// FindByID retrieves a user by primary key.
// Returns gorm.ErrRecordNotFound if no row exists.
func (r *Repository) FindByID(id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by email address. Used by the login flow.
func (r *Repository) FindByEmail(email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindWhere(field string, value any) ([]entities.User, error) {
	var users []entities.User
	err := r.db.Where(field+" = ?", value).Find(&users).Error
	return users, err
}

func (r *Repository) Insert(user *entities.User) error {
	return r.db.Create(user).Error
}

func (r *Repository) Update(user *entities.User) error {
	return r.db.Save(user).Error
}

func (r *Repository) Delete(user *entities.User) error {
	return r.db.Delete(user).Error
}
