// Package reviews provides database operations for review management.
package reviews

import (
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/entities"
)

// Repository handles all review database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new reviews repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll() ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Find(&reviews).Error
	return reviews, err
}

// FindByID retrieves a review by primary key.
// Returns gorm.ErrRecordNotFound if no row exists.
func (r *Repository) FindByID(id uint) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindWhere returns all reviews whose column equals value, e.g. every
// review for one book or by one user.
func (r *Repository) FindWhere(field string, value any) ([]entities.Review, error) {
	var reviews []entities.Review
	err := r.db.Where(field+" = ?", value).Find(&reviews).Error
	return reviews, err
}

func (r *Repository) Insert(review *entities.Review) error {
	return r.db.Create(review).Error
}

func (r *Repository) Update(review *entities.Review) error {
	return r.db.Save(review).Error
}

func (r *Repository) Delete(review *entities.Review) error {
	return r.db.Delete(review).Error
}
