// Package books provides database operations for book management.
package books

import (
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAll returns every book, unfiltered.
func (r *Repository) FindAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Find(&books).Error
	return books, err
}

// FindByID retrieves a book by primary key.
// Returns gorm.ErrRecordNotFound if no row exists.
func (r *Repository) FindByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// FindWhere returns all books whose column equals value.
func (r *Repository) FindWhere(field string, value any) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where(field+" = ?", value).Find(&books).Error
	return books, err
}

func (r *Repository) Insert(book *entities.Book) error {
	return r.db.Create(book).Error
}

func (r *Repository) Update(book *entities.Book) error {
	return r.db.Save(book).Error
}

func (r *Repository) Delete(book *entities.Book) error {
	return r.db.Delete(book).Error
}
