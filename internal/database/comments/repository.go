package comments

import (
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/entities"
)

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll() ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.db.Find(&comments).Error
	return comments, err
}

func (r *Repository) FindByID(id uint) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *Repository) FindWhere(field string, value any) ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.db.Where(field+" = ?", value).Find(&comments).Error
	return comments, err
}

func (r *Repository) Insert(comment *entities.Comment) error {
	return r.db.Create(comment).Error
}

func (r *Repository) Update(comment *entities.Comment) error {
	return r.db.Save(comment).Error
}

func (r *Repository) Delete(comment *entities.Comment) error {
	return r.db.Delete(comment).Error
}
