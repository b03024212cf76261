package likes

import (
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/entities"
)

// Repository handles all like database operations.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll() ([]entities.Like, error) {
	var likes []entities.Like
	err := r.db.Find(&likes).Error
	return likes, err
}

func (r *Repository) FindByID(id uint) (*entities.Like, error) {
	var like entities.Like
	if err := r.db.First(&like, id).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *Repository) FindWhere(field string, value any) ([]entities.Like, error) {
	var likes []entities.Like
	err := r.db.Where(field+" = ?", value).Find(&likes).Error
	return likes, err
}

func (r *Repository) Insert(like *entities.Like) error {
	return r.db.Create(like).Error
}

func (r *Repository) Update(like *entities.Like) error {
	return r.db.Save(like).Error
}

func (r *Repository) Delete(like *entities.Like) error {
	return r.db.Delete(like).Error
}
