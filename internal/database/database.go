package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/elllibres/elllibres/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.User{},
		&entities.Book{},
		&entities.Review{},
		&entities.Comment{},
		&entities.Like{},
		&entities.AccessToken{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Exists reports whether any row in table has the given value in column.
// It backs the validation component's "exists" and "unique" rules.
func (d *Database) Exists(table, column string, value any) (bool, error) {
	var count int64
	err := d.DB.Table(table).Where(fmt.Sprintf("%s = ?", column), value).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsExcept reports whether any row other than exceptID has the given
// value in column. Used by uniqueness checks on updates so a row does not
// collide with itself.
func (d *Database) ExistsExcept(table, column string, value any, exceptID uint) (bool, error) {
	var count int64
	err := d.DB.Table(table).
		Where(fmt.Sprintf("%s = ?", column), value).
		Where("id <> ?", exceptID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
