// Package entities defines the GORM models persisted by the application.
package entities

import (
	"time"
)

// User owns books, reviews, comments and likes. The password hash is never
// serialized to JSON.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255" json:"name"`
	Surname    string    `gorm:"size:255" json:"surname"`
	Username   string    `gorm:"uniqueIndex;size:255" json:"username"`
	Age        int       `json:"age"`
	Email      string    `gorm:"uniqueIndex;size:255" json:"email"`
	Password   string    `gorm:"size:60" json:"-"`
	Admin      bool      `gorm:"default:false" json:"admin"`
	ProfileImg *string   `gorm:"size:1024" json:"profile_img"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	Title       string    `gorm:"size:50" json:"title"`
	Author      string    `gorm:"size:100" json:"author"`
	Genre       string    `gorm:"size:50" json:"genre"`
	Description string    `gorm:"type:text" json:"description"`
	BookImg     string    `gorm:"size:1024" json:"book_img"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Review rates a book from 1 to 5. A user may review the same book more
// than once.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"user_id"`
	BookID     uint      `gorm:"index" json:"book_id"`
	Title      string    `gorm:"size:50" json:"title"`
	Text       string    `gorm:"size:150" json:"text"`
	Valoration int       `json:"valoration"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	ReviewID  uint      `gorm:"index" json:"review_id"`
	Comment   string    `gorm:"size:200" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Like records a user liking a book. Duplicates are permitted.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	BookID    uint      `gorm:"index" json:"book_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccessToken is an opaque bearer credential. Only the SHA-256 hash of the
// token is stored; a user may hold any number of tokens at once.
type AccessToken struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index" json:"user_id"`
	Name       string     `gorm:"size:255" json:"name"`
	TokenHash  string     `gorm:"uniqueIndex;size:64" json:"-"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
