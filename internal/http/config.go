package http

import (
	"github.com/elllibres/elllibres/internal/auth"
	"github.com/elllibres/elllibres/internal/database"
	"github.com/elllibres/elllibres/internal/database/books"
	"github.com/elllibres/elllibres/internal/database/comments"
	"github.com/elllibres/elllibres/internal/database/likes"
	"github.com/elllibres/elllibres/internal/database/reviews"
	"github.com/elllibres/elllibres/internal/database/users"
	"github.com/elllibres/elllibres/internal/validation"
)

// RouterConfig carries every dependency the router needs, improving
// testability and keeping NewRouter's signature stable.
type RouterConfig struct {
	Database *database.Database

	Users    *users.Repository
	Books    *books.Repository
	Reviews  *reviews.Repository
	Comments *comments.Repository
	Likes    *likes.Repository

	Validator *validation.Validator

	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager

	Version string
}
