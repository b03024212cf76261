package http

import (
	"github.com/gin-gonic/gin"

	"github.com/elllibres/elllibres/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// The auth gate covers every route except /login, /register, /health
// and /ping.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Session middleware must run before the auth gate so session-cookie
	// requests can be resolved to a user.
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	authController := auth.NewController(cfg.AuthService, cfg.SessionManager, cfg.Validator, cfg.Users)
	usersController := NewUsersController(cfg.Users, cfg.Validator, cfg.AuthService)
	booksController := NewBooksController(cfg.Books, cfg.Validator)
	reviewsController := NewReviewsController(cfg.Reviews, cfg.Validator)
	commentsController := NewCommentsController(cfg.Comments, cfg.Validator)
	likesController := NewLikesController(cfg.Likes, cfg.Validator)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth endpoints
	router.POST("/login", authController.Login)
	router.POST("/register", authController.Register)
	router.POST("/logout", authController.Logout)
	router.GET("/profile", authController.Profile)
	router.GET("/user", authController.Profile)

	// Users
	router.GET("/users", usersController.List)
	router.POST("/users", usersController.Create)
	router.GET("/users/:id", usersController.Get)
	router.PUT("/users/:id", usersController.Update)
	router.DELETE("/users/:id", usersController.Delete)
	router.GET("/users/:id/books", booksController.BooksByUser)
	router.GET("/users/:id/reviews", reviewsController.ReviewsByUser)

	// Books
	router.GET("/books", booksController.List)
	router.POST("/books", booksController.Create)
	router.GET("/books/:id", booksController.Get)
	router.PUT("/books/:id", booksController.Update)
	router.DELETE("/books/:id", booksController.Delete)
	router.GET("/books/:id/reviews", reviewsController.ReviewsByBook)

	// Reviews
	router.GET("/reviews", reviewsController.List)
	router.POST("/reviews", reviewsController.Create)
	router.GET("/reviews/:id", reviewsController.Get)
	router.PUT("/reviews/:id", reviewsController.Update)
	router.DELETE("/reviews/:id", reviewsController.Delete)
	router.GET("/reviews/:id/comments", commentsController.CommentsByReview)

	// Comments
	router.GET("/comments", commentsController.List)
	router.POST("/comments", commentsController.Create)
	router.GET("/comments/:id", commentsController.Get)
	router.PUT("/comments/:id", commentsController.Update)
	router.DELETE("/comments/:id", commentsController.Delete)

	// Likes
	router.GET("/likes", likesController.List)
	router.POST("/likes", likesController.Create)
	router.GET("/likes/:id", likesController.Get)
	router.PUT("/likes/:id", likesController.Update)
	router.DELETE("/likes/:id", likesController.Delete)

	return router
}
