package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elllibres/elllibres/internal/auth"
	"github.com/elllibres/elllibres/internal/config"
	"github.com/elllibres/elllibres/internal/database"
	"github.com/elllibres/elllibres/internal/database/books"
	"github.com/elllibres/elllibres/internal/database/comments"
	"github.com/elllibres/elllibres/internal/database/likes"
	"github.com/elllibres/elllibres/internal/database/reviews"
	"github.com/elllibres/elllibres/internal/database/tokens"
	"github.com/elllibres/elllibres/internal/database/users"
	http_controllers "github.com/elllibres/elllibres/internal/http"
	"github.com/elllibres/elllibres/internal/validation"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting El Llibres API v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Entity repositories
	userRepo := users.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	reviewRepo := reviews.NewRepository(db.DB)
	commentRepo := comments.NewRepository(db.DB)
	likeRepo := likes.NewRepository(db.DB)
	tokenRepo := tokens.NewRepository(db.DB)

	validator := validation.New(db)

	authService := auth.NewService(userRepo, tokenRepo, cfg.Auth)

	// The session store needs the underlying SQL DB
	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	authMiddleware := auth.NewMiddleware(authService, sessionManager)

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Users:          userRepo,
		Books:          bookRepo,
		Reviews:        reviewRepo,
		Comments:       commentRepo,
		Likes:          likeRepo,
		Validator:      validator,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		SessionManager: sessionManager,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
