package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elllibres/elllibres/internal/auth"
	"github.com/elllibres/elllibres/internal/config"
	"github.com/elllibres/elllibres/internal/database"
	"github.com/elllibres/elllibres/internal/database/books"
	"github.com/elllibres/elllibres/internal/database/comments"
	"github.com/elllibres/elllibres/internal/database/likes"
	"github.com/elllibres/elllibres/internal/database/reviews"
	"github.com/elllibres/elllibres/internal/database/tokens"
	"github.com/elllibres/elllibres/internal/database/users"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

// testEnv wires the full router against a throwaway database, with one
// seeded user and a valid bearer token for authenticated requests.
type testEnv struct {
	router *gin.Engine
	db     *database.Database
	user   *entities.User
	token  string

	users    *users.Repository
	books    *books.Repository
	reviews  *reviews.Repository
	comments *comments.Repository
	likes    *likes.Repository
}

func setupTestEnv(t *testing.T) (*testEnv, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	env := &testEnv{
		db:       db,
		users:    users.NewRepository(db.DB),
		books:    books.NewRepository(db.DB),
		reviews:  reviews.NewRepository(db.DB),
		comments: comments.NewRepository(db.DB),
		likes:    likes.NewRepository(db.DB),
	}

	tokenRepo := tokens.NewRepository(db.DB)
	authService := auth.NewService(env.users, tokenRepo, config.Auth{BcryptCost: bcrypt.MinCost})
	validator := validation.New(db)

	env.router = NewRouter(RouterConfig{
		Database:       db,
		Users:          env.users,
		Books:          env.books,
		Reviews:        env.reviews,
		Comments:       env.comments,
		Likes:          env.likes,
		Validator:      validator,
		AuthService:    authService,
		AuthMiddleware: auth.NewMiddleware(authService, nil),
		Version:        "test",
	})

	hash, err := authService.HashPassword("pw123456")
	require.NoError(t, err)
	env.user = &entities.User{
		Name:     "Pol",
		Surname:  "Romeu",
		Username: "polromeu",
		Age:      24,
		Email:    "pol@example.com",
		Password: hash,
	}
	require.NoError(t, env.users.Insert(env.user))

	env.token, err = authService.IssueToken(env.user)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return env, cleanup
}

func (e *testEnv) seedBook(t *testing.T, title string) *entities.Book {
	t.Helper()
	book := &entities.Book{
		UserID:      e.user.ID,
		Title:       title,
		Author:      "Mercè Rodoreda",
		Genre:       "Novel·la",
		Description: "Una història de Barcelona",
		BookImg:     "https://example.com/cover.jpg",
	}
	require.NoError(t, e.books.Insert(book))
	return book
}

func (e *testEnv) seedReview(t *testing.T, bookID uint, valoration int) *entities.Review {
	t.Helper()
	review := &entities.Review{
		UserID:     e.user.ID,
		BookID:     bookID,
		Title:      "Imprescindible",
		Text:       "Una lectura que no es pot deixar",
		Valoration: valoration,
	}
	require.NoError(t, e.reviews.Insert(review))
	return review
}

// request performs an authenticated JSON request and decodes the envelope.
func (e *testEnv) request(t *testing.T, method, path string, payload map[string]any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	e.router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

// fieldErrors extracts the validation error map from a 422 envelope.
func fieldErrors(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	errs, ok := body["message"].(map[string]any)
	require.True(t, ok, "expected field error map, got %v", body["message"])
	return errs
}
