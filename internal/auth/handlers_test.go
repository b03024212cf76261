package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/elllibres/elllibres/internal/config"
	"github.com/elllibres/elllibres/internal/database"
	"github.com/elllibres/elllibres/internal/database/tokens"
	"github.com/elllibres/elllibres/internal/database/users"
	"github.com/elllibres/elllibres/internal/validation"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *Service, *users.Repository, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_handlers_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	userRepo := users.NewRepository(db.DB)
	tokenRepo := tokens.NewRepository(db.DB)
	service := NewService(userRepo, tokenRepo, config.Auth{BcryptCost: bcrypt.MinCost})
	validator := validation.New(db)
	controller := NewController(service, nil, validator, userRepo)
	middleware := NewMiddleware(service, nil)

	router := gin.New()
	router.Use(middleware.Handler())
	router.POST("/register", controller.Register)
	router.POST("/login", controller.Login)
	router.GET("/logout", controller.Logout)
	router.GET("/profile", controller.Profile)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, service, userRepo, cleanup
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload map[string]any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func registerPayload() map[string]any {
	return map[string]any{
		"name":                  "Laia",
		"surname":               "Ferrer",
		"username":              "laiaferrer",
		"age":                   22,
		"email":                 "laia@example.com",
		"password":              "pw123456",
		"password_confirmation": "pw123456",
	}
}

func TestRegister(t *testing.T) {
	router, _, userRepo, cleanup := setupAuthRouter(t)
	defer cleanup()

	w, body := postJSON(t, router, "/register", registerPayload(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "New user registered", body["message"])
	assert.Equal(t, float64(http.StatusOK), body["httpCode"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "laiaferrer", user["username"])
	// The bcrypt hash must never leave the server
	assert.NotContains(t, user, "password")

	stored, err := userRepo.FindByEmail("laia@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", stored.Password)
}

func TestRegister_ValidationErrors(t *testing.T) {
	router, _, userRepo, cleanup := setupAuthRouter(t)
	defer cleanup()

	payload := registerPayload()
	delete(payload, "email")
	payload["password_confirmation"] = "different"

	w, body := postJSON(t, router, "/register", payload, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, body["status"])

	errs, ok := body["message"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	// Nothing was written
	all, err := userRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

// A numeric password with a matching numeric confirmation is rejected as a
// type error instead of reaching the bcrypt step.
func TestRegister_NonStringPassword(t *testing.T) {
	router, _, userRepo, cleanup := setupAuthRouter(t)
	defer cleanup()

	payload := registerPayload()
	payload["password"] = 12345678
	payload["password_confirmation"] = 12345678

	w, body := postJSON(t, router, "/register", payload, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs, ok := body["message"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, errs, "password")
	messages, ok := errs["password"].([]any)
	require.True(t, ok)
	assert.Contains(t, messages, "The password must be a string.")

	all, err := userRepo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	router, _, _, cleanup := setupAuthRouter(t)
	defer cleanup()

	w, _ := postJSON(t, router, "/register", registerPayload(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	payload := registerPayload()
	payload["username"] = "someoneelse"
	w, body := postJSON(t, router, "/register", payload, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs, ok := body["message"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "email")
}

func TestLogin(t *testing.T) {
	router, service, userRepo, cleanup := setupAuthRouter(t)
	defer cleanup()

	createTestUser(t, service, userRepo, "pol3@example.com", "pw123456")

	t.Run("valid credentials", func(t *testing.T) {
		w, body := postJSON(t, router, "/login", map[string]any{
			"email":    "pol3@example.com",
			"password": "pw123456",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["status"])
		assert.Equal(t, "Login successful", body["message"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w, body := postJSON(t, router, "/login", map[string]any{
			"email":    "pol3@example.com",
			"password": "nope",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		w, _ := postJSON(t, router, "/login", map[string]any{
			"email":    "ghost@example.com",
			"password": "pw123456",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// A failing store during login is a 500, never a 401 pretending the
// credentials were wrong.
func TestLogin_StoreFault(t *testing.T) {
	router, service, userRepo, cleanup := setupAuthRouter(t)

	createTestUser(t, service, userRepo, "marc3@example.com", "pw123456")
	cleanup()

	w, body := postJSON(t, router, "/login", map[string]any{
		"email":    "marc3@example.com",
		"password": "pw123456",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "Invalid credentials", body["message"])
}

func TestLogout_RevokesTokens(t *testing.T) {
	router, service, userRepo, cleanup := setupAuthRouter(t)
	defer cleanup()

	user := createTestUser(t, service, userRepo, "marc2@example.com", "pw123456")
	token, err := service.IssueToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User logout", body["message"])

	// The token no longer authenticates
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile(t *testing.T) {
	router, service, userRepo, cleanup := setupAuthRouter(t)
	defer cleanup()

	user := createTestUser(t, service, userRepo, "laia3@example.com", "pw123456")
	token, err := service.IssueToken(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	profile, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.Email, profile["email"])
	assert.NotContains(t, profile, "password")
}
