package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elllibres/elllibres/internal/database/users"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

// registerRules is the rule table applied to POST /register.
func registerRules() validation.Rules {
	return validation.Rules{
		"name":     {validation.Required(), validation.String(), validation.Max(255)},
		"surname":  {validation.Required(), validation.String(), validation.Max(255)},
		"username": {validation.Required(), validation.String(), validation.Max(255), validation.Unique("users", "username")},
		"age":      {validation.Required(), validation.Integer()},
		"email":    {validation.Required(), validation.Email(), validation.Unique("users", "email")},
		"password": {validation.Required(), validation.String(), validation.Confirmed()},
	}
}

// Controller handles authentication endpoints.
type Controller struct {
	service        *Service
	sessionManager *SessionManager
	validator      *validation.Validator
	users          *users.Repository
}

// NewController creates a new authentication controller.
func NewController(service *Service, sessionManager *SessionManager, validator *validation.Validator, userRepo *users.Repository) *Controller {
	return &Controller{
		service:        service,
		sessionManager: sessionManager,
		validator:      validator,
		users:          userRepo,
	}
}

// Register creates a new user, opens a session and issues a bearer token.
// Responds 200 (not 201) for compatibility with existing clients.
func (ac *Controller) Register(c *gin.Context) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":   false,
			"message":  "Invalid request body",
			"httpCode": http.StatusUnprocessableEntity,
		})
		return
	}

	clean, errs, err := ac.validator.Validate(input, registerRules())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}
	if errs != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status":   false,
			"message":  errs,
			"httpCode": http.StatusUnprocessableEntity,
		})
		return
	}

	hash, err := ac.service.HashPassword(clean["password"].(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}

	user := &entities.User{
		Name:       clean["name"].(string),
		Surname:    clean["surname"].(string),
		Username:   clean["username"].(string),
		Age:        clean["age"].(int),
		Email:      clean["email"].(string),
		Password:   hash,
		Admin:      false,
		ProfileImg: nil,
	}
	if err := ac.users.Insert(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}

	if ac.sessionManager != nil {
		if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":   false,
				"message":  err.Error(),
				"httpCode": http.StatusInternalServerError,
			})
			return
		}
	}

	token, err := ac.service.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"user":     user,
		"message":  "New user registered",
		"token":    token,
		"httpCode": http.StatusOK,
	})
}

// Login verifies credentials and issues a fresh bearer token. Earlier
// tokens for the user remain valid.
func (ac *Controller) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// A malformed body is treated the same as bad credentials.
	_ = c.ShouldBindJSON(&input)

	user, err := ac.service.Authenticate(input.Email, input.Password)
	if err != nil {
		// Only a credential mismatch is the caller's fault; a failing
		// store must not masquerade as a rejected login.
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":   false,
				"message":  "Invalid credentials",
				"httpCode": http.StatusUnauthorized,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}

	if ac.sessionManager != nil {
		if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":   false,
				"message":  err.Error(),
				"httpCode": http.StatusInternalServerError,
			})
			return
		}
	}

	token, err := ac.service.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"user":     user,
		"token":    token,
		"message":  "Login successful",
		"httpCode": http.StatusOK,
	})
}

// Logout revokes every bearer token of the calling identity and destroys
// the session.
func (ac *Controller) Logout(c *gin.Context) {
	userID := GetUserID(c)
	if err := ac.service.RevokeTokens(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":   false,
			"message":  err.Error(),
			"httpCode": http.StatusInternalServerError,
		})
		return
	}

	if ac.sessionManager != nil {
		_ = ac.sessionManager.DestroySession(c.Request)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"message":  "User logout",
		"httpCode": http.StatusOK,
	})
}

// Profile returns the authenticated user.
func (ac *Controller) Profile(c *gin.Context) {
	user := GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":   false,
			"message":  "Unauthenticated.",
			"httpCode": http.StatusUnauthorized,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"user":     user,
		"httpCode": http.StatusOK,
	})
}
