package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/auth"
	"github.com/elllibres/elllibres/internal/database/users"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

func userCreateRules() validation.Rules {
	return validation.Rules{
		"name":     {validation.Required(), validation.String(), validation.Max(255)},
		"surname":  {validation.Required(), validation.String(), validation.Max(255)},
		"username": {validation.Required(), validation.String(), validation.Max(255), validation.Unique("users", "username")},
		"age":      {validation.Required(), validation.Integer()},
		"email":    {validation.Required(), validation.Email(), validation.Unique("users", "email")},
		"password": {validation.Required(), validation.String(), validation.Confirmed()},
	}
}

// userUpdateRules allows partial payloads; uniqueness checks ignore the row
// being updated.
func userUpdateRules(id uint) validation.Rules {
	return validation.Rules{
		"username":    {validation.String(), validation.Max(255), validation.UniqueExcept("users", "username", id)},
		"email":       {validation.Email(), validation.UniqueExcept("users", "email", id)},
		"password":    {validation.String(), validation.Confirmed()},
		"profile_img": {validation.String()},
		"admin":       {validation.Boolean()},
	}
}

// UsersController handles user CRUD endpoints.
type UsersController struct {
	users       *users.Repository
	validator   *validation.Validator
	authService *auth.Service
}

func NewUsersController(userRepo *users.Repository, validator *validation.Validator, authService *auth.Service) *UsersController {
	return &UsersController{
		users:       userRepo,
		validator:   validator,
		authService: authService,
	}
}

// List returns every user, unfiltered and unpaginated.
func (uc *UsersController) List(c *gin.Context) {
	all, err := uc.users.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "users", all, "")
}

// Create persists a new user. Responds 200 rather than 201 for
// compatibility with existing clients.
func (uc *UsersController) Create(c *gin.Context) {
	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := uc.validator.Validate(input, userCreateRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	password, _ := cleanString(clean, "password")
	hash, err := uc.authService.HashPassword(password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	name, _ := cleanString(clean, "name")
	surname, _ := cleanString(clean, "surname")
	username, _ := cleanString(clean, "username")
	age, _ := cleanInt(clean, "age")
	email, _ := cleanString(clean, "email")

	user := &entities.User{
		Name:       name,
		Surname:    surname,
		Username:   username,
		Age:        age,
		Email:      email,
		Password:   hash,
		Admin:      false,
		ProfileImg: nil,
	}
	if err := uc.users.Insert(user); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	respondEntity(c, http.StatusOK, "user", user, "User created successfully")
}

// Get looks a user up by primary key.
func (uc *UsersController) Get(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}

	user, err := uc.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondEntity(c, http.StatusOK, "user", user, "")
}

// Update applies the supplied fields to an existing user. Responds 201 on
// success, preserving the historical convention.
func (uc *UsersController) Update(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}

	user, err := uc.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := uc.validator.Validate(input, userUpdateRules(id))
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	if username, ok := cleanString(clean, "username"); ok {
		user.Username = username
	}
	if email, ok := cleanString(clean, "email"); ok {
		user.Email = email
	}
	if password, ok := cleanString(clean, "password"); ok {
		hash, err := uc.authService.HashPassword(password)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		user.Password = hash
	}
	if img, ok := cleanString(clean, "profile_img"); ok {
		user.ProfileImg = &img
	}
	if admin, ok := cleanBool(clean, "admin"); ok {
		user.Admin = admin
	}

	if err := uc.users.Update(user); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "user", user, "User updated successfully")
}

// Delete removes a user and returns its last-known state.
func (uc *UsersController) Delete(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}

	user, err := uc.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := uc.users.Delete(user); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "user", user, "User deleted successfully")
}
