package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/database/likes"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

// likeRules applies to both create and update. There is no uniqueness
// constraint across (user_id, book_id); duplicate likes are allowed.
func likeRules() validation.Rules {
	return validation.Rules{
		"user_id": {validation.Required(), validation.Integer(), validation.Exists("users", "id")},
		"book_id": {validation.Required(), validation.Integer(), validation.Exists("books", "id")},
	}
}

// LikesController handles like CRUD endpoints.
type LikesController struct {
	likes     *likes.Repository
	validator *validation.Validator
}

func NewLikesController(likeRepo *likes.Repository, validator *validation.Validator) *LikesController {
	return &LikesController{
		likes:     likeRepo,
		validator: validator,
	}
}

func (lc *LikesController) List(c *gin.Context) {
	all, err := lc.likes.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "likes", all, "")
}

func (lc *LikesController) Create(c *gin.Context) {
	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := lc.validator.Validate(input, likeRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	userID, _ := cleanInt(clean, "user_id")
	bookID, _ := cleanInt(clean, "book_id")

	like := &entities.Like{
		UserID: uint(userID),
		BookID: uint(bookID),
	}
	if err := lc.likes.Insert(like); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "like", like, "Like created successfully")
}

func (lc *LikesController) Get(c *gin.Context) {
	id, ok := parseID(c, "Like not found")
	if !ok {
		return
	}

	like, err := lc.likes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Like not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondEntity(c, http.StatusOK, "like", like, "")
}

// Update responds 201 on success, preserving the historical convention.
func (lc *LikesController) Update(c *gin.Context) {
	id, ok := parseID(c, "Like not found")
	if !ok {
		return
	}

	like, err := lc.likes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Like not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := lc.validator.Validate(input, likeRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	userID, _ := cleanInt(clean, "user_id")
	bookID, _ := cleanInt(clean, "book_id")
	like.UserID = uint(userID)
	like.BookID = uint(bookID)

	if err := lc.likes.Update(like); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "like", like, "Like updated successfully")
}

func (lc *LikesController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Like not found")
	if !ok {
		return
	}

	like, err := lc.likes.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Like not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := lc.likes.Delete(like); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "like", like, "Like deleted successfully")
}
