package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/database/reviews"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

func reviewCreateRules() validation.Rules {
	return validation.Rules{
		"user_id":    {validation.Required(), validation.Integer(), validation.Exists("users", "id")},
		"book_id":    {validation.Required(), validation.Integer(), validation.Exists("books", "id")},
		"title":      {validation.Required(), validation.String(), validation.Max(50)},
		"text":       {validation.Required(), validation.String(), validation.Max(150)},
		"valoration": {validation.Required(), validation.Integer(), validation.Min(1), validation.Max(5)},
	}
}

func reviewUpdateRules() validation.Rules {
	return validation.Rules{
		"title":      {validation.Required(), validation.String(), validation.Max(50)},
		"text":       {validation.Required(), validation.String(), validation.Max(150)},
		"valoration": {validation.Required(), validation.Integer(), validation.Min(1), validation.Max(5)},
	}
}

// ReviewsController handles review CRUD endpoints. A user may review the
// same book any number of times.
type ReviewsController struct {
	reviews   *reviews.Repository
	validator *validation.Validator
}

func NewReviewsController(reviewRepo *reviews.Repository, validator *validation.Validator) *ReviewsController {
	return &ReviewsController{
		reviews:   reviewRepo,
		validator: validator,
	}
}

func (rc *ReviewsController) List(c *gin.Context) {
	all, err := rc.reviews.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "reviews", all, "")
}

// ReviewsByBook returns every review of the book in the path.
func (rc *ReviewsController) ReviewsByBook(c *gin.Context) {
	id, ok := parseID(c, "Book not found")
	if !ok {
		return
	}

	found, err := rc.reviews.FindWhere("book_id", id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "reviews", found, "")
}

// ReviewsByUser returns every review written by the user in the path.
func (rc *ReviewsController) ReviewsByUser(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}

	found, err := rc.reviews.FindWhere("user_id", id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "reviews", found, "")
}

func (rc *ReviewsController) Create(c *gin.Context) {
	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := rc.validator.Validate(input, reviewCreateRules())
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
	title, _ := cleanString(clean, "title")
	text, _ := cleanString(clean, "text")
	valoration, _ := cleanInt(clean, "valoration")

	review := &entities.Review{
		UserID:     uint(userID),
		BookID:     uint(bookID),
		Title:      title,
		Text:       text,
		Valoration: valoration,
	}
	if err := rc.reviews.Insert(review); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "review", review, "Review created successfully")
}

func (rc *ReviewsController) Get(c *gin.Context) {
	id, ok := parseID(c, "Review not found")
	if !ok {
		return
	}

	review, err := rc.reviews.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Review not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondEntity(c, http.StatusOK, "review", review, "")
}

// Update responds 201 on success, preserving the historical convention.
func (rc *ReviewsController) Update(c *gin.Context) {
	id, ok := parseID(c, "Review not found")
	if !ok {
		return
	}

	review, err := rc.reviews.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Review not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := rc.validator.Validate(input, reviewUpdateRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	review.Title, _ = cleanString(clean, "title")
	review.Text, _ = cleanString(clean, "text")
	review.Valoration, _ = cleanInt(clean, "valoration")

	if err := rc.reviews.Update(review); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "review", review, "Review updated successfully")
}

func (rc *ReviewsController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Review not found")
	if !ok {
		return
	}

	review, err := rc.reviews.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Review not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := rc.reviews.Delete(review); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "review", review, "Review deleted successfully")
}
