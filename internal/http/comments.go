package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/database/comments"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

func commentCreateRules() validation.Rules {
	return validation.Rules{
		"user_id":   {validation.Required(), validation.Integer(), validation.Exists("users", "id")},
		"review_id": {validation.Required(), validation.Integer(), validation.Exists("reviews", "id")},
		"comment":   {validation.Required(), validation.String(), validation.Max(200)},
	}
}

func commentUpdateRules() validation.Rules {
	return validation.Rules{
		"comment": {validation.Required(), validation.String(), validation.Max(200)},
	}
}

// CommentsController handles comment CRUD endpoints.
type CommentsController struct {
	comments  *comments.Repository
	validator *validation.Validator
}

func NewCommentsController(commentRepo *comments.Repository, validator *validation.Validator) *CommentsController {
	return &CommentsController{
		comments:  commentRepo,
		validator: validator,
	}
}

func (cc *CommentsController) List(c *gin.Context) {
	all, err := cc.comments.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "comments", all, "")
}

// CommentsByReview returns every comment under the review in the path.
func (cc *CommentsController) CommentsByReview(c *gin.Context) {
	id, ok := parseID(c, "Review not found")
	if !ok {
		return
	}

	found, err := cc.comments.FindWhere("review_id", id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "comments", found, "")
}

func (cc *CommentsController) Create(c *gin.Context) {
	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := cc.validator.Validate(input, commentCreateRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	userID, _ := cleanInt(clean, "user_id")
	reviewID, _ := cleanInt(clean, "review_id")
	text, _ := cleanString(clean, "comment")

	comment := &entities.Comment{
		UserID:   uint(userID),
		ReviewID: uint(reviewID),
		Comment:  text,
	}
	if err := cc.comments.Insert(comment); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "comment", comment, "Comment created successfully")
}

func (cc *CommentsController) Get(c *gin.Context) {
	id, ok := parseID(c, "Comment not found")
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Comment not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondEntity(c, http.StatusOK, "comment", comment, "")
}

// Update responds 200, not the 201 the other resources use; existing
// clients depend on it.
func (cc *CommentsController) Update(c *gin.Context) {
	id, ok := parseID(c, "Comment not found")
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Comment not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := cc.validator.Validate(input, commentUpdateRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	comment.Comment, _ = cleanString(clean, "comment")

	if err := cc.comments.Update(comment); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "comment", comment, "Comment updated successfully")
}

func (cc *CommentsController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Comment not found")
	if !ok {
		return
	}

	comment, err := cc.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Comment not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := cc.comments.Delete(comment); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "comment", comment, "Comment deleted successfully")
}
