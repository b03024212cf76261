package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/elllibres/elllibres/internal/database/books"
	"github.com/elllibres/elllibres/internal/entities"
	"github.com/elllibres/elllibres/internal/validation"
)

func bookCreateRules() validation.Rules {
	return validation.Rules{
		"user_id":     {validation.Required(), validation.Integer(), validation.Exists("users", "id")},
		"title":       {validation.Required(), validation.String(), validation.Max(50)},
		"author":      {validation.Required(), validation.String(), validation.Max(100)},
		"genre":       {validation.Required(), validation.String(), validation.Max(50)},
		"description": {validation.Required(), validation.String()},
		"book_img":    {validation.Required(), validation.String()},
	}
}

// bookUpdateRules does not permit changing the owning user.
func bookUpdateRules() validation.Rules {
	return validation.Rules{
		"title":       {validation.Required(), validation.String(), validation.Max(50)},
		"author":      {validation.Required(), validation.String(), validation.Max(100)},
		"genre":       {validation.Required(), validation.String(), validation.Max(50)},
		"description": {validation.Required(), validation.String()},
		"book_img":    {validation.String()},
	}
}

// BooksController handles book CRUD endpoints.
//
// Update and delete are not ownership-checked: any authenticated caller may
// edit or delete any book. Known gap preserved from the observed behavior.
type BooksController struct {
	books     *books.Repository
	validator *validation.Validator
}

func NewBooksController(bookRepo *books.Repository, validator *validation.Validator) *BooksController {
	return &BooksController{
		books:     bookRepo,
		validator: validator,
	}
}

// List returns every book, unfiltered and unpaginated.
func (bc *BooksController) List(c *gin.Context) {
	all, err := bc.books.FindAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "books", all, "")
}

// BooksByUser returns every book owned by the user in the path, as a
// parameterized equality query.
func (bc *BooksController) BooksByUser(c *gin.Context) {
	id, ok := parseID(c, "User not found")
	if !ok {
		return
	}

	owned, err := bc.books.FindWhere("user_id", id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "books", owned, "")
}

func (bc *BooksController) Create(c *gin.Context) {
	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := bc.validator.Validate(input, bookCreateRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	userID, _ := cleanInt(clean, "user_id")
	title, _ := cleanString(clean, "title")
	author, _ := cleanString(clean, "author")
	genre, _ := cleanString(clean, "genre")
	description, _ := cleanString(clean, "description")
	bookImg, _ := cleanString(clean, "book_img")

	book := &entities.Book{
		UserID:      uint(userID),
		Title:       title,
		Author:      author,
		Genre:       genre,
		Description: description,
		BookImg:     bookImg,
	}
	if err := bc.books.Insert(book); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "book", book, "Book created successfully")
}

func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseID(c, "Book not found")
	if !ok {
		return
	}

	book, err := bc.books.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Book not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondEntity(c, http.StatusOK, "book", book, "")
}

// Update responds 201 on success, preserving the historical convention.
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseID(c, "Book not found")
	if !ok {
		return
	}

	book, err := bc.books.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Book not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	input, ok := bindInput(c)
	if !ok {
		return
	}

	clean, errs, err := bc.validator.Validate(input, bookUpdateRules())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if errs != nil {
		respondError(c, http.StatusUnprocessableEntity, errs)
		return
	}

	book.Title, _ = cleanString(clean, "title")
	book.Author, _ = cleanString(clean, "author")
	book.Genre, _ = cleanString(clean, "genre")
	book.Description, _ = cleanString(clean, "description")
	if img, ok := cleanString(clean, "book_img"); ok {
		book.BookImg = img
	}

	if err := bc.books.Update(book); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusCreated, "book", book, "Book updated successfully")
}

func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Book not found")
	if !ok {
		return
	}

	book, err := bc.books.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Book not found")
		} else {
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := bc.books.Delete(book); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondEntity(c, http.StatusOK, "book", book, "Book deleted successfully")
}
