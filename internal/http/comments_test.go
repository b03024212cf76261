package http

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elllibres/elllibres/internal/entities"
)

func (e *testEnv) seedComment(t *testing.T, reviewID uint, text string) *entities.Comment {
	t.Helper()
	comment := &entities.Comment{
		UserID:   e.user.ID,
		ReviewID: reviewID,
		Comment:  text,
	}
	require.NoError(t, e.comments.Insert(comment))
	return comment
}

func TestComments_Create(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.seedBook(t, "La plaça del Diamant")
	review := env.seedReview(t, book.ID, 4)

	w, body := env.request(t, http.MethodPost, "/comments", map[string]any{
		"user_id":   env.user.ID,
		"review_id": review.ID,
		"comment":   "Totalment d'acord amb la ressenya",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Comment created successfully", body["message"])

	comment, ok := body["comment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(review.ID), comment["review_id"])

	// Both foreign keys must be persisted, not zeroed
	stored, err := env.comments.FindByID(uint(comment["id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, env.user.ID, stored.UserID)
	assert.Equal(t, review.ID, stored.ReviewID)
}

func TestComments_Create_UnknownReview(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	w, body := env.request(t, http.MethodPost, "/comments", map[string]any{
		"user_id":   env.user.ID,
		"review_id": 999,
		"comment":   "Orfe de ressenya",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, fieldErrors(t, body), "review_id")
}

func TestComments_Create_TooLong(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.seedBook(t, "Camí de sirga")
	review := env.seedReview(t, book.ID, 3)

	w, body := env.request(t, http.MethodPost, "/comments", map[string]any{
		"user_id":   env.user.ID,
		"review_id": review.ID,
		"comment":   strings.Repeat("a", 201),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, fieldErrors(t, body), "comment")
}

// Comment updates respond 200 where the other resources respond 201.
func TestComments_UpdateReturns200(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.seedBook(t, "Pedra de tartera")
	review := env.seedReview(t, book.ID, 5)
	comment := env.seedComment(t, review.ID, "Primera versió")

	w, body := env.request(t, http.MethodPut, fmt.Sprintf("/comments/%d", comment.ID), map[string]any{
		"comment": "Versió corregida",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comment updated successfully", body["message"])
	assert.Equal(t, float64(http.StatusOK), body["httpCode"])

	stored, err := env.comments.FindByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "Versió corregida", stored.Comment)
}

func TestComments_CommentsByReview(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.seedBook(t, "Mecanoscrit del segon origen")
	first := env.seedReview(t, book.ID, 4)
	second := env.seedReview(t, book.ID, 2)
	env.seedComment(t, first.ID, "Un")
	env.seedComment(t, first.ID, "Dos")
	env.seedComment(t, second.ID, "Tres")

	w, body := env.request(t, http.MethodGet, fmt.Sprintf("/reviews/%d/comments", first.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list, ok := body["comments"].([]any)
	require.True(t, ok)
	assert.Len(t, list, 2)
}

func TestComments_Delete(t *testing.T) {
	env, cleanup := setupTestEnv(t)
	defer cleanup()

	book := env.seedBook(t, "Per comentar")
	review := env.seedReview(t, book.ID, 1)
	comment := env.seedComment(t, review.ID, "Efímer")
	path := fmt.Sprintf("/comments/%d", comment.ID)

	w, body := env.request(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comment deleted successfully", body["message"])

	w, _ = env.request(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
