package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Every handler responds with the same envelope:
//
//	{ "status": bool, "message"?: string|field-errors, "<entity>"?: value, "httpCode": int }
//
// The transport status code always equals the embedded httpCode.

// respondError writes a failure envelope. message is either a string or a
// validation.Errors map.
func respondError(c *gin.Context, code int, message any) {
	c.JSON(code, gin.H{
		"status":   false,
		"message":  message,
		"httpCode": code,
	})
}

// respondEntity writes a success envelope carrying the payload under key.
func respondEntity(c *gin.Context, code int, key string, value any, message string) {
	body := gin.H{
		"status":   true,
		key:        value,
		"httpCode": code,
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(code, body)
}

// parseID reads the :id path parameter. Non-numeric IDs are reported as
// not found, matching the keyed-lookup semantics.
func parseID(c *gin.Context, notFoundMessage string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return 0, false
	}
	return uint(id), true
}

// bindInput decodes the JSON body into a raw map for validation. A body
// that is not a JSON object fails with a 422 envelope.
func bindInput(c *gin.Context) (map[string]any, bool) {
	var input map[string]any
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusUnprocessableEntity, "Invalid request body")
		return nil, false
	}
	return input, true
}

// Typed accessors over the normalized map returned by validation. A field
// missing from the map was simply not supplied (update payloads are
// partial).

func cleanString(m map[string]any, key string) (string, bool) {
	v, ok := m[key].(string)
	return v, ok
}

func cleanInt(m map[string]any, key string) (int, bool) {
	v, ok := m[key].(int)
	return v, ok
}

func cleanBool(m map[string]any, key string) (bool, bool) {
	v, ok := m[key].(bool)
	return v, ok
}
