package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-service/pkg/errors"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// JSON sends data as JSON with the given status.
func JSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Text sends a plain-text body with the given status.
func Text(c *gin.Context, status int, msg string) {
	c.String(status, msg)
}

// Binary sends raw bytes with the given content type.
func Binary(c *gin.Context, contentType string, data []byte) {
	c.Data(http.StatusOK, contentType, data)
}

// Error renders err as plain text. An *errors.HTTPError keeps its own status
// and message; anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.String(httpErr.Code, httpErr.Message)
		return
	}
	InternalError(c)
}

// ErrorJSON is Error for endpoints whose error bodies are JSON ({"message": ...}).
func ErrorJSON(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Message{Message: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, Message{Message: DefaultErrorMessage})
}

// InternalError sends 500 with the generic message.
func InternalError(c *gin.Context) {
	c.String(http.StatusInternalServerError, DefaultErrorMessage)
}

// MethodNotAllowed sends 405.
func MethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.String(http.StatusTooManyRequests, "Too Many Requests")
}
