package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookbook/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers panics and turns errors attached with c.Error into JSON responses.
// Handlers that already wrote a response are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[ErrorHandler] panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, rec)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, message := StatusFor(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[ErrorHandler] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(status, ErrorResponse{Error: message})
	}
}

// StatusFor maps a service error to an HTTP status and a client-safe message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrRecipeNotFound):
		return http.StatusNotFound, "Recipe not found"
	case errors.Is(err, service.ErrMealNotFound):
		return http.StatusNotFound, "Meal not found"
	case errors.Is(err, service.ErrInvalidRecipe),
		errors.Is(err, service.ErrInvalidLetter),
		errors.Is(err, service.ErrUnsupportedImage):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case service.IsStorageError(err):
		return http.StatusInternalServerError, "Storage unavailable"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
