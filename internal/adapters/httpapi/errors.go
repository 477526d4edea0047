package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chirp/internal/core/account"
	"chirp/internal/core/friendship"
	"chirp/internal/core/post"
)

// respondError maps core sentinel errors onto HTTP status codes. Anything
// unrecognized is an internal failure and the detail stays server-side.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, friendship.ErrSelfReference),
		errors.Is(err, post.ErrContentEmpty),
		errors.Is(err, post.ErrContentTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, post.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrNotFound), errors.Is(err, post.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, account.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
