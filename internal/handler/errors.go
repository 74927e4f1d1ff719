package handler

import (
	"errors"
	"net/http"

	"github.com/Baaaki/brew-book/internal/service"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto the HTTP error
// taxonomy: NotFound 404, Forbidden 403, Conflict 409, InvalidCredentials
// 401, everything else 500.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRecipeNotFound),
		errors.Is(err, service.ErrNoteNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotRecipeOwner),
		errors.Is(err, service.ErrMasterRecipeReadOnly),
		errors.Is(err, service.ErrCloneSourceNotMaster):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrUsernameAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
