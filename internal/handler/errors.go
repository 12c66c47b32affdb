package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhonstore/admin-console/internal/remote"
	"github.com/jhonstore/admin-console/internal/service"
)

// writeError maps service and remote-store failures onto HTTP responses.
// Remote-store messages pass through so the UI can show the server-supplied
// text; everything unexpected collapses to a generic 500.
func writeError(c *gin.Context, err error) {
	var statusErr *remote.StatusError
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, remote.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &statusErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": statusErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
