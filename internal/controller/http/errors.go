package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursedeck/internal/repo/backend"
	"coursedeck/pkg/logger"
)

// respondError maps upstream failures onto the dashboard's API surface.
// A rejected backend token reads as an expired session; every other
// upstream failure is reported without leaking backend internals.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	if errors.Is(err, backend.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		log.Error("Backend request failed with status %d: %s", apiErr.Status, apiErr.Message)
	} else {
		log.Error("Backend request failed: %v", err)
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream request failed"})
}
