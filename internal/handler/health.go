package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	redisClient *redis.Client
}

func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{redisClient: redisClient}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz checks the session store. The remote entity store is external and
// deliberately not part of readiness; its failures surface per request.
func (h *HealthHandler) Readyz(c *gin.Context) {
	if h.redisClient != nil {
		if err := h.redisClient.Ping(c.Request.Context()).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "redis": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": "connected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": "in-memory"})
}
