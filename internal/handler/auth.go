package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhonstore/admin-console/internal/dto"
	"github.com/jhonstore/admin-console/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	cookieName  string
	cookieTTL   int
}

func NewAuthHandler(authService *service.AuthService, cookieName string, cookieTTLSeconds int) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName, cookieTTL: cookieTTLSeconds}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, sess, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetCookie(h.cookieName, token, h.cookieTTL, "/", "", false, true)
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookieName)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		writeError(c, err)
		return
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// Me returns the active session; the dashboard header reads it on load and
// once a minute to observe expiry.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := SessionFrom(c)
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess))
}
