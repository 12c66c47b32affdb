package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jhonstore/admin-console/internal/model"
	"github.com/jhonstore/admin-console/internal/session"
)

const sessionKey = "session"

// RequireSession resolves the cookie token to an active session. An absent,
// corrupt or expired session gets a 401 and the cookie cleared; the holder
// already removed the stored record.
func RequireSession(holder *session.Holder, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(cookieName)
		sess, err := holder.Current(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session store unavailable"})
			return
		}
		if sess == nil {
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

func SessionFrom(c *gin.Context) *model.Session {
	v, _ := c.Get(sessionKey)
	sess, _ := v.(*model.Session)
	return sess
}

// SecurityHeaders mirrors the headers the console has always sent.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// BlockSensitiveFiles refuses dotfiles and build artifacts under the static
// tree.
func BlockSensitiveFiles() gin.HandlerFunc {
	blocked := map[string]bool{
		"go.mod": true, "go.sum": true, "Dockerfile": true, "README.md": true,
	}
	return func(c *gin.Context) {
		base := c.Request.URL.Path[strings.LastIndex(c.Request.URL.Path, "/")+1:]
		if strings.HasPrefix(base, ".") || blocked[base] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
