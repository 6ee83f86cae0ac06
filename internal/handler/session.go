package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	UserCookie  = "auth_user"
	AdminCookie = "admin_auth_user"

	sessionTTL = 8 * time.Hour

	usernameKey = "username"
)

func setSession(c *gin.Context, name, username string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, username, int(sessionTTL.Seconds()), "/", "", false, true)
}

func clearSession(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", false, true)
}

func sessionUser(c *gin.Context, name string) string {
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return v
}

// RequireCookie aborts with 401 unless the named session cookie is set. The
// cookie value is stored under the "username" context key.
func RequireCookie(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := sessionUser(c, name)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Set(usernameKey, username)
		c.Next()
	}
}
