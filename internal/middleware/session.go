package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proxis-hn/proxis/internal/config"
	"github.com/proxis-hn/proxis/internal/modules/serializer"
	"github.com/proxis-hn/proxis/internal/pkg/session"
)

const sessionUserKey = "session_user"

// Session decodes the signed session cookie into a typed user and aborts with
// 401 when the cookie is missing or invalid. Every route needing identity
// goes through this middleware instead of parsing cookies itself.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("session required"))
			return
		}

		u, err := session.Parse(cfg.Session.Secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("invalid session"))
			return
		}

		c.Set(sessionUserKey, u)
		c.Next()
	}
}

// SessionUser returns the user set by the Session middleware, or nil.
func SessionUser(c *gin.Context) *session.User {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*session.User)
	return u
}
