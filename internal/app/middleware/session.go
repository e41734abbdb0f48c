package middleware

import (
	"github.com/Niketh-Putta/Terrawise-Ventures/internal/error/response"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Session keys.
const (
	SessionKeyAdminID = "admin_id"
)

// NewSessionStore builds the cookie store backing admin sessions.
func NewSessionStore(secret string) sessions.Store {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	return store
}

// RequireAdmin rejects requests without an authenticated admin session.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		adminID := session.Get(SessionKeyAdminID)
		if adminID == nil {
			response.NotAuthenticated(c)
			c.Abort()
			return
		}

		c.Set(SessionKeyAdminID, adminID)
		c.Next()
	}
}

// SetAdminSession records a successful admin login on the session.
func SetAdminSession(c *gin.Context, adminID uint) error {
	session := sessions.Default(c)
	session.Set(SessionKeyAdminID, adminID)
	return session.Save()
}

// ClearAdminSession drops the admin session on logout.
func ClearAdminSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// AdminIDFromContext returns the admin id stored by RequireAdmin.
func AdminIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(SessionKeyAdminID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
