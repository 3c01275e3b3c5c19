package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"saaarchi/models"
)

const (
	// LoginPath is always reachable, with or without a session.
	LoginPath = "/admin/login"

	// SessionKey is the gin context key holding the *models.SessionResponse.
	SessionKey = "session"
)

// ProtectedPrefixes are the admin pages and admin-scoped API routes.
var ProtectedPrefixes = []string{"/admin", "/api/admin"}

// SessionReader extracts a verified session from a request.
type SessionReader interface {
	SessionFromRequest(r *http.Request) (*models.SessionResponse, error)
}

// RouteGuard lets requests under prefixes through only with a valid session.
// Without one, the login path is allowed and everything else is redirected
// to it with the original path as callbackUrl. Other paths pass untouched.
func RouteGuard(sessions SessionReader, prefixes []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !isProtected(path, prefixes) {
			c.Next()
			return
		}

		session, err := sessions.SessionFromRequest(c.Request)
		if err == nil {
			c.Set(SessionKey, session)
			c.Next()
			return
		}

		if path == LoginPath {
			c.Next()
			return
		}

		c.Redirect(http.StatusSeeOther, LoginRedirect(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// LoginRedirect builds the login URL that returns to callback afterwards.
func LoginRedirect(callback string) string {
	return LoginPath + "?callbackUrl=" + url.QueryEscape(callback)
}

// CurrentSession returns the session stored by RouteGuard, if any.
func CurrentSession(c *gin.Context) (*models.SessionResponse, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*models.SessionResponse)
	return session, ok
}

func isProtected(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
