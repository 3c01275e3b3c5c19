package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"saaarchi/auth"
	"saaarchi/middleware"
	"saaarchi/models"
	"saaarchi/web"
)

const (
	msgInvalidCredentials = "Email ou mot de passe incorrect"
	msgMissingAuthConfig  = "Configuration d'authentification manquante"
)

// safeCallback keeps post-login redirects on this site. Anything that is not
// a local path, or that points back at the login page, becomes the dashboard.
func safeCallback(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return dashboardPath
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == middleware.LoginPath {
		return dashboardPath
	}
	return u.RequestURI()
}

// startSession issues a token for identity and sets the session cookie.
func startSession(c *gin.Context, svc *auth.Service, identity models.Identity) (*models.SessionResponse, error) {
	token, expires, err := svc.IssueToken(identity)
	if err != nil {
		return nil, err
	}
	svc.SetSessionCookie(c.Writer, token, expires)
	log.Printf("Admin login: email=%s", identity.Email)
	return &models.SessionResponse{User: identity, Expires: expires}, nil
}

// LoginPage renders the login form, or skips it when already signed in.
func LoginPage(r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		callback := c.Query("callbackUrl")
		if _, ok := middleware.CurrentSession(c); ok {
			c.Redirect(http.StatusSeeOther, safeCallback(callback))
			return
		}

		renderPage(c, r, http.StatusOK, "login", web.LoginPage{CallbackURL: callback})
	}
}

func Login(svc *auth.Service, r *web.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			log.Printf("Bind error: %v", err)
		}

		page := web.LoginPage{Email: req.Email, CallbackURL: req.CallbackURL}

		identity, err := svc.Authenticate(req.Email, req.Password)
		if err == nil {
			_, err = startSession(c, svc, *identity)
		}
		if err != nil {
			status := http.StatusUnauthorized
			page.Error = msgInvalidCredentials
			if !errors.Is(err, models.ErrInvalidCredentials) {
				log.Printf("Login error: %v", err)
				status = http.StatusInternalServerError
				page.Error = msgMissingAuthConfig
			}
			renderPage(c, r, status, "login", page)
			return
		}

		c.Redirect(http.StatusSeeOther, safeCallback(req.CallbackURL))
	}
}

func Logout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.ClearSessionCookie(c.Writer)
		c.Redirect(http.StatusSeeOther, middleware.LoginPath)
	}
}

// APILogin is the JSON login endpoint; the session travels in the cookie.
func APILogin(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, bindingError(err, "invalid request body"))
			return
		}

		identity, err := svc.Authenticate(req.Email, req.Password)
		if err != nil {
			if !errors.Is(err, models.ErrInvalidCredentials) {
				log.Printf("Login error: %v", err)
			}
			respondError(c, err)
			return
		}

		session, err := startSession(c, svc, *identity)
		if err != nil {
			log.Printf("Login error: %v", err)
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, session)
	}
}

func APILogout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.ClearSessionCookie(c.Writer)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Session reports the current session, or 401 without one.
func Session(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := svc.SessionFromRequest(c.Request)
		if err != nil {
			respondError(c, models.ErrUnauthorized)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
