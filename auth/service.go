package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"saaarchi/models"
)

const (
	// CookieName holds the signed session token.
	CookieName = "saa_session"
	// SessionTTL is how long a session stays valid after login.
	SessionTTL = 30 * 24 * time.Hour

	adminID   = "1"
	adminName = "Administrateur"
)

// CredentialsFunc returns the configured admin email and password, or an
// error wrapping models.ErrMissingConfig when either is unset.
type CredentialsFunc func() (email, password string, err error)

// Service checks the admin credential pair and issues session tokens.
type Service struct {
	secret        []byte
	secureCookies bool
	credentials   CredentialsFunc
	now           func() time.Time
}

// NewService creates a Service signing sessions with secret. credentials is
// consulted on every login attempt.
func NewService(secret string, secureCookies bool, credentials CredentialsFunc) *Service {
	return &Service{
		secret:        []byte(secret),
		secureCookies: secureCookies,
		credentials:   credentials,
		now:           time.Now,
	}
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Authenticate compares the submitted pair with the configured one. Any
// mismatch yields models.ErrInvalidCredentials, whichever value was wrong.
func (s *Service) Authenticate(email, password string) (*models.Identity, error) {
	adminEmail, adminPassword, err := s.credentials()
	if err != nil {
		return nil, fmt.Errorf("credential check: %w", err)
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
	if !emailOK || !passwordOK {
		return nil, models.ErrInvalidCredentials
	}

	return &models.Identity{ID: adminID, Email: adminEmail, Name: adminName}, nil
}

// IssueToken signs a session for identity and returns it with its expiry.
func (s *Service) IssueToken(identity models.Identity) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, models.MissingConfig("SESSION_SECRET")
	}

	now := s.now()
	expires := now.Add(SessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expires.Truncate(time.Second), nil
}

// ParseToken verifies signature, algorithm and expiry of a session token.
func (s *Service) ParseToken(tokenString string) (*models.SessionResponse, error) {
	if len(s.secret) == 0 {
		return nil, models.MissingConfig("SESSION_SECRET")
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}
	if !token.Valid || claims.Subject != adminID {
		return nil, models.ErrUnauthorized
	}

	return &models.SessionResponse{
		User: models.Identity{
			ID:    claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		},
		Expires: claims.ExpiresAt.Time,
	}, nil
}

// SessionFromRequest returns the session carried by the request cookie.
func (s *Service) SessionFromRequest(r *http.Request) (*models.SessionResponse, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, models.ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}
	return s.ParseToken(cookie.Value)
}

func (s *Service) SetSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Service) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
