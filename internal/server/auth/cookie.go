package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the single cookie carrying the serialized session
// token. No other client-visible session state exists.
const SessionCookieName = "pb_session"

// SessionCarrier binds session tokens to a protected cookie. It never
// inspects or trusts cookie content; verification is the TokenService's job.
type SessionCarrier struct {
	maxAge int
	secure bool
}

// NewSessionCarrier builds a carrier whose cookie expiry is aligned to the
// token lifetime. secure should only be disabled for plain-HTTP local
// development.
func NewSessionCarrier(tokenValidity time.Duration, secure bool) *SessionCarrier {
	return &SessionCarrier{
		maxAge: int(tokenValidity.Seconds()),
		secure: secure,
	}
}

// Attach sets the session cookie on the response.
func (sc *SessionCarrier) Attach(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   sc.maxAge,
	})
}

// Extract returns the raw token from the request cookie, if present.
func (sc *SessionCarrier) Extract(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear sets an already-expired cookie of the same name to force
// client-side removal.
func (sc *SessionCarrier) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
