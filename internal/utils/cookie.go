package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is part of the public contract with the frontend
const SessionCookieName = "session_user_id"

// SessionCookie writes and clears the session cookie. Production deployments
// serve the frontend from another site, so the cookie must be Secure and
// SameSite=None there.
type SessionCookie struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// NewSessionCookie picks cookie attributes for the given mode
func NewSessionCookie(production bool) *SessionCookie {
	if production {
		return &SessionCookie{Secure: true, SameSite: http.SameSiteNoneMode, MaxAge: int(SessionTTL.Seconds())}
	}
	return &SessionCookie{Secure: false, SameSite: http.SameSiteLaxMode, MaxAge: int(SessionTTL.Seconds())}
}

func (s *SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(s.SameSite)
	c.SetCookie(SessionCookieName, token, s.MaxAge, "/", "", s.Secure, true)
}

func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(s.SameSite)
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.Secure, true)
}
