// internal/app/system/auth/cookie.go
package auth

import (
	"net/http"
	"time"
)

// CookieName is the cookie that carries the session token.
const CookieName = "token"

// SetTokenCookie writes the session token cookie.
//
// In production (secure=true) the cookie is Secure + SameSite=None so
// a cross-site client over HTTPS can send it. In local dev over
// http://localhost it is non-secure + SameSite=Strict so browsers
// accept it.
func SetTokenCookie(w http.ResponseWriter, token, domain string, ttl time.Duration, secure bool) {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Domain:   domain,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
	}
	if secure {
		c.SameSite = http.SameSiteNoneMode
	} else {
		c.SameSite = http.SameSiteStrictMode
	}
	http.SetCookie(w, c)
}
