package utils

import (
	"net/http"
	"time"
)

// Session cookie names shared by the issuing handlers and the auth
// middleware. Browser clients and the mobile SDK both read these names.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// SetSessionCookie attaches a session token to the response as an HTTP-only
// cookie with the attributes required for cross-origin browser clients:
// HttpOnly, SameSite=None, Secure. These three must match exactly for
// interop with the web and mobile front-ends.
func SetSessionCookie(w http.ResponseWriter, name, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})
}

// ExpireSessionCookie overwrites a session cookie with an empty value whose
// expiry lies 1 second in the past, forcing the client to discard it
// immediately. This is the only logout mechanism: no server-side blacklist
// exists, so a replayed token stays valid until its natural expiry.
func ExpireSessionCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Second),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
	})
}
