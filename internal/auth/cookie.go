package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Name   string
	Secure bool
}

// SetSessionCookie issues the session cookie to the client.
func SetSessionCookie(c echo.Context, opts CookieOptions, sessionID string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     opts.Name,
		Value:    sessionID,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie removes the session cookie from the client.
func ClearSessionCookie(c echo.Context, opts CookieOptions) {
	c.SetCookie(&http.Cookie{
		Name:     opts.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
