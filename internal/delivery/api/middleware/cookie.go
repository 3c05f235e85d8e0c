package middleware

import "net/http"

// NewSessionCookie builds the Set-Cookie value carrying the raw session token.
// HttpOnly keeps the token out of reach of page scripts.
func NewSessionCookie(name, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie builds an expired cookie that removes the session token
// from the client.
func ClearSessionCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCartCookie builds an expired cookie that removes the client-held cart.
// The cart cookie is script-owned, so no HttpOnly.
func ClearCartCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	}
}
