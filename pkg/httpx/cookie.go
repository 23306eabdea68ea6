package httpx

import (
	"crypto/sha256"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// SessionCookie signs and carries an opaque session token in an HTTP-only
// cookie. The token itself is server-side state; the cookie only references
// it, authenticated with the session secret so a tampered cookie is rejected
// before any store lookup.
type SessionCookie struct {
	Name   string
	TTL    time.Duration
	Secure bool

	codec *securecookie.SecureCookie
}

// NewSessionCookie derives the signing key from the configured session secret.
func NewSessionCookie(name, secret string, ttl time.Duration) *SessionCookie {
	hashKey := sha256.Sum256([]byte(secret))

	codec := securecookie.New(hashKey[:], nil)
	codec.MaxAge(int(ttl / time.Second))

	return &SessionCookie{
		Name:  name,
		TTL:   ttl,
		codec: codec,
	}
}

// Set writes the session token into a signed, HTTP-only cookie.
func (c *SessionCookie) Set(w http.ResponseWriter, token string) error {
	encoded, err := c.codec.Encode(c.Name, token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(c.TTL / time.Second),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read extracts and verifies the session token from the request cookie.
func (c *SessionCookie) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return "", err
	}

	var token string
	if err := c.codec.Decode(c.Name, cookie.Value, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Clear expires the cookie immediately.
func (c *SessionCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
