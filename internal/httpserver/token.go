// internal/httpserver/token.go
//
// Session cookie handling.
//
// The cookie carries an HS256 JWT naming the player's session ID and the date
// it was opened for. Tokens expire at the next local midnight so a browser never
// carries a game into the following day.

package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/proverbial/internal/daily"
)

const sessionCookieName = "proverb_session"

// sessionClaims is the JWT payload: sub = session ID.
type sessionClaims struct {
	Date string `json:"date"`
	jwt.RegisteredClaims
}

// signSession creates the token for sid, valid until the end of now's day.
func (s *Server) signSession(sid, date string, now time.Time) (string, time.Time, error) {
	exp := daily.NextMidnight(now)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Date: date,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(s.secret)
	return ss, exp, err
}

// parseSession verifies tok and returns its claims.
func (s *Server) parseSession(tok string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock))
	if err != nil {
		return nil, err
	}
	if !t.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// sessionFromCookie returns the verified claims from the request cookie, or nil.
func (s *Server) sessionFromCookie(r *http.Request) *sessionClaims {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	claims, err := s.parseSession(c.Value)
	if err != nil {
		return nil
	}
	return claims
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.cookieSecure {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cookieSecure,
		SameSite: sameSite,
		Expires:  exp,
	})
}
