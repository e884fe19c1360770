// Package auth implements the session gate for the single configured
// administrator: credential checks, signed session tokens and the cookie
// contract shared by the login handlers and the middleware.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the session cookie carrying the signed token.
const CookieName = "session"

// RoleAdmin is the only role the gate ever issues.
const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// SessionClaims is the signed payload of a session token.
type SessionClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Gate verifies the configured admin credentials and issues time-limited
// signed tokens. Credentials and secret are injected at construction so the
// gate never reads ambient process state.
type Gate struct {
	email    string
	password string
	secret   []byte
	ttl      time.Duration
}

func NewGate(email, password, secret string, ttl time.Duration) *Gate {
	return &Gate{
		email:    email,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// TTL is the session lifetime, also used for the cookie MaxAge so browser
// and token expire together.
func (g *Gate) TTL() time.Duration {
	return g.ttl
}

// Login checks both credentials in constant time and issues a token on
// success. A failure never says which field was wrong.
func (g *Gate) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(g.email))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password))
	if emailOK&passOK != 1 {
		return "", ErrInvalidCredentials
	}
	return g.issue(email)
}

func (g *Gate) issue(email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role:  RoleAdmin,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// Verify parses and validates a session token: signature, expiry and the
// admin role claim.
func (g *Gate) Verify(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
