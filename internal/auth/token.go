package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/navfer/DamGram-Servidor/internal/apperr"
)

// TokenIssuer signs and validates the HS256 identity assertions. The token
// is the only carrier of authenticated state; there is no session store, so
// an expired token is the end of the session.
type TokenIssuer struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Issue binds the username to an expiry of now+TTL and signs the claims.
func (ti TokenIssuer) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"iss":      ti.Issuer,
		"aud":      ti.Audience,
		"exp":      now.Add(ti.TTL).Unix(),
		"iat":      now.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(ti.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, issuer, audience and expiry and returns the
// username claim. Every failure mode collapses into the same error so the
// caller cannot tell a forged token from an expired one.
func (ti TokenIssuer) Validate(tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(
		tokenStr,
		claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return ti.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ti.Issuer),
		jwt.WithAudience(ti.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return "", apperr.ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", apperr.ErrInvalidToken
	}
	return username, nil
}
