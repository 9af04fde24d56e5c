// Package session issues and verifies the signed tokens handed out at login.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"
)

const (
	issuer        = "hall-api"
	userNameClaim = "userName"
)

var ErrInvalidToken = errors.New("invalid or expired session token")

type Claims struct {
	UserID    string
	UserName  string
	ExpiresAt time.Time
}

type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokens signs with HS256 using secret. Tokens expire ttl after issue.
func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{
		key: secret,
		ttl: ttl,
		now: time.Now,
	}
}

func (t *Tokens) Issue(userID, userName string) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)

	tok := jwt.New()
	for k, v := range map[string]any{
		jwt.IssuerKey:     issuer,
		jwt.SubjectKey:    userID,
		jwt.IssuedAtKey:   now,
		jwt.NotBeforeKey:  now,
		jwt.ExpirationKey: expires,
		userNameClaim:     userName,
	} {
		if err := tok.Set(k, v); err != nil {
			return "", time.Time{}, fmt.Errorf("failed to set claim %s: %w", k, err)
		}
	}

	signed, err := jwt.Sign(tok, jwa.HS256, t.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return string(signed), expires.Truncate(time.Second), nil
}

func (t *Tokens) Verify(token string) (*Claims, error) {
	parsed, err := jwt.Parse([]byte(token), jwt.WithVerify(jwa.HS256, t.key))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := jwt.Validate(parsed, jwt.WithIssuer(issuer), jwt.WithClock(jwt.ClockFunc(t.now))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if parsed.Subject() == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		UserID:    parsed.Subject(),
		ExpiresAt: parsed.Expiration(),
	}
	if v, ok := parsed.Get(userNameClaim); ok {
		claims.UserName, _ = v.(string)
	}
	return claims, nil
}
