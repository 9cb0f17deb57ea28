// Package token issues and verifies the stateless session tokens that prove
// a prior successful authentication. Tokens are HS256-signed JWTs carrying
// the subject's id and email; there is no server-side session store and no
// revocation, so a token dies only by expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")

const defaultTTL = 20 * time.Minute

// Claims is the signed claim set: registered sub/iat/exp plus the subject's
// email.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Service signs and validates session tokens. It holds no state besides the
// immutable secret and lifetime, so it is safe for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. If ttl <= 0, the 20 minute default is
// used. The secret must be non-empty; configuration loading enforces that
// before this is reached.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting that userID/email authenticated now. It
// returns the encoded token and its expiry.
func (s *Service) Issue(userID, email string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify decodes and validates a token string. It is safe to call on
// arbitrary untrusted input: malformed or badly signed tokens fail with
// ErrInvalidToken, expired ones with ErrExpiredToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !t.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
