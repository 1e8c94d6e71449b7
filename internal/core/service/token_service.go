package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

// DefaultTokenTTL is the fixed session lifetime.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies session tokens. The signing secret is
// injected at construction so tests can run with distinct secrets.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token binding the user's id and an expiry ttl from now.
// Tampering with either claim invalidates the signature.
func (t *TokenService) Issue(user *domain.User) (string, error) {
	now := t.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify checks signature and expiry and returns the subject id. Any failure,
// including an expired but correctly signed token, maps to ErrTokenInvalid.
func (t *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil || !parsed.Valid {
		return "", domain.ErrTokenInvalid
	}
	if claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
