package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Workflow-Manager-admin/it-job-portal-a5596dc3/internal/models"
)

// ErrInvalidToken is returned for tokens that are malformed, expired,
// or signed with the wrong secret.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by every access token. The subject is
// the account id; the role rides along for the gate's per-endpoint
// checks.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the portal's bearer tokens (HS256).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a service signing with secret, issuing tokens
// valid for ttl.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given account.
func (t *TokenService) Issue(user models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify parses and validates a token, returning its claims.
func (t *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
