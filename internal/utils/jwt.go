package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arbazmubasher1/TicketDashboard/internal/models"
)

// Claims carry the whole session identity: login key, role, and the bound
// domain the access policy scopes mutations by.
type Claims struct {
	Key    string `json:"key"`
	Role   string `json:"role"`
	Domain string `json:"domain,omitempty"`
	jwt.RegisteredClaims
}

func SignJWT(secret string, id models.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Key: id.Key, Role: id.Role, Domain: id.Domain,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}).SignedString([]byte(secret))
}

func ParseJWT(secret, token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := t.Claims.(*Claims); ok && t.Valid {
		return c, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
