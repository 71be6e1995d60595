package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"luxe-estates/internal/models"
)

// Claims is the bearer-token payload. The kind-specific fields mirror what
// the account carries: users get {id, username}, agents get {id, name, role}.
type Claims struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username,omitempty"`
	Name     string    `json:"name,omitempty"`
	Role     string    `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AccountKind recovers the principal kind from the claim shape.
func (c *Claims) AccountKind() models.AccountKind {
	if c.Role != "" {
		return models.KindAgent
	}
	return models.KindUser
}

// NewAccountClaims builds the claim set for an account with the given validity window.
func NewAccountClaims(account *models.Account, ttl time.Duration) *Claims {
	claims := &Claims{
		ID: account.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	switch account.Kind {
	case models.KindAgent:
		claims.Name = account.Name
		claims.Role = account.Role
	default:
		claims.Username = account.Username
	}
	return claims
}

// GenerateJWT signs the claims with HS256.
func GenerateJWT(claims *Claims, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyJWT parses and validates a JWT string.
func VerifyJWT(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
