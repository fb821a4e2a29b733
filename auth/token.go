package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "timeline-lab"

// CustomClaims defines the structure of the data stored inside the JWT.
// Issuing tokens belongs to the identity collaborator; the engine only needs
// the actor ref to look the actor up in the directory.
type CustomClaims struct {
	ActorRef string `json:"actor_ref"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates HS256 tokens with a shared secret.
type TokenManager struct {
	key []byte
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 bytes, got %d", len(secret))
	}
	return &TokenManager{key: []byte(secret)}, nil
}

// GenerateToken creates a signed JWT for an actor.
func (m *TokenManager) GenerateToken(actorRef string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		ActorRef: actorRef,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorRef,
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func (m *TokenManager) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid && claims.ActorRef != "" {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
