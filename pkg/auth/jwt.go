package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
)

// SessionClaims is what a session token carries: who the account is and
// which kind of account it is.
type SessionClaims struct {
	AccountID   uuid.UUID
	AccountKind model.AccountKind
	Email       string
}

// TokenService signs and validates session tokens.
type TokenService interface {
	Generate(claims SessionClaims) (string, error)
	Validate(token string) (*SessionClaims, error)
	TTL() time.Duration
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService builds a TokenService backed by HMAC-signed JWTs.
func NewJWTService(secret string, ttl time.Duration) TokenService {
	return &jwtService{secret: []byte(secret), ttl: ttl}
}

func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) Generate(claims SessionClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.AccountID.String(),
		"kind":  string(claims.AccountKind),
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) Validate(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid account ID in token")
	}

	kind, ok := claims["kind"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	email, _ := claims["email"].(string)

	return &SessionClaims{
		AccountID:   accountID,
		AccountKind: model.AccountKind(kind),
		Email:       email,
	}, nil
}
