package mock

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL is informational only, the bridge never enforces expiry
const tokenTTL = time.Hour

// createJWT creates a signed access token for email
func (s *Service) createJWT(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Verify parses and validates token, returning its claims
func (s *Service) Verify(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	s.mu.RLock()
	revoked := s.revoked[claims.ID]
	s.mu.RUnlock()
	if revoked {
		return nil, fmt.Errorf("invalid token: revoked")
	}
	return claims, nil
}

func (s *Service) revoke(token string) {
	claims, err := s.Verify(token)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.revoked[claims.ID] = true
	s.mu.Unlock()
}
