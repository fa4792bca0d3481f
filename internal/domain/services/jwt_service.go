package services

import (
	"fmt"
	"time"

	"telefono-http-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const tokenIssuer = "telefono-http-service"

// ErrTokenInvalid is returned for tokens that fail signature or claim checks
var ErrTokenInvalid = errors.New("token is invalid")

// InterfaceJWTService issues and validates the bearer tokens guarding write routes
type InterfaceJWTService interface {
	GenerateToken(subject string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*jwt.RegisteredClaims, error)
}

// JWTService signs tokens with HS256
type JWTService struct {
	secretKey []byte
	issuer    string
}

// NewJWTService returns nil when no secret key is configured
func NewJWTService(cfg *config.Config) InterfaceJWTService {
	if cfg == nil || cfg.JWTSecretKey == "" {
		return nil
	}
	return &JWTService{
		secretKey: []byte(cfg.JWTSecretKey),
		issuer:    tokenIssuer,
	}
}

// GenerateToken creates a token for subject valid for ttl
func (s *JWTService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return signed, nil
}

// ValidateToken checks the signature, the expiry and the issuer
func (s *JWTService) ValidateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrTokenInvalid, err.Error())
	}

	if !token.Valid || !claims.VerifyIssuer(s.issuer, true) {
		return nil, errors.WithStack(ErrTokenInvalid)
	}

	return claims, nil
}
