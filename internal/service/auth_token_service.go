package service

import (
	"fmt"
	"strconv"
	"time"

	"asset-signature-service/internal/core/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTAuthTokenService implements ports.AuthTokenService using HS256 JWT.
// The token carries the opaque signer principal (id, email, name) that the
// external security layer resolved; this service only transports it.
type JWTAuthTokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// NewJWTAuthTokenService creates a new JWT auth token service.
func NewJWTAuthTokenService(secret string, expiry time.Duration, issuer string) *JWTAuthTokenService {
	return &JWTAuthTokenService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

// Generate creates a signed JWT for the given signer.
func (s *JWTAuthTokenService) Generate(signer *domain.Signer) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(signer.ID, 10),
		"email":      signer.Email,
		"first_name": signer.FirstName,
		"last_name":  signer.LastName,
		"iat":        now.Unix(),
		"exp":        expiresAt.Unix(),
		"iss":        s.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// Validate parses and validates a JWT, returning the embedded signer.
func (s *JWTAuthTokenService) Validate(tokenString string) (*domain.Signer, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing subject claim")
	}
	signerID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid signer ID in token: %w", err)
	}

	email, _ := claims["email"].(string)
	firstName, _ := claims["first_name"].(string)
	lastName, _ := claims["last_name"].(string)

	return &domain.Signer{
		ID:        signerID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}
