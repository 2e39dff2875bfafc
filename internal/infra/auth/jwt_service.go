// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"vitals/config"
	domainerrors "vitals/internal/domain/errors"
	"vitals/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens. Must differ from accessSecret.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It rejects empty or identical secrets: a leaked refresh secret must not be
// able to forge access tokens, and vice versa.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("jwt access and refresh secrets must differ")
	}

	accessTTL := 15 * time.Minute
	refreshTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}
	if cfg.Auth != nil && cfg.Auth.RefreshTokenTTL > 0 {
		refreshTTL = cfg.Auth.RefreshTokenTTL
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateAccessToken creates a short-lived access token for a user.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, role, email string) (string, error) {
	return s.generateToken(userID, role, email, s.accessTTL, s.accessSecret, tokenTypeAccess)
}

// GenerateRefreshToken creates a longer-lived refresh token for a user.
func (s *jwtService) GenerateRefreshToken(userID uuid.UUID, role string) (string, error) {
	return s.generateToken(userID, role, "", s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
}

// ValidateAccessToken checks an access token and returns its claims.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.accessSecret, tokenTypeAccess)
}

// ValidateRefreshToken checks a refresh token and returns its claims.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validateToken(tokenString, s.refreshSecret, tokenTypeRefresh)
}

// HashToken derives the storage hash for a raw refresh token.
// The database only ever sees this hash, never the raw token.
func (s *jwtService) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, role, email string, ttl time.Duration, secret []byte, tokenType string) (string, error) {
	now := time.Now()
	// The jti makes every token unique even for the same subject within the
	// same second; without it two logins could collide on the stored hash.
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"jti":  uuid.New().String(),
		"role": role,
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	// Only the access token carries the email, for stateless attribution.
	if email != "" {
		claims["email"] = email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// validateToken parses and verifies a token. Every failure mode (signature,
// malformed input, expiry, wrong token type) collapses into ErrTokenInvalid so
// callers cannot leak which check failed.
func (s *jwtService) validateToken(tokenString string, secret []byte, wantType string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token validation failed")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected claims format")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != wantType {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type")
	}

	subject, _ := mapClaims["sub"].(string)
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("invalid subject claim")
	}

	role, _ := mapClaims["role"].(string)
	email, _ := mapClaims["email"].(string)

	return &service.Claims{
		UserID: userID,
		Role:   role,
		Email:  email,
		Type:   tokenType,
	}, nil
}
