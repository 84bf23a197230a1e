package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "buildhub/internal/errors"
	"buildhub/internal/model"
)

// ErrTokenExpired marks an access token that was valid but is past its expiry.
var ErrTokenExpired = errors.New("access token expired")

// Claims represents the access token claims issued by the hosted auth service.
type Claims struct {
	Email        string         `json:"email"`
	Role         string         `json:"role,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates HS256 access tokens signed with the project JWT secret.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for the given secret.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify validates a token and returns the identity it carries.
// Expired tokens return an error matching both ErrTokenExpired and apperrors.ErrInvalidToken.
func (v *TokenVerifier) Verify(tokenString string) (*model.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", apperrors.ErrInvalidToken)
	}

	return &model.Identity{
		ID:       claims.Subject,
		Email:    claims.Email,
		Metadata: claims.UserMetadata,
	}, nil
}

// ParseToken adapts Verify to echojwt.Config.ParseTokenFunc.
func (v *TokenVerifier) ParseToken(_ echo.Context, auth string) (interface{}, error) {
	return v.Verify(auth)
}
