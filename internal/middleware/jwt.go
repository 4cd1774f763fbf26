package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"HEYNOM_BACK-END/internal/config"
	"HEYNOM_BACK-END/internal/utils"
)

// ErrAuthentication is returned for any missing, malformed, expired or badly signed token
var ErrAuthentication = errors.New("authentication failed")

// JWTClaims represents the claims in an access token issued by the identity provider
type JWTClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the verified caller of a request
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type identityKey struct{}

// VerifyToken validates an HS256 token against the shared secret and returns the caller identity.
// The audience claim is not checked.
func VerifyToken(tokenString string, cfg *config.JWTConfig) (*Identity, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(cfg.Leeway),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, jwt.ErrTokenMalformed)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject claim missing", ErrAuthentication)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a uuid", ErrAuthentication)
	}

	return &Identity{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}

// AuthMiddleware validates bearer tokens in the Authorization header
func AuthMiddleware(next http.HandlerFunc, cfg *config.JWTConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Fields(authHeader)
		if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		identity, err := VerifyToken(tokenParts[1], cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
	}
}

// WithIdentity stores the verified identity in the context
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity set by AuthMiddleware
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || identity.UserID == uuid.Nil {
		return Identity{}, false
	}
	return identity, true
}
