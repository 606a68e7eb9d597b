package middleware

import (
	"context"
	"net/http"
	"strings"

	"developer-service/pkg/jwt"
	"developer-service/pkg/response"
)

type contextKey string

const (
	ActorIDKey   contextKey = "actor_id"
	TokenIDKey   contextKey = "token_id"
	RequestIDKey contextKey = "request_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

// NewAuthMiddleware returns a middleware that validates bearer tokens.
// A nil jwtService disables authentication and every request passes through.
func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

func (m *AuthMiddleware) Enabled() bool {
	return m.jwtService != nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		ctx := context.WithValue(r.Context(), ActorIDKey, claims.Subject)
		ctx = context.WithValue(ctx, TokenIDKey, claims.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorIDFromContext extracts the authenticated subject from context
func GetActorIDFromContext(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(ActorIDKey).(string)
	return actorID, ok && actorID != ""
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
