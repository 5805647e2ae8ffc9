package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Context keys for storing caller information
type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

// Claims is the JWT payload this service accepts.
// The subject is the user id; Role is carried as a custom claim.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware enforces bearer-token authentication for protected routes.
// Tokens are HS256-signed with a shared secret; the token subject becomes
// the caller identity that the core trusts as-is.
type AuthMiddleware struct {
	secret []byte
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware with the given signing secret
func NewAuthMiddleware(secret []byte, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{secret: secret, logger: logger}
}

// RequireAuth ensures the request carries a valid bearer token.
// On success the caller id and role are injected into the request context;
// otherwise the request is rejected with 401 before reaching the handler.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeAuthError(w, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := m.verify(token)
		if err != nil {
			m.logger.Info("auth failure",
				"ip", clientIP(r), "method", r.Method, "path", r.URL.Path, "error", err)
			writeAuthError(w, "Invalid token")
			return
		}

		if claims.Subject == "" {
			writeAuthError(w, "Token has no subject")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
		ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verify parses and validates the token signature and registered claims
func (m *AuthMiddleware) verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GetUserID returns the authenticated user id from the request context,
// or "" if the request is unauthenticated
func GetUserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

// GetUserRole returns the authenticated user's role from the request
// context, or "" if the request is unauthenticated
func GetUserRole(r *http.Request) string {
	role, _ := r.Context().Value(UserRoleKey).(string)
	return role
}

// writeAuthError writes a standardized 401 response
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	})
}
