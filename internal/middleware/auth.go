package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/guestlist/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// SubjectKey is the context key for storing the authenticated token subject.
const SubjectKey contextKey = "subject"

// GetSubject extracts the authenticated subject from the context.
// Returns empty string if not found.
func GetSubject(ctx context.Context) string {
	subject, _ := ctx.Value(SubjectKey).(string)
	return subject
}

// RequireAuth returns an interceptor that validates JWT bearer tokens on the
// given procedures. Other procedures pass through untouched; with no
// procedures listed, every call is guarded.
func RequireAuth(jwtManager *auth.JWTManager, procedures ...string) connect.UnaryInterceptorFunc {
	guarded := make(map[string]bool, len(procedures))
	for _, p := range procedures {
		guarded[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if len(guarded) > 0 && !guarded[req.Spec().Procedure] {
				return next(ctx, req)
			}

			// Extract Authorization header
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			// Parse Bearer token
			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, SubjectKey, claims.Subject)
			return next(ctx, req)
		}
	}
}
