package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Magupe09/auth-prueba/internal/auth"
)

type claimsKey struct{}

// TokenVerifier is the minimal interface needed to verify bearer tokens.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores
// the verified claims in the request context. A missing token is 401;
// a token that fails verification is 403.
func RequireAuth(verifier TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, codeMissingToken, "missing authentication token")
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			writeError(w, http.StatusForbidden, codeInvalidToken, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func claimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return claims, ok
}

// ContextWithClaims injects claims directly; used by tests that exercise
// handlers without the middleware.
func ContextWithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}
