package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pingstack/pingstack-go/internal/crypto"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the decoded user identity attached to authorized requests.
type Identity struct {
	UserID   int64
	Username string
}

// JWTAuth returns middleware that gates requests on a valid Bearer token.
// A missing header and an invalid token are reported separately, but both
// short-circuit with 401 before the downstream handler runs.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "access token required")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := Identity{UserID: claims.UserID, Username: claims.Username}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request
// context. The second return is false outside an authorized request.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}
