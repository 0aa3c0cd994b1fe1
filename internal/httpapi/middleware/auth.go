package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hamed0406/netdiag/internal/identity"
)

type ctxKey int

const ownerKey ctxKey = iota

func readAuth(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if k := r.Header.Get("X-API-Key"); k != "" {
		return strings.TrimSpace(k)
	}
	return ""
}

// RequireOwner resolves the presented API key to an owner id and stores it in
// the request context. Requests without a resolvable key get 401; handlers
// below this middleware can rely on OwnerID being present.
func RequireOwner(ids identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			owner, ok := ids.OwnerForKey(readAuth(r))
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey, owner)))
		})
	}
}

// OwnerID returns the owner id set by RequireOwner, or "" when absent.
func OwnerID(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey).(string)
	return owner
}
