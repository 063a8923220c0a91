package server

import (
	"context"
	"net/http"
)

type ctxKey int

const ownerIDKey ctxKey = iota

// OwnerAuthMiddleware resolves the owner identity from the X-User-ID
// header. Session validation is the hosted auth provider's job; this
// service trusts the identity the edge hands it.
func OwnerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID := r.Header.Get("X-User-ID")
		if ownerID == "" {
			respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user identity")
			return
		}

		ctx := context.WithValue(r.Context(), ownerIDKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ownerIDFromContext(ctx context.Context) string {
	if ownerID, ok := ctx.Value(ownerIDKey).(string); ok {
		return ownerID
	}
	return ""
}
