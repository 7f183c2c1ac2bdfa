package httpapi

import (
	"context"
	"net/http"
	"strings"

	"loop/internal/common"
)

type contextKey string

const claimsKey contextKey = "claims"

// authMiddleware validates the Bearer session token and stashes the caller's
// user id in the request context. Every authenticated handler reads it back
// through callerID.
func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "missing bearer token"})
			return
		}

		claims, err := common.ValidToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func callerClaims(r *http.Request) *common.Claims {
	claims, _ := r.Context().Value(claimsKey).(*common.Claims)
	return claims
}

func callerID(r *http.Request) int64 {
	if claims := callerClaims(r); claims != nil {
		return claims.UserID
	}
	return 0
}
