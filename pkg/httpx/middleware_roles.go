package httpx

import "net/http"

// RequireRole is the authorization gate: the caller must hold one of the
// listed roles. It expects SessionMiddleware to run first; a missing identity
// is treated as unauthenticated, never as a pass.
func RequireRole(roles ...string) Middleware {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if _, ok := allowed[identity.Role]; !ok {
				WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
