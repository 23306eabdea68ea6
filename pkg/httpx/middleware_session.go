package httpx

import (
	"context"
	"net/http"

	"github.com/ngboy11/school/pkg/slogx"
)

// SessionResolver turns an opaque session token into a caller identity.
// Implementations refresh the session's rolling expiry as a side effect.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// SessionMiddleware is the authentication gate: it restores the session
// referenced by the request cookie and injects the caller identity into the
// request context. Requests without a valid session are rejected with 401
// before the wrapped handler runs.
func SessionMiddleware(cookie *SessionCookie, resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token, err := cookie.Read(r)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := resolver.Resolve(ctx, token)
			if err != nil {
				log.Debug("session resolve failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			// The resolver pushed the server-side expiry forward; re-sign
			// the cookie so its Max-Age rolls with it.
			if err := cookie.Set(w, token); err != nil {
				log.Warn("session cookie refresh failed", "err", err)
			}

			ctx = ContextWithIdentity(ctx, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
