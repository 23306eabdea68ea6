package httpx

import "context"

type ctxKey string

const (
	CtxKeyIdentity ctxKey = "identity"
)

// Identity is the authenticated caller as seen by handlers: the session's
// snapshot of the user's public fields.
type Identity struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// ContextWithIdentity attaches an identity for downstream handlers.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, id)
}

// IdentityFromContext returns the caller identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(Identity)
	return id, ok
}
