package auth

import "context"

type (
	ctxKey byte
)

var (
	claimsKey = ctxKey(1)
)

// WithClaims attaches the decoded claims to the request context. The value
// lives exactly as long as the request, nothing persists it.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the claims the access gate attached, if any.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return nil, false
	}
	c, ok := v.(*Claims)
	return c, ok
}
