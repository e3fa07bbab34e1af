// Package session implements the server-side session store for the admin
// gateway. A session maps an opaque cookie value to the bearer token the
// BusyBee backend issued at login; the token itself never leaves the server.
package session

import "context"

type tokenKey struct{}

// WithToken returns a context carrying the session's upstream bearer token.
// The session guard calls this once per admitted request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extracts the bearer token placed by the session guard. The
// upstream client reads it on every outgoing call.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
