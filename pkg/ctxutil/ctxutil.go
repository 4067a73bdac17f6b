package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	principalKey ctxKey = "principal"
	requestIDKey ctxKey = "request_id"
)

type principal struct {
	username    string
	credentials string
}

// WithPrincipal stores the authenticated username and the raw credential it
// presented in the context.
func WithPrincipal(ctx context.Context, username, credentials string) context.Context {
	return context.WithValue(ctx, principalKey, principal{username: username, credentials: credentials})
}

// PrincipalFromCtx extracts the username and credential from the context.
// Returns ok=false if the value is missing, blank, or of the wrong type.
func PrincipalFromCtx(ctx context.Context) (username, credentials string, ok bool) {
	p, ok := ctx.Value(principalKey).(principal)
	if !ok || strings.TrimSpace(p.username) == "" {
		return "", "", false
	}
	return p.username, p.credentials, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
