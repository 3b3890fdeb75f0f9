package middleware

import (
	"context"
	"net/http"

	"tagtheme/internal/domain"
)

type contextKey string

const registryKey contextKey = "registry"

// SetRegistry returns a context carrying reg. Used by WithRegistry.
func SetRegistry(ctx context.Context, reg *domain.Registry) context.Context {
	return context.WithValue(ctx, registryKey, reg)
}

// RegistryFromContext returns the request registry from the context, if present.
func RegistryFromContext(ctx context.Context) (*domain.Registry, bool) {
	reg, ok := ctx.Value(registryKey).(*domain.Registry)
	return reg, ok
}

// WithRegistry gives every request a fresh registry that lives until the
// handler returns.
func WithRegistry(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(SetRegistry(r.Context(), domain.NewRegistry()))
		next.ServeHTTP(w, r)
	})
}
