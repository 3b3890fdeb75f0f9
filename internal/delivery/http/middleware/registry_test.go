package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tagtheme/internal/domain"
)

func TestWithRegistry(t *testing.T) {
	var seen []*domain.Registry
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reg, ok := RegistryFromContext(r.Context())
		require.True(t, ok)
		require.Nil(t, reg.Get(domain.RegistryArticle, nil), "registry must start empty")
		reg.Set(domain.RegistryArticle, &domain.Post{ID: 1})
		seen = append(seen, reg)
	})
	handler := WithRegistry(next)

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	require.Len(t, seen, 2)
	require.NotSame(t, seen[0], seen[1])
}

func TestRegistryFromContext_Missing(t *testing.T) {
	_, ok := RegistryFromContext(context.Background())
	require.False(t, ok)
}
