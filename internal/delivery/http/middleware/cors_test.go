package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	handler := CORS([]string{" https://blog.example.com/ ", ""}, next)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{"allowed get", http.MethodGet, "https://blog.example.com", http.StatusOK, "https://blog.example.com"},
		{"foreign get", http.MethodGet, "https://evil.example.com", http.StatusOK, ""},
		{"allowed preflight", http.MethodOptions, "https://blog.example.com", http.StatusNoContent, "https://blog.example.com"},
		{"foreign preflight", http.MethodOptions, "https://evil.example.com", http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/tags/posts", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			require.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.method == http.MethodOptions && tt.wantOrigin != "" {
				require.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
