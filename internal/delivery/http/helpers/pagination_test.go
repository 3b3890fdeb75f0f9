package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		defaultSize  int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", "/", 5, 1, 5},
		{"fallback default size", "/", 0, 1, DefaultPageSize},
		{"explicit page", "/?page=3", 5, 3, 5},
		{"invalid page", "/?page=abc", 5, 1, 5},
		{"negative page", "/?page=-1", 5, 1, 5},
		{"page size override", "/?page_size=20", 5, 1, 20},
		{"page size clamped", "/?page_size=1000", 5, 1, MaxPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			p := ParsePagination(req, tt.defaultSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, PaginationMeta{Page: 1, PageSize: 10, Total: 21, TotalPages: 3}, NewPaginationMeta(1, 10, 21))
	assert.Equal(t, 0, NewPaginationMeta(1, 0, 21).TotalPages)
}

func TestPageLinks(t *testing.T) {
	tests := []struct {
		name     string
		meta     PaginationMeta
		wantPrev string
		wantNext string
	}{
		{"single page", NewPaginationMeta(1, 10, 5), "", ""},
		{"first of three", NewPaginationMeta(1, 10, 25), "", "/?page=2"},
		{"middle", NewPaginationMeta(2, 10, 25), "/", "/?page=3"},
		{"last", NewPaginationMeta(3, 10, 25), "/?page=2", ""},
		{"beyond last", NewPaginationMeta(9, 10, 25), "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, next := PageLinks("/", tt.meta)
			assert.Equal(t, tt.wantPrev, prev)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusOK, []string{"a"})
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var ok APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&ok))
	assert.Nil(t, ok.Error)
	assert.Equal(t, []any{"a"}, ok.Data)

	rr = httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "missing")
	require.Equal(t, http.StatusNotFound, rr.Code)
	var failed APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&failed))
	require.NotNil(t, failed.Error)
	assert.Equal(t, ErrCodeNotFound, failed.Error.Code)
	assert.Equal(t, "missing", failed.Error.Message)
}
