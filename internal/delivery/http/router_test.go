package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tagtheme/internal/delivery/http/controllers"
	"tagtheme/internal/domain"
	"tagtheme/internal/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

type stubTags struct{}

func (stubTags) PostTags(ctx context.Context) ([]string, error) { return []string{"news"}, nil }
func (stubTags) PageTags(ctx context.Context) ([]string, error) { return []string{}, nil }
func (stubTags) PostsWithTag(ctx context.Context, tag string) ([]int64, error) {
	return []int64{1}, nil
}
func (stubTags) PagesWithTag(ctx context.Context, tag string) ([]int64, error) {
	return []int64{}, nil
}
func (stubTags) TagsForPost(ctx context.Context, postID int64) ([]string, error) {
	return []string{"news"}, nil
}
func (stubTags) VerifyNamespaces(ctx context.Context) error { return nil }

type stubPosts struct{ posts []*domain.Post }

func (s stubPosts) ResolveVisiblePosts(ctx context.Context, reg *domain.Registry, tag string, page domain.PaginationParams) ([]*domain.Post, error) {
	return s.posts, nil
}
func (s stubPosts) CountVisiblePosts(ctx context.Context, reg *domain.Registry, tag string) (int, error) {
	return len(s.posts), nil
}
func (s stubPosts) TotalArticles(ctx context.Context) (int, error) { return len(s.posts), nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := stubPosts{posts: []*domain.Post{
		{ID: 1, Title: "Hello", Slug: "hello", Markdown: "Some *body*", Created: now.Add(-2 * time.Hour)},
	}}
	renderer, err := theme.NewRenderer(theme.Options{
		Location:  time.UTC,
		PostsPath: "/posts",
		Now:       func() time.Time { return now },
		Logger:    testLogger,
	})
	require.NoError(t, err)

	return NewRouter(
		controllers.NewPostsController(testLogger, posts, stubTags{}, renderer, domain.SiteMeta{Name: "Blog"}, 10),
		controllers.NewTagController(testLogger, stubTags{}, posts, 10),
	)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"post list", http.MethodGet, "/", http.StatusOK, "Hello"},
		{"post tags", http.MethodGet, "/api/tags/posts", http.StatusOK, `"news"`},
		{"tags of post", http.MethodGet, "/api/posts/1/tags", http.StatusOK, `"news"`},
		{"stats", http.MethodGet, "/api/stats", http.StatusOK, `"total_articles":1`},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "go_goroutines"},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, ""},
		{"write rejected", http.MethodPost, "/api/tags/posts", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}
