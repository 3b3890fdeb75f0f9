package controllers

import (
	"context"
	"io"
	"log/slog"

	"tagtheme/internal/domain"
	"tagtheme/internal/theme"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTagService implements domain.TagService for handler tests.
type fakeTagService struct {
	postTags     []string
	pageTags     []string
	postIDs      map[string][]int64
	pageIDs      map[string][]int64
	tagsByPost   map[int64][]string
	err          error
	lastPostID   int64
	lastPagesTag string
}

func (f *fakeTagService) PostTags(ctx context.Context) ([]string, error) {
	return f.postTags, f.err
}

func (f *fakeTagService) PageTags(ctx context.Context) ([]string, error) {
	return f.pageTags, f.err
}

func (f *fakeTagService) PostsWithTag(ctx context.Context, tag string) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.postIDs[tag], nil
}

func (f *fakeTagService) PagesWithTag(ctx context.Context, tag string) ([]int64, error) {
	f.lastPagesTag = tag
	if f.err != nil {
		return nil, f.err
	}
	ids := f.pageIDs[tag]
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (f *fakeTagService) TagsForPost(ctx context.Context, postID int64) ([]string, error) {
	f.lastPostID = postID
	if f.err != nil {
		return nil, f.err
	}
	tags := f.tagsByPost[postID]
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (f *fakeTagService) VerifyNamespaces(ctx context.Context) error {
	return f.err
}

// fakePostService implements domain.PostService for handler tests.
type fakePostService struct {
	all      []*domain.Post
	byTag    map[string][]*domain.Post
	err      error
	countErr error
	lastTag  string
	lastPage domain.PaginationParams
}

func (f *fakePostService) ResolveVisiblePosts(ctx context.Context, reg *domain.Registry, tag string, page domain.PaginationParams) ([]*domain.Post, error) {
	f.lastTag = tag
	f.lastPage = page
	if f.err != nil {
		return nil, f.err
	}
	if tag != "" {
		posts := f.byTag[tag]
		reg.Set(domain.RegistryTotalTaggedPosts, len(posts))
		return posts, nil
	}
	start := min(page.Offset(), len(f.all))
	end := min(start+page.PageSize, len(f.all))
	return f.all[start:end], nil
}

func (f *fakePostService) CountVisiblePosts(ctx context.Context, reg *domain.Registry, tag string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if tag != "" {
		return len(f.byTag[tag]), nil
	}
	return len(f.all), nil
}

func (f *fakePostService) TotalArticles(ctx context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.all), nil
}

// captureRenderer records the page data and drains the post list the way the
// posts template does.
type captureRenderer struct {
	err    error
	page   any
	titles []string
}

func (c *captureRenderer) Render(w io.Writer, templateName string, data any) error {
	if c.err != nil {
		return c.err
	}
	c.page = data
	if page, ok := data.(theme.PostsPage); ok && page.Posts.HasPosts() {
		for page.Posts.Next() {
			c.titles = append(c.titles, page.Posts.Article().Title)
		}
	}
	_, err := io.WriteString(w, "<html>"+templateName+"</html>")
	return err
}
