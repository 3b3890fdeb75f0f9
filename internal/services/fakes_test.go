package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"tagtheme/internal/domain"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// memoryCatalog implements domain.TagCatalog over in-memory blobs with the
// same substring semantics as the SQL LIKE lookup.
type memoryCatalog struct {
	defined   map[string]bool
	blobs     map[int64]string
	published map[int64]bool
	order     []int64
	err       error
	calls     int
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		defined:   map[string]bool{"post_tags": true, "page_tags": true},
		blobs:     map[int64]string{},
		published: map[int64]bool{},
	}
}

func (m *memoryCatalog) add(id int64, text string, published bool) {
	m.blobs[id] = text
	m.published[id] = published
	m.order = append(m.order, id)
}

func (m *memoryCatalog) ResolveNamespace(ctx context.Context, ns domain.TagNamespace) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if !m.defined[ns.Key] {
		return 0, fmt.Errorf("%s: %w", ns.Key, domain.ErrNamespaceNotDefined)
	}
	return 1, nil
}

func (m *memoryCatalog) TagsForNamespace(ctx context.Context, ns domain.TagNamespace) ([]string, error) {
	if _, err := m.ResolveNamespace(ctx, ns); err != nil {
		return nil, err
	}
	var all []string
	for _, id := range m.order {
		if m.published[id] {
			all = append(all, m.blobs[id])
		}
	}
	return domain.SplitTags(strings.Join(all, ",")), nil
}

func (m *memoryCatalog) EntitiesWithTag(ctx context.Context, ns domain.TagNamespace, tag string) ([]int64, error) {
	m.calls++
	if _, err := m.ResolveNamespace(ctx, ns); err != nil {
		return nil, err
	}
	ids := []int64{}
	for _, id := range m.order {
		if strings.Contains(m.blobs[id], tag) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memoryCatalog) TagsForEntity(ctx context.Context, ns domain.TagNamespace, entityID int64) ([]string, error) {
	if _, err := m.ResolveNamespace(ctx, ns); err != nil {
		return nil, err
	}
	text, ok := m.blobs[entityID]
	if !ok || !m.published[entityID] {
		return []string{}, nil
	}
	return domain.SplitTags(text), nil
}

// memoryPosts implements domain.PostRepository over a slice of posts.
type memoryPosts struct {
	posts     []*domain.Post
	published map[int64]bool
	err       error
	listCalls int
}

func (m *memoryPosts) visible() []*domain.Post {
	var out []*domain.Post
	for _, p := range m.posts {
		if m.published[p.ID] {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return out
}

func (m *memoryPosts) ListPublished(ctx context.Context, page domain.PaginationParams) ([]*domain.Post, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	all := m.visible()
	start := page.Offset()
	if start >= len(all) {
		return []*domain.Post{}, nil
	}
	end := start + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *memoryPosts) CountPublished(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.visible()), nil
}

func (m *memoryPosts) ListPublishedByIDs(ctx context.Context, ids []int64) ([]*domain.Post, error) {
	m.listCalls++
	return m.byIDs(ids)
}

func (m *memoryPosts) byIDs(ids []int64) ([]*domain.Post, error) {
	if m.err != nil {
		return nil, m.err
	}
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	out := []*domain.Post{}
	for _, p := range m.visible() {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryPosts) CountPublishedByIDs(ctx context.Context, ids []int64) (int, error) {
	posts, err := m.byIDs(ids)
	return len(posts), err
}
