package domain

import (
	"context"
	"time"
)

// PostStatusPublished is the status of posts and pages visible on the site.
const PostStatusPublished = "published"

// Post is a published article as the theme sees it.
// swagger:model Post
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Markdown    string    `json:"markdown"`
	Author      string    `json:"author"`
	Created     time.Time `json:"created"`
}

// PostRepository defines read access to published posts.
type PostRepository interface {
	// ListPublished returns one page of published posts, newest first.
	ListPublished(ctx context.Context, page PaginationParams) ([]*Post, error)
	// CountPublished returns the number of published posts.
	CountPublished(ctx context.Context) (int, error)
	// ListPublishedByIDs returns the published posts among ids, newest first.
	ListPublishedByIDs(ctx context.Context, ids []int64) ([]*Post, error)
	// CountPublishedByIDs returns how many of ids are published posts.
	CountPublishedByIDs(ctx context.Context, ids []int64) (int, error)
}

// PostService resolves which posts a list shows for the current request.
type PostService interface {
	// ResolveVisiblePosts returns the posts for tag, or one page of all published
	// posts when tag is empty. The collection count is cached in reg.
	ResolveVisiblePosts(ctx context.Context, reg *Registry, tag string, page PaginationParams) ([]*Post, error)
	// CountVisiblePosts returns the size of the collection ResolveVisiblePosts
	// would produce (ignoring pagination), reusing the count cached in reg.
	CountVisiblePosts(ctx context.Context, reg *Registry, tag string) (int, error)
	// TotalArticles returns the number of published posts.
	TotalArticles(ctx context.Context) (int, error)
}
