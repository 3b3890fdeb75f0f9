package services

import (
	"context"
	"iter"
	"log/slog"

	"tagtheme/internal/domain"
	"tagtheme/internal/metrics"
)

// LoopState is the position of a PostLoop in its iteration protocol.
type LoopState int

const (
	LoopUninitialized LoopState = iota
	LoopIterating
	LoopExhausted
)

func (s LoopState) String() string {
	switch s {
	case LoopUninitialized:
		return "uninitialized"
	case LoopIterating:
		return "iterating"
	case LoopExhausted:
		return "exhausted"
	}
	return "unknown"
}

// PostLoop drives a template's post list for one request.
//
// Templates call HasPosts to decide whether to render the list at all, then
// Next repeatedly; every true result publishes one post into the registry's
// article slot, read back with Article. When the collection is exhausted Next
// rewinds and returns false, so a second pass over the same request starts
// again from the first post. An empty tag iterates one page of all published
// posts instead.
//
// The loop keeps the request context: it is created per request and must not
// outlive it.
type PostLoop struct {
	ctx    context.Context
	logger *slog.Logger
	posts  domain.PostService
	tags   domain.TagService
	reg    *domain.Registry
	tag    string
	page   domain.PaginationParams

	cursor *domain.Cursor
	state  LoopState
}

// NewPostLoop returns a PostLoop for tag (empty means no filter) and page.
func NewPostLoop(
	ctx context.Context,
	logger *slog.Logger,
	posts domain.PostService,
	tags domain.TagService,
	reg *domain.Registry,
	tag string,
	page domain.PaginationParams,
) *PostLoop {
	return &PostLoop{
		ctx:    ctx,
		logger: logger,
		posts:  posts,
		tags:   tags,
		reg:    reg,
		tag:    tag,
		page:   page,
	}
}

// Tag returns the active tag filter, empty when none.
func (l *PostLoop) Tag() string { return l.tag }

// State returns the current iteration state.
func (l *PostLoop) State() LoopState { return l.state }

// HasPosts reports whether the list has at least one post. It only touches
// the cached count and never moves the cursor.
func (l *PostLoop) HasPosts() bool {
	n, err := l.posts.CountVisiblePosts(l.ctx, l.reg, l.tag)
	if err != nil {
		l.degrade("count", err)
		return false
	}
	return n > 0
}

// Next publishes the next post as the current article and reports whether
// there was one. Past the end it rewinds and keeps returning false until
// called again on the rewound cursor.
func (l *PostLoop) Next() bool {
	if l.cursor == nil {
		posts, err := l.posts.ResolveVisiblePosts(l.ctx, l.reg, l.tag, l.page)
		if err != nil {
			l.degrade("resolve", err)
			posts = nil
		}
		l.cursor = domain.NewCursor(posts)
	}

	if !l.cursor.Valid() {
		l.cursor.Rewind()
		l.state = LoopExhausted
		return false
	}
	l.state = LoopIterating
	l.reg.Set(domain.RegistryArticle, l.cursor.Current())
	l.cursor.Next()
	return true
}

// Remaining calls Next until it returns false, yielding a 1-based counter and
// the current article. It lets a template range over the rest of the list.
func (l *PostLoop) Remaining() iter.Seq2[int, *domain.Post] {
	return func(yield func(int, *domain.Post) bool) {
		for i := 1; l.Next(); i++ {
			if !yield(i, l.Article()) {
				return
			}
		}
	}
}

// Article returns the post published by the last successful Next, or nil.
func (l *PostLoop) Article() *domain.Post {
	p, _ := l.reg.Get(domain.RegistryArticle, nil).(*domain.Post)
	return p
}

// ArticleTags returns the tags of the current article. Lookup errors yield no tags.
func (l *PostLoop) ArticleTags() []string {
	article := l.Article()
	if article == nil {
		return []string{}
	}
	tags, err := l.tags.TagsForPost(l.ctx, article.ID)
	if err != nil {
		l.logger.WarnContext(l.ctx, "article tags unavailable", "post_id", article.ID, "err", err)
		return []string{}
	}
	return tags
}

func (l *PostLoop) degrade(op string, err error) {
	branch := "tagged"
	if l.tag == "" {
		branch = "untagged"
	}
	metrics.ObserveDegraded(branch)
	l.logger.WarnContext(l.ctx, "post list degraded to empty", "op", op, "tag", l.tag, "err", err)
}
