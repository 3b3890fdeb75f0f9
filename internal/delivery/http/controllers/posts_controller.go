package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"tagtheme/internal/delivery/http/helpers"
	"tagtheme/internal/delivery/http/middleware"
	"tagtheme/internal/domain"
	"tagtheme/internal/services"
	"tagtheme/internal/theme"
)

// PageRenderer renders a named theme template.
type PageRenderer interface {
	Render(w io.Writer, templateName string, data any) error
}

// PostsController serves the themed post list.
type PostsController struct {
	Logger   *slog.Logger
	Posts    domain.PostService
	Tags     domain.TagService
	Renderer PageRenderer
	Site     domain.SiteMeta
	PerPage  int
}

// NewPostsController creates a PostsController.
func NewPostsController(
	logger *slog.Logger,
	posts domain.PostService,
	tags domain.TagService,
	renderer PageRenderer,
	site domain.SiteMeta,
	perPage int,
) *PostsController {
	return &PostsController{
		Logger:   logger,
		Posts:    posts,
		Tags:     tags,
		Renderer: renderer,
		Site:     site,
		PerPage:  perPage,
	}
}

// List renders the post list page. A "?tag=" query narrows the list to posts
// carrying that tag; otherwise one page of all published posts is shown.
func (c *PostsController) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, ok := middleware.RegistryFromContext(ctx)
	if !ok {
		reg = domain.NewRegistry()
	}
	tag := helpers.ExtractTag(r)
	page := helpers.ParsePagination(r, c.PerPage)

	data := theme.PostsPage{
		Site:    c.Site,
		Posts:   services.NewPostLoop(ctx, c.Logger, c.Posts, c.Tags, reg, tag, page),
		PerPage: page.PageSize,
	}

	total, err := c.Posts.TotalArticles(ctx)
	if err != nil {
		c.Logger.WarnContext(ctx, "total articles unavailable", "err", err)
	}
	data.TotalArticles = total

	// Only the untagged list is paginated.
	if tag == "" {
		count, err := c.Posts.CountVisiblePosts(ctx, reg, "")
		if err != nil {
			c.Logger.WarnContext(ctx, "post count unavailable", "err", err)
		}
		meta := helpers.NewPaginationMeta(page.Page, page.PageSize, count)
		data.Pagination.Prev, data.Pagination.Next = helpers.PageLinks(r.URL.Path, meta)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Renderer.Render(w, "posts.html", data); err != nil {
		c.Logger.ErrorContext(ctx, "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
}
