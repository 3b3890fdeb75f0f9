package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"tagtheme/internal/delivery/http/helpers"
	"tagtheme/internal/delivery/http/middleware"
	"tagtheme/internal/domain"
)

// PostsListResponse is the data of GET /api/posts.
// swagger:model PostsListResponse
type PostsListResponse struct {
	Tag        string                  `json:"tag,omitempty"`
	Posts      []*domain.Post          `json:"posts"`
	Pagination *helpers.PaginationMeta `json:"pagination,omitempty"`
}

// StatsResponse is the data of GET /api/stats.
// swagger:model StatsResponse
type StatsResponse struct {
	TotalArticles int `json:"total_articles"`
}

// TagsSuccessResponse is the success envelope for tag list endpoints (200).
type TagsSuccessResponse struct {
	Data  []string          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// IDsSuccessResponse is the success envelope for id list endpoints (200).
type IDsSuccessResponse struct {
	Data  []int64           `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// PostsListSuccessResponse is the success envelope for GET /api/posts (200).
type PostsListSuccessResponse struct {
	Data  PostsListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StatsSuccessResponse is the success envelope for GET /api/stats (200).
type StatsSuccessResponse struct {
	Data  StatsResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TagController exposes the tag helpers as a read-only JSON API.
type TagController struct {
	Logger      *slog.Logger
	Tags        domain.TagService
	PostService domain.PostService
	PerPage     int
}

// NewTagController creates a TagController.
func NewTagController(logger *slog.Logger, tags domain.TagService, posts domain.PostService, perPage int) *TagController {
	return &TagController{
		Logger:      logger,
		Tags:        tags,
		PostService: posts,
		PerPage:     perPage,
	}
}

// PostTags godoc
// @Summary List post tags
// @Description Returns every distinct tag used by published posts.
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.TagsSuccessResponse "data contains the tags"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (tag field not defined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/tags/posts [get]
func (c *TagController) PostTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Tags.PostTags(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// PageTags godoc
// @Summary List page tags
// @Description Returns every distinct tag used by published pages.
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.TagsSuccessResponse "data contains the tags"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (tag field not defined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/tags/pages [get]
func (c *TagController) PageTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Tags.PageTags(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// TagsForPost godoc
// @Summary List the tags of a post
// @Description Returns the tags of one published post; a post without tags yields an empty list.
// @Tags tags
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} controllers.TagsSuccessResponse "data contains the tags"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (tag field not defined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/posts/{id}/tags [get]
func (c *TagController) TagsForPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	tags, err := c.Tags.TagsForPost(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// PagesWithTag godoc
// @Summary List pages carrying a tag
// @Description Returns the ids of pages whose tags contain the given text. Matching is by substring, so "go" also matches "golang".
// @Tags tags
// @Produce json
// @Param tag query string true "Tag text"
// @Success 200 {object} controllers.IDsSuccessResponse "data contains page ids"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (tag field not defined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/pages [get]
func (c *TagController) PagesWithTag(w http.ResponseWriter, r *http.Request) {
	tag := strings.TrimSpace(r.URL.Query().Get("tag"))
	if tag == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "tag is required")
		return
	}
	ids, err := c.Tags.PagesWithTag(r.Context(), tag)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ids)
}

// Posts godoc
// @Summary List visible posts
// @Description Returns the posts a themed list would show. With a tag, all published posts carrying it (not paginated); without, one page of published posts.
// @Tags posts
// @Produce json
// @Param tag query string false "Tag text"
// @Param page query int false "Page number (untagged only)"
// @Param page_size query int false "Page size (untagged only)"
// @Success 200 {object} controllers.PostsListSuccessResponse "data contains posts and, when untagged, pagination"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (tag field not defined)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/posts [get]
func (c *TagController) Posts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reg, ok := middleware.RegistryFromContext(ctx)
	if !ok {
		reg = domain.NewRegistry()
	}
	tag := strings.TrimSpace(r.URL.Query().Get("tag"))
	page := helpers.ParsePagination(r, c.PerPage)

	posts, err := c.PostService.ResolveVisiblePosts(ctx, reg, tag, page)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	resp := PostsListResponse{Tag: tag, Posts: posts}
	if tag == "" {
		total, err := c.PostService.CountVisiblePosts(ctx, reg, "")
		if err != nil {
			c.writeError(w, r, err)
			return
		}
		meta := helpers.NewPaginationMeta(page.Page, page.PageSize, total)
		resp.Pagination = &meta
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// Stats godoc
// @Summary Site statistics
// @Description Returns the number of published articles.
// @Tags posts
// @Produce json
// @Success 200 {object} controllers.StatsSuccessResponse "data contains total_articles"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/stats [get]
func (c *TagController) Stats(w http.ResponseWriter, r *http.Request) {
	total, err := c.PostService.TotalArticles(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, StatsResponse{TotalArticles: total})
}

func (c *TagController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if errors.Is(err, domain.ErrNamespaceNotDefined) {
		c.Logger.WarnContext(r.Context(), "tag field not defined", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "tag field not defined")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
