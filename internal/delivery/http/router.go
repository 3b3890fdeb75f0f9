package http

import (
	"net/http"

	"tagtheme/internal/delivery/http/controllers"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(postsController *controllers.PostsController, tagController *controllers.TagController) *http.ServeMux {
	mux := http.NewServeMux()

	// Theme
	mux.HandleFunc("GET /{$}", postsController.List)

	// API Routes
	mux.HandleFunc("GET /api/tags/posts", tagController.PostTags)
	mux.HandleFunc("GET /api/tags/pages", tagController.PageTags)
	mux.HandleFunc("GET /api/posts", tagController.Posts)
	mux.HandleFunc("GET /api/posts/{id}/tags", tagController.TagsForPost)
	mux.HandleFunc("GET /api/pages", tagController.PagesWithTag)
	mux.HandleFunc("GET /api/stats", tagController.Stats)

	// Metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
