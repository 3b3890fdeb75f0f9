package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tagtheme/config"
	httpdelivery "tagtheme/internal/delivery/http"
	"tagtheme/internal/delivery/http/controllers"
	"tagtheme/internal/delivery/http/middleware"
	"tagtheme/internal/metrics"
	"tagtheme/internal/theme"

	_ "tagtheme/docs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	site, err := config.LoadSiteMeta(a.cfg.SiteMetaFile)
	if err != nil {
		return err
	}
	renderer, err := theme.NewRenderer(theme.Options{
		Location:  a.cfg.Timezone,
		PostsPath: a.cfg.PostsPath,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}

	router := httpdelivery.NewRouter(
		controllers.NewPostsController(a.logger, a.posts, a.tags, renderer, site, a.cfg.PostsPerPage),
		controllers.NewTagController(a.logger, a.tags, a.posts, a.cfg.PostsPerPage),
	)

	// metrics must wrap the mux directly to see the matched pattern.
	var handler http.Handler = metrics.Middleware(router)
	handler = middleware.WithRegistry(handler)
	handler = middleware.LoggingMiddleware(a.logger, handler)
	handler = middleware.CORS(a.cfg.CORSAllowedOrigins, handler)

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server starting", "port", a.cfg.Port, "env", a.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
