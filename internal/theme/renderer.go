package theme

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"iter"
	"log/slog"
	"path"
	"time"

	"tagtheme/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// PostList is the iteration protocol a post list template drives.
type PostList interface {
	Tag() string
	HasPosts() bool
	Next() bool
	Article() *domain.Post
	ArticleTags() []string
	Remaining() iter.Seq2[int, *domain.Post]
}

// Pagination holds the neighbour page links of an untagged list.
type Pagination struct {
	Prev string
	Next string
}

// HasPagination reports whether either neighbour link exists.
func (p Pagination) HasPagination() bool {
	return p.Prev != "" || p.Next != ""
}

// PostsPage is the data of the post list page.
type PostsPage struct {
	Site          domain.SiteMeta
	Posts         PostList
	Pagination    Pagination
	PerPage       int
	TotalArticles int
}

// Options configures a Renderer.
type Options struct {
	Location  *time.Location
	PostsPath string
	Now       func() time.Time
	Logger    *slog.Logger
}

// Renderer renders the theme's embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates with the theme functions bound to opts.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.PostsPath == "" {
		opts.PostsPath = "/posts"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	funcs := template.FuncMap{
		"relativeTime": func(v any) string {
			s, err := RelativeTimeIn(v, opts.Location, opts.Now())
			if err != nil {
				opts.Logger.Warn("relative time", "value", v, "err", err)
				return ""
			}
			return s
		},
		"w3c": func(t time.Time) string {
			return t.In(opts.Location).Format(time.RFC3339)
		},
		"postURL": func(p *domain.Post) string {
			return path.Join(opts.PostsPath, p.Slug)
		},
		"markdown":       Markdown,
		"shade":          Shade,
		"numeral":        Numeral,
		"countWords":     CountWords,
		"pluralise":      Pluralise,
		"twitterAccount": TwitterAccount,
		"twitterURL":     TwitterURL,
	}
	tmpl, err := template.New("theme").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template (e.g. "posts.html") with data into w.
// Output is buffered so a failing template writes nothing.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
