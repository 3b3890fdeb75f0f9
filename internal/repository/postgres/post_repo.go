package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tagtheme/internal/domain"

	"github.com/lib/pq"
)

type PostRepository struct {
	DB     *sql.DB
	prefix string
}

// NewPostRepository returns a domain.PostRepository implemented with Postgres.
func NewPostRepository(db *sql.DB, prefix string) domain.PostRepository {
	return &PostRepository{DB: db, prefix: prefix}
}

func (r *PostRepository) selectPosts() string {
	return fmt.Sprintf(`
		SELECT p.id, p.title, p.slug, p.description, p.markdown, p.created, COALESCE(u.real_name, '')
		FROM %s p
		LEFT JOIN %s u ON u.id = p.author`,
		pq.QuoteIdentifier(r.prefix+"posts"), pq.QuoteIdentifier(r.prefix+"users"))
}

func (r *PostRepository) ListPublished(ctx context.Context, page domain.PaginationParams) ([]*domain.Post, error) {
	query := r.selectPosts() + `
		WHERE p.status = $1
		ORDER BY p.created DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, domain.PostStatusPublished, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

func (r *PostRepository) CountPublished(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE status = $1`, pq.QuoteIdentifier(r.prefix+"posts"))
	var n int
	if err := r.DB.QueryRowContext(ctx, query, domain.PostStatusPublished).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostRepository) ListPublishedByIDs(ctx context.Context, ids []int64) ([]*domain.Post, error) {
	if len(ids) == 0 {
		return []*domain.Post{}, nil
	}
	query := r.selectPosts() + `
		WHERE p.id = ANY($1) AND p.status = $2
		ORDER BY p.created DESC`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), domain.PostStatusPublished)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

func (r *PostRepository) CountPublishedByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = ANY($1) AND status = $2`, pq.QuoteIdentifier(r.prefix+"posts"))
	var n int
	if err := r.DB.QueryRowContext(ctx, query, pq.Array(ids), domain.PostStatusPublished).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanPosts(rows *sql.Rows) ([]*domain.Post, error) {
	defer rows.Close()
	posts := []*domain.Post{}
	for rows.Next() {
		p := &domain.Post{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Markdown, &p.Created, &p.Author); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
