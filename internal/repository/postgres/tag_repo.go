package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"tagtheme/internal/domain"

	"github.com/lib/pq"
)

type tagCatalog struct {
	DB     *sql.DB
	prefix string
}

// NewTagCatalog returns a domain.TagCatalog implemented with Postgres.
// prefix is prepended to every table name (the CMS table prefix).
func NewTagCatalog(db *sql.DB, prefix string) domain.TagCatalog {
	return &tagCatalog{DB: db, prefix: prefix}
}

func (r *tagCatalog) table(name string) string {
	return pq.QuoteIdentifier(r.prefix + name)
}

func (r *tagCatalog) ResolveNamespace(ctx context.Context, ns domain.TagNamespace) (int64, error) {
	query := fmt.Sprintf(`SELECT id FROM %s WHERE "key" = $1 AND type = $2 ORDER BY id LIMIT 1`, r.table("extend"))
	var id int64
	err := r.DB.QueryRowContext(ctx, query, ns.Key, ns.Type).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%s/%s: %w", ns.Key, ns.Type, domain.ErrNamespaceNotDefined)
		}
		return 0, err
	}
	return id, nil
}

func (r *tagCatalog) TagsForNamespace(ctx context.Context, ns domain.TagNamespace) ([]string, error) {
	extendID, err := r.ResolveNamespace(ctx, ns)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT m.data FROM %s m
		LEFT JOIN %s e ON e.id = m.%s
		WHERE e.status = $1 AND m.extend = $2
		ORDER BY m.id`,
		r.table(ns.MetaTable), r.table(ns.EntityTable), pq.QuoteIdentifier(ns.EntityColumn))
	rows, err := r.DB.QueryContext(ctx, query, domain.PostStatusPublished, extendID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}
	seen := make(map[string]struct{})
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		blob, err := decodeTagBlob(data)
		if err != nil {
			return nil, err
		}
		for _, tag := range domain.SplitTags(blob.Text) {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagCatalog) EntitiesWithTag(ctx context.Context, ns domain.TagNamespace, tag string) ([]int64, error) {
	extendID, err := r.ResolveNamespace(ctx, ns)
	if err != nil {
		return nil, err
	}
	// Substring match on the raw blob: "go" matches "golang" too.
	query := fmt.Sprintf(`
		SELECT m.%s FROM %s m
		WHERE m.extend = $1 AND m.data LIKE $2
		ORDER BY m.id`,
		pq.QuoteIdentifier(ns.EntityColumn), r.table(ns.MetaTable))
	rows, err := r.DB.QueryContext(ctx, query, extendID, "%"+tag+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int64{}
	seen := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *tagCatalog) TagsForEntity(ctx context.Context, ns domain.TagNamespace, entityID int64) ([]string, error) {
	extendID, err := r.ResolveNamespace(ctx, ns)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT m.data FROM %s m
		LEFT JOIN %s e ON e.id = m.%s
		WHERE e.status = $1 AND m.extend = $2 AND m.%s = $3
		ORDER BY m.id
		LIMIT 1`,
		r.table(ns.MetaTable), r.table(ns.EntityTable), pq.QuoteIdentifier(ns.EntityColumn), pq.QuoteIdentifier(ns.EntityColumn))
	var data string
	err = r.DB.QueryRowContext(ctx, query, domain.PostStatusPublished, extendID, entityID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []string{}, nil
		}
		return nil, err
	}
	blob, err := decodeTagBlob(data)
	if err != nil {
		return nil, err
	}
	return domain.SplitTags(blob.Text), nil
}

func decodeTagBlob(data string) (domain.TagBlob, error) {
	var blob domain.TagBlob
	if data == "" {
		return blob, nil
	}
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		return blob, fmt.Errorf("decode tag blob: %w", err)
	}
	return blob, nil
}
