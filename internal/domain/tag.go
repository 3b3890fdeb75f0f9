package domain

import (
	"context"
	"strings"
)

// TagNamespace identifies a tag custom field and the meta table holding its values.
type TagNamespace struct {
	// Key and Type select the extend row, e.g. ("post_tags", "post").
	Key  string
	Type string
	// MetaTable stores one blob per entity; EntityColumn references EntityTable.id.
	MetaTable    string
	EntityColumn string
	EntityTable  string
}

// Tag namespaces known to the theme.
var (
	PostTags = TagNamespace{Key: "post_tags", Type: "post", MetaTable: "post_meta", EntityColumn: "post", EntityTable: "posts"}
	PageTags = TagNamespace{Key: "page_tags", Type: "page", MetaTable: "page_meta", EntityColumn: "page", EntityTable: "pages"}
)

// TagBlob is the JSON document stored in a meta row's data column.
type TagBlob struct {
	Text string `json:"text"`
}

// SplitTags tokenizes a tag blob's text: comma separated, trimmed, empty tokens
// dropped, duplicates removed keeping the first occurrence.
func SplitTags(text string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		tags = append(tags, tok)
	}
	return tags
}

// TagCatalog defines lookups over the denormalized tag blobs.
// Every operation resolves the namespace first and fails with
// ErrNamespaceNotDefined when it has no extend row.
type TagCatalog interface {
	// ResolveNamespace returns the extend id of the namespace.
	ResolveNamespace(ctx context.Context, ns TagNamespace) (int64, error)
	// TagsForNamespace returns the unique tags of all published entities.
	TagsForNamespace(ctx context.Context, ns TagNamespace) ([]string, error)
	// EntitiesWithTag returns the ids of entities whose blob contains tag as a
	// substring, so "go" also matches "golang".
	EntitiesWithTag(ctx context.Context, ns TagNamespace, tag string) ([]int64, error)
	// TagsForEntity returns the tags of one published entity, or an empty slice
	// when it has no tag row.
	TagsForEntity(ctx context.Context, ns TagNamespace, entityID int64) ([]string, error)
}

// TagService exposes the tag helpers used by the theme.
type TagService interface {
	PostTags(ctx context.Context) ([]string, error)
	PageTags(ctx context.Context) ([]string, error)
	PostsWithTag(ctx context.Context, tag string) ([]int64, error)
	PagesWithTag(ctx context.Context, tag string) ([]int64, error)
	TagsForPost(ctx context.Context, postID int64) ([]string, error)
	// VerifyNamespaces checks that every tag namespace is defined.
	VerifyNamespaces(ctx context.Context) error
}
