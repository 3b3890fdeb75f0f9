package services

import (
	"context"
	"errors"
	"fmt"

	"tagtheme/internal/domain"
	"tagtheme/internal/metrics"
)

type tagService struct {
	catalog domain.TagCatalog
}

// NewTagService creates a TagService over the given catalog.
func NewTagService(catalog domain.TagCatalog) domain.TagService {
	return &tagService{catalog: catalog}
}

func (s *tagService) PostTags(ctx context.Context) ([]string, error) {
	tags, err := s.catalog.TagsForNamespace(ctx, domain.PostTags)
	metrics.ObserveTagLookup(domain.PostTags.Key, "namespace", err)
	if err != nil {
		return nil, fmt.Errorf("post tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) PageTags(ctx context.Context) ([]string, error) {
	tags, err := s.catalog.TagsForNamespace(ctx, domain.PageTags)
	metrics.ObserveTagLookup(domain.PageTags.Key, "namespace", err)
	if err != nil {
		return nil, fmt.Errorf("page tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) PostsWithTag(ctx context.Context, tag string) ([]int64, error) {
	ids, err := s.catalog.EntitiesWithTag(ctx, domain.PostTags, tag)
	metrics.ObserveTagLookup(domain.PostTags.Key, "entities", err)
	if err != nil {
		return nil, fmt.Errorf("posts with tag %q: %w", tag, err)
	}
	return ids, nil
}

func (s *tagService) PagesWithTag(ctx context.Context, tag string) ([]int64, error) {
	// An empty pattern would match every page.
	if tag == "" {
		return nil, fmt.Errorf("pages with tag: empty tag: %w", domain.ErrInvalidInput)
	}
	ids, err := s.catalog.EntitiesWithTag(ctx, domain.PageTags, tag)
	metrics.ObserveTagLookup(domain.PageTags.Key, "entities", err)
	if err != nil {
		return nil, fmt.Errorf("pages with tag %q: %w", tag, err)
	}
	return ids, nil
}

func (s *tagService) TagsForPost(ctx context.Context, postID int64) ([]string, error) {
	if postID < 1 {
		return nil, fmt.Errorf("tags for post %d: %w", postID, domain.ErrInvalidInput)
	}
	tags, err := s.catalog.TagsForEntity(ctx, domain.PostTags, postID)
	metrics.ObserveTagLookup(domain.PostTags.Key, "entity", err)
	if err != nil {
		return nil, fmt.Errorf("tags for post %d: %w", postID, err)
	}
	return tags, nil
}

func (s *tagService) VerifyNamespaces(ctx context.Context) error {
	var errs []error
	for _, ns := range []domain.TagNamespace{domain.PostTags, domain.PageTags} {
		if _, err := s.catalog.ResolveNamespace(ctx, ns); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
