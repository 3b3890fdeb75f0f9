package services

import (
	"context"
	"fmt"

	"tagtheme/internal/domain"
)

type postService struct {
	posts domain.PostRepository
	tags  domain.TagService
}

// NewPostService creates a PostService with the given repository and tag service.
func NewPostService(posts domain.PostRepository, tags domain.TagService) domain.PostService {
	return &postService{posts: posts, tags: tags}
}

func (s *postService) ResolveVisiblePosts(ctx context.Context, reg *domain.Registry, tag string, page domain.PaginationParams) ([]*domain.Post, error) {
	if tag == "" {
		posts, err := s.posts.ListPublished(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("list published posts: %w", err)
		}
		return posts, nil
	}

	ids, err := s.tags.PostsWithTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	// Tagged lists are not paginated.
	posts := []*domain.Post{}
	if len(ids) > 0 {
		posts, err = s.posts.ListPublishedByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("list tagged posts: %w", err)
		}
	}
	reg.Set(domain.RegistryTotalTaggedPosts, len(posts))
	return posts, nil
}

func (s *postService) CountVisiblePosts(ctx context.Context, reg *domain.Registry, tag string) (int, error) {
	key := domain.RegistryTotalTaggedPosts
	if tag == "" {
		key = domain.RegistryTotalPosts
	}
	if v, ok := reg.Lookup(key); ok {
		if n, ok := v.(int); ok {
			return n, nil
		}
	}

	var n int
	if tag == "" {
		count, err := s.posts.CountPublished(ctx)
		if err != nil {
			return 0, fmt.Errorf("count published posts: %w", err)
		}
		n = count
	} else {
		ids, err := s.tags.PostsWithTag(ctx, tag)
		if err != nil {
			return 0, err
		}
		if len(ids) > 0 {
			count, err := s.posts.CountPublishedByIDs(ctx, ids)
			if err != nil {
				return 0, fmt.Errorf("count tagged posts: %w", err)
			}
			n = count
		}
	}
	reg.Set(key, n)
	return n, nil
}

func (s *postService) TotalArticles(ctx context.Context) (int, error) {
	n, err := s.posts.CountPublished(ctx)
	if err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return n, nil
}
