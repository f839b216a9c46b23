package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"inkpost/internal/common"
	"inkpost/internal/domain/model"
	"inkpost/internal/domain/repository"
)

var ErrEmptyPost = fmt.Errorf("title and content cannot be empty: %w", common.ErrValidation)

type BlogService struct {
	postRepo repository.PostRepository
}

func NewBlogService(postRepo repository.PostRepository) *BlogService {
	return &BlogService{postRepo: postRepo}
}

// CreatePost stores a new post for the author and returns its opaque id.
func (s *BlogService) CreatePost(ctx context.Context, author, title, content string) (string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", ErrEmptyPost
	}

	filename, err := s.postRepo.Create(ctx, author, title, content)
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}
	return filename, nil
}

func (s *BlogService) GetPost(ctx context.Context, author, filename string) (*model.Post, error) {
	return s.postRepo.Get(ctx, author, filename)
}

// UpdatePost replaces title and content of an owned post. The published
// timestamp never changes; the edited timestamp is stamped by the store.
func (s *BlogService) UpdatePost(ctx context.Context, author, filename, title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return ErrEmptyPost
	}
	return s.postRepo.Update(ctx, author, filename, title, content)
}

func (s *BlogService) DeletePost(ctx context.Context, author, filename string) error {
	return s.postRepo.Delete(ctx, author, filename)
}

// Catalog is the full list of posts across all authors, newest first.
// Recomputed from disk on every call.
func (s *BlogService) Catalog(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	sortByPublishedDesc(posts)
	return posts, nil
}

// AuthorPosts lists one author's posts, newest first.
func (s *BlogService) AuthorPosts(ctx context.Context, author string) ([]model.Post, error) {
	posts, err := s.postRepo.ListByAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for %s: %w", author, err)
	}
	sortByPublishedDesc(posts)
	return posts, nil
}

// Search matches the query case-insensitively against title or content over
// the whole catalog. An empty query yields an empty result, not everything.
func (s *BlogService) Search(ctx context.Context, query string) ([]model.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Post{}, nil
	}

	posts, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]model.Post, 0)
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), q) ||
			strings.Contains(strings.ToLower(post.Content), q) {
			results = append(results, post)
		}
	}
	return results, nil
}

func sortByPublishedDesc(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Published.After(posts[j].Published)
	})
}
