package service

import (
	"context"
	"testing"
	"time"

	"inkpost/internal/common"
	"inkpost/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogService(t *testing.T) *BlogService {
	t.Helper()
	return NewBlogService(repository.NewFilePostRepository(t.TempDir()))
}

func TestCreateAndEditPost(t *testing.T) {
	s := newBlogService(t)
	ctx := context.Background()

	filename, err := s.CreatePost(ctx, "alice", "T", "C")
	require.NoError(t, err)

	created, err := s.GetPost(ctx, "alice", filename)
	require.NoError(t, err)
	assert.False(t, created.Published.IsZero())
	assert.Nil(t, created.Edited)

	require.NoError(t, s.UpdatePost(ctx, "alice", filename, "T2", "C2"))

	edited, err := s.GetPost(ctx, "alice", filename)
	require.NoError(t, err)
	assert.Equal(t, "T2", edited.Title)
	assert.True(t, edited.Published.Equal(created.Published))
	require.NotNil(t, edited.Edited)
	assert.False(t, edited.Edited.Before(created.Published))
}

func TestCreatePostValidation(t *testing.T) {
	s := newBlogService(t)
	ctx := context.Background()

	_, err := s.CreatePost(ctx, "alice", "", "C")
	assert.ErrorIs(t, err, ErrEmptyPost)

	_, err = s.CreatePost(ctx, "alice", "T", " \n\t ")
	assert.ErrorIs(t, err, common.ErrValidation)

	err = s.UpdatePost(ctx, "alice", "whatever.txt", "  ", "C")
	assert.ErrorIs(t, err, ErrEmptyPost)
}

func TestCatalogSortsNewestFirst(t *testing.T) {
	s := newBlogService(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := s.CreatePost(ctx, "alice", title, "body")
		require.NoError(t, err)
		// Published has microsecond resolution; keep the timestamps distinct.
		time.Sleep(2 * time.Millisecond)
	}
	_, err := s.CreatePost(ctx, "bob", "fourth", "body")
	require.NoError(t, err)

	posts, err := s.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 4)

	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}
	assert.Equal(t, []string{"fourth", "third", "second", "first"}, titles)
}

func TestSearch(t *testing.T) {
	s := newBlogService(t)
	ctx := context.Background()

	_, err := s.CreatePost(ctx, "alice", "Hello World", "a greeting")
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, "bob", "Second", "contains hello inside the body")
	require.NoError(t, err)

	empty, err := s.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, empty, "empty query must not return the full catalog")

	results, err := s.Search(ctx, "hello")
	require.NoError(t, err)
	assert.Len(t, results, 2, "matches title and content")

	upper, err := s.Search(ctx, "HELLO")
	require.NoError(t, err)
	assert.Equal(t, results, upper, "search is case-insensitive")

	none, err := s.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeletePost(t *testing.T) {
	s := newBlogService(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.DeletePost(ctx, "alice", "missing.txt"), common.ErrNotFound)

	filename, err := s.CreatePost(ctx, "alice", "T", "C")
	require.NoError(t, err)
	require.NoError(t, s.DeletePost(ctx, "alice", filename))

	posts, err := s.AuthorPosts(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
