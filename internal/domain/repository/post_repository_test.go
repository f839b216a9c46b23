package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"inkpost/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePostRepositoryCreateAndGet(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())
	ctx := context.Background()

	filename, err := repo.Create(ctx, "alice", "T", "C")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".txt"))

	post, err := repo.Get(ctx, "alice", filename)
	require.NoError(t, err)
	assert.Equal(t, "alice", post.Author)
	assert.Equal(t, "T", post.Title)
	assert.Equal(t, "C", post.Content)
	assert.Equal(t, filename, post.Filename)
	assert.False(t, post.Published.IsZero())
	assert.Nil(t, post.Edited)
}

func TestFilePostRepositoryGetNotFound(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())

	_, err := repo.Get(context.Background(), "alice", "missing.txt")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFilePostRepositoryOnDiskFormat(t *testing.T) {
	root := t.TempDir()
	repo := NewFilePostRepository(root)
	ctx := context.Background()

	content := "line one\n\nline two: with a colon"
	filename, err := repo.Create(ctx, "alice", "My Title", content)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "alice", filename))
	require.NoError(t, err)

	parts := strings.SplitN(string(data), "\n", 4)
	require.Len(t, parts, 4)
	assert.Equal(t, "My Title", parts[0])
	_, err = time.Parse("2006-01-02T15:04:05.000000", parts[1])
	assert.NoError(t, err, "published header must use the fixed-width layout")
	assert.Equal(t, "None", parts[2])
	assert.Equal(t, content, parts[3])

	post, err := repo.Get(ctx, "alice", filename)
	require.NoError(t, err)
	assert.Equal(t, content, post.Content)
}

func TestFilePostRepositoryParsesTimestampWithoutFraction(t *testing.T) {
	root := t.TempDir()
	repo := NewFilePostRepository(root)

	dir := filepath.Join(root, "alice")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	raw := "Old Post\n2021-01-02T10:00:00\nNone\nbody"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.txt"), []byte(raw), 0o644))

	post, err := repo.Get(context.Background(), "alice", "old.txt")
	require.NoError(t, err)
	assert.Equal(t, 2021, post.Published.Year())
}

func TestFilePostRepositoryUpdate(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())
	ctx := context.Background()

	filename, err := repo.Create(ctx, "alice", "T", "C")
	require.NoError(t, err)
	created, err := repo.Get(ctx, "alice", filename)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, "alice", filename, "T2", "C2"))

	updated, err := repo.Get(ctx, "alice", filename)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C2", updated.Content)
	assert.True(t, updated.Published.Equal(created.Published), "published must never change")
	require.NotNil(t, updated.Edited)
	assert.False(t, updated.Edited.Before(updated.Published))
}

func TestFilePostRepositoryUpdateNotFound(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())

	err := repo.Update(context.Background(), "alice", "missing.txt", "T", "C")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestFilePostRepositoryDelete(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())
	ctx := context.Background()

	filename, err := repo.Create(ctx, "alice", "T", "C")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "alice", filename))
	_, err = repo.Get(ctx, "alice", filename)
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "alice", filename), common.ErrNotFound)
}

func TestFilePostRepositoryListByAuthorMissingDir(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())

	posts, err := repo.ListByAuthor(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFilePostRepositoryListAll(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())
	ctx := context.Background()

	for _, p := range []struct{ author, title string }{
		{"alice", "A1"},
		{"alice", "A2"},
		{"bob", "B1"},
	} {
		_, err := repo.Create(ctx, p.author, p.title, "body")
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alice, err := repo.ListByAuthor(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, alice, 2)
}
