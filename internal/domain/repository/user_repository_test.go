package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) (UserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.txt")
	return NewFileUserRepository(path), path
}

func TestFileUserRepositoryLoadMissingFile(t *testing.T) {
	repo, _ := newUserRepo(t)

	users, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFileUserRepositoryAppendAndLoad(t *testing.T) {
	repo, _ := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "alice", "hash-a"))
	require.NoError(t, repo.Append(ctx, "bob", "hash-b"))

	users, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "hash-a", "bob": "hash-b"}, users)
}

func TestFileUserRepositoryLoadSkipsMalformedLines(t *testing.T) {
	repo, path := newUserRepo(t)

	raw := "alice:hash-a\n\nnot-a-credential-line\nbob:ha:sh-b\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	users, err := repo.Load(context.Background())
	require.NoError(t, err)
	// Only the first colon splits; the rest of the line is the password.
	assert.Equal(t, map[string]string{"alice": "hash-a", "bob": "ha:sh-b"}, users)
}
