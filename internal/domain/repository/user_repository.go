package repository

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// UserRepository is the credential store: one "username:password" line per
// user, append-only. The whole file is re-read on every call.
type UserRepository interface {
	Load(ctx context.Context) (map[string]string, error)
	Append(ctx context.Context, username, passwordHash string) error
}

type fileUserRepository struct {
	path string
}

func NewFileUserRepository(path string) UserRepository {
	return &fileUserRepository{path: path}
}

// Load parses the credential file line by line, splitting on the first colon.
// Blank and malformed lines are skipped. A missing file is an empty store,
// not an error.
func (r *fileUserRepository) Load(ctx context.Context) (map[string]string, error) {
	users := make(map[string]string)

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return users, nil
		}
		return nil, fmt.Errorf("fileUserRepository.Load: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		username, passwordHash, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		users[username] = passwordHash
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fileUserRepository.Load: %w", err)
	}
	return users, nil
}

// Append writes one credential line. No uniqueness check here; callers must
// check first. Concurrent appends are not synchronized.
func (r *fileUserRepository) Append(ctx context.Context, username, passwordHash string) error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("fileUserRepository.Append: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s:%s\n", username, passwordHash); err != nil {
		f.Close()
		return fmt.Errorf("fileUserRepository.Append: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("fileUserRepository.Append: %w", err)
	}
	return nil
}
