package repository

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"inkpost/internal/common"
	"inkpost/internal/domain/model"

	"github.com/google/uuid"
)

const (
	// timeLayout is fixed-width so that lexicographic order of serialized
	// timestamps matches chronological order.
	timeLayout      = "2006-01-02T15:04:05.000000"
	timeLayoutShort = "2006-01-02T15:04:05"

	// editedNone marks a post that has never been edited.
	editedNone = "None"

	postExt = ".txt"
)

// PostRepository is the post store: one file per post under the author's
// directory. Every call goes straight to disk; there is no cache and no
// locking, so concurrent writes to the same post are last-writer-wins.
type PostRepository interface {
	Create(ctx context.Context, author, title, content string) (string, error)
	Get(ctx context.Context, author, filename string) (*model.Post, error)
	Update(ctx context.Context, author, filename, title, content string) error
	Delete(ctx context.Context, author, filename string) error
	ListByAuthor(ctx context.Context, author string) ([]model.Post, error)
	ListAll(ctx context.Context) ([]model.Post, error)
}

type filePostRepository struct {
	root string
}

func NewFilePostRepository(root string) PostRepository {
	return &filePostRepository{root: root}
}

// Create writes a new post file under the author's directory, creating the
// directory if needed. The filename is a random opaque id, never reused.
func (r *filePostRepository) Create(ctx context.Context, author, title, content string) (string, error) {
	dir := filepath.Join(r.root, author)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("filePostRepository.Create: %w", err)
	}

	id := uuid.New()
	filename := hex.EncodeToString(id[:]) + postExt

	published := time.Now().UTC()
	if err := writePost(filepath.Join(dir, filename), title, published, nil, content); err != nil {
		return "", fmt.Errorf("filePostRepository.Create: %w", err)
	}
	return filename, nil
}

func (r *filePostRepository) Get(ctx context.Context, author, filename string) (*model.Post, error) {
	data, err := os.ReadFile(filepath.Join(r.root, author, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("filePostRepository.Get: %w", err)
	}
	post, err := parsePost(author, filename, data)
	if err != nil {
		return nil, fmt.Errorf("filePostRepository.Get: %w", err)
	}
	return post, nil
}

// Update rewrites the post file with a new title and content. The published
// timestamp is preserved; the edited timestamp is stamped with now.
func (r *filePostRepository) Update(ctx context.Context, author, filename, title, content string) error {
	post, err := r.Get(ctx, author, filename)
	if err != nil {
		return err
	}
	edited := time.Now().UTC()
	path := filepath.Join(r.root, author, filename)
	if err := writePost(path, title, post.Published, &edited, content); err != nil {
		return fmt.Errorf("filePostRepository.Update: %w", err)
	}
	return nil
}

func (r *filePostRepository) Delete(ctx context.Context, author, filename string) error {
	err := os.Remove(filepath.Join(r.root, author, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return common.ErrNotFound
		}
		return fmt.Errorf("filePostRepository.Delete: %w", err)
	}
	return nil
}

// ListByAuthor enumerates one author's directory. A missing directory is an
// empty list. Unparseable files are skipped. Order is unspecified.
func (r *filePostRepository) ListByAuthor(ctx context.Context, author string) ([]model.Post, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, author))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Post{}, nil
		}
		return nil, fmt.Errorf("filePostRepository.ListByAuthor: %w", err)
	}

	posts := make([]model.Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(r.root, author, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("filePostRepository.ListByAuthor: %w", err)
		}
		post, err := parsePost(author, entry.Name(), data)
		if err != nil {
			continue
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

// ListAll walks every author directory under the store root. Order is
// unspecified; the catalog sorts.
func (r *filePostRepository) ListAll(ctx context.Context) ([]model.Post, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Post{}, nil
		}
		return nil, fmt.Errorf("filePostRepository.ListAll: %w", err)
	}

	var posts []model.Post
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		authorPosts, err := r.ListByAuthor(ctx, entry.Name())
		if err != nil {
			return nil, err
		}
		posts = append(posts, authorPosts...)
	}
	return posts, nil
}

// writePost serializes the post format: three header lines then the body.
// The title must not contain a newline; that invariant is not enforced here.
func writePost(path, title string, published time.Time, edited *time.Time, content string) error {
	editedLine := editedNone
	if edited != nil {
		editedLine = edited.UTC().Format(timeLayout)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s\n%s", title, published.UTC().Format(timeLayout), editedLine, content)
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func parsePost(author, filename string, data []byte) (*model.Post, error) {
	parts := strings.SplitN(string(data), "\n", 4)
	if len(parts) < 3 {
		return nil, common.Errorf("post %s/%s: truncated header", author, filename)
	}

	published, err := parseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, common.Errorf("post %s/%s: bad published timestamp: %w", author, filename, err)
	}

	var edited *time.Time
	if marker := strings.TrimSpace(parts[2]); marker != editedNone {
		t, err := parseTimestamp(marker)
		if err != nil {
			return nil, common.Errorf("post %s/%s: bad edited timestamp: %w", author, filename, err)
		}
		edited = &t
	}

	content := ""
	if len(parts) == 4 {
		content = strings.TrimSpace(parts[3])
	}

	return &model.Post{
		Author:    author,
		Title:     strings.TrimSpace(parts[0]),
		Published: published,
		Edited:    edited,
		Content:   content,
		Filename:  filename,
	}, nil
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		// Timestamps written without a fractional part are still accepted.
		t, err = time.Parse(timeLayoutShort, value)
	}
	return t, err
}
