package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/docauth/config"
)

// Backend represents a string key-value storage
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const (
	// SessionBaseURL is the parent location of session scoped entries
	SessionBaseURL = "mem://localhost/docauth"
	// DurableFolder holds durable entries under the user home
	DurableFolder = ".docauth"
	filePerm       = os.FileMode(0o600)
)

// FileBackend stores each entry as an afs asset under baseURL
type FileBackend struct {
	baseURL string
	fs      afs.Service
}

func (b *FileBackend) assetURL(key string) string {
	return url.Join(b.baseURL, key)
}

func (b *FileBackend) Get(ctx context.Context, key string) (string, bool, error) {
	URL := b.assetURL(key)
	ok, err := b.fs.Exists(ctx, URL)
	if err != nil || !ok {
		return "", false, err
	}
	data, err := b.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (b *FileBackend) Set(ctx context.Context, key, value string) error {
	return b.fs.Upload(ctx, b.assetURL(key), filePerm, strings.NewReader(value))
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	URL := b.assetURL(key)
	ok, err := b.fs.Exists(ctx, URL)
	if err != nil || !ok {
		return err
	}
	return b.fs.Delete(ctx, URL)
}

// NewFileBackend creates an afs backend rooted at baseURL
func NewFileBackend(baseURL string) *FileBackend {
	return &FileBackend{baseURL: baseURL, fs: afs.New()}
}

// DefaultStorageURL returns durable entries location under the user home
func DefaultStorageURL() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return "file://" + filepath.Join(home, DurableFolder)
}

// NewBackend creates an afs backend for the configured storage class: durable
// entries go to cfg.StorageURL (DefaultStorageURL when unset), session entries
// to a process memory location owned by the returned backend.
func NewBackend(cfg *config.Config) Backend {
	if cfg.IsDurable() {
		baseURL := cfg.StorageURL
		if baseURL == "" {
			baseURL = DefaultStorageURL()
		}
		return NewFileBackend(baseURL)
	}
	return NewFileBackend(url.Join(SessionBaseURL, uuid.New().String()))
}
