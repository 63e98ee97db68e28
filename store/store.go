package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/viant/docauth/schema"
)

const (
	// TokenKey holds the raw access token
	TokenKey = "drf_auth_access_token"
	// UserKey holds the JSON encoded user profile
	UserKey = "drf_auth_user_info"
)

// Store is the only owner of persisted session entries
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// Option represents store option
type Option func(s *Store)

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Save writes token and user; the first failed write is returned, no rollback is attempted
func (s *Store) Save(ctx context.Context, session *schema.Session) error {
	if !session.IsValid() {
		return fmt.Errorf("failed to save session: token and user are required")
	}
	data, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err = s.backend.Set(ctx, TokenKey, session.Token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err = s.backend.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("failed to store user: %w", err)
	}
	s.logger.Debug("session stored", "token", true)
	return nil
}

// Load returns persisted session or nil; partial or malformed records yield nil
func (s *Store) Load(ctx context.Context) *schema.Session {
	token, ok := s.get(ctx, TokenKey)
	if !ok || token == "" {
		return nil
	}
	raw, ok := s.get(ctx, UserKey)
	if !ok || raw == "" {
		return nil
	}
	user := &schema.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		s.logger.Debug("discarding persisted user", "error", err)
		return nil
	}
	return &schema.Session{Token: token, User: user}
}

// Token returns persisted token
func (s *Store) Token(ctx context.Context) string {
	token, _ := s.get(ctx, TokenKey)
	return token
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.logger.Debug("failed to read entry", "key", key, "error", err)
		return "", false
	}
	return value, ok
}

// Clear removes both entries, absent entries are not an error
func (s *Store) Clear(ctx context.Context) {
	for _, key := range []string{TokenKey, UserKey} {
		if err := s.backend.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to remove entry", "key", key, "error", err)
		}
	}
}

// New creates a store
func New(backend Backend, options ...Option) *Store {
	ret := &Store{backend: backend, logger: slog.Default()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
