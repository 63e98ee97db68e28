package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/viant/docauth/store"
)

// CookieKey holds endpoint cookies persisted by Jar
const CookieKey = "drf_auth_cookies"

// Jar is a cookie jar persisted to a store backend, so that server session
// and CSRF cookies survive terminal host restarts.
type Jar struct {
	mu      sync.Mutex
	inner   *cookiejar.Jar
	backend store.Backend
	index   map[string]*persistedCookie
	logger  *slog.Logger
}

// JarOption represents jar option
type JarOption func(j *Jar)

// WithJarLogger sets jar logger
func WithJarLogger(logger *slog.Logger) JarOption {
	return func(j *Jar) {
		j.logger = logger
	}
}

type persistedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"httpOnly,omitempty"`
}

func (c *persistedCookie) key() string {
	return c.Domain + "|" + c.Path + "|" + c.Name
}

func (c *persistedCookie) expired(now time.Time) bool {
	return !c.Expires.IsZero() && now.After(c.Expires)
}

func (c *persistedCookie) url() *url.URL {
	scheme := "http"
	if c.Secure {
		scheme = "https"
	}
	return &url.URL{Scheme: scheme, Host: c.Domain, Path: c.Path}
}

func (c *persistedCookie) cookie() *http.Cookie {
	return &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path, Expires: c.Expires, Secure: c.Secure, HttpOnly: c.HttpOnly}
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	host := u.Hostname()
	now := time.Now()
	for _, c := range cookies {
		entry := &persistedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   strings.TrimPrefix(c.Domain, "."),
			Path:     c.Path,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		}
		if entry.Domain == "" {
			entry.Domain = host
		}
		if entry.Path == "" {
			entry.Path = "/"
		}
		if c.MaxAge < 0 || entry.expired(now) {
			delete(j.index, entry.key())
			continue
		}
		j.index[entry.key()] = entry
	}
	if err := j.save(context.Background()); err != nil {
		j.logger.Debug("failed to persist cookies", "host", host, "error", err)
	}
}

// Reset drops every cookie
func (j *Jar) Reset(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.inner = inner
	j.index = map[string]*persistedCookie{}
	return j.backend.Delete(ctx, CookieKey)
}

func (j *Jar) save(ctx context.Context) error {
	cookies := make([]*persistedCookie, 0, len(j.index))
	for _, entry := range j.index {
		cookies = append(cookies, entry)
	}
	data, err := json.Marshal(cookies)
	if err != nil {
		return err
	}
	return j.backend.Set(ctx, CookieKey, string(data))
}

func (j *Jar) load(ctx context.Context) error {
	data, ok, err := j.backend.Get(ctx, CookieKey)
	if err != nil || !ok {
		return err
	}
	var cookies []*persistedCookie
	if err = json.Unmarshal([]byte(data), &cookies); err != nil {
		return err
	}
	now := time.Now()
	for _, entry := range cookies {
		if entry.expired(now) {
			continue
		}
		j.index[entry.key()] = entry
		j.inner.SetCookies(entry.url(), []*http.Cookie{entry.cookie()})
	}
	return nil
}

// NewJar creates a jar rehydrated from backend, an unreadable snapshot is ignored
func NewJar(ctx context.Context, backend store.Backend, options ...JarOption) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	ret := &Jar{inner: inner, backend: backend, index: map[string]*persistedCookie{}, logger: slog.Default()}
	for _, opt := range options {
		opt(ret)
	}
	if err = ret.load(ctx); err != nil {
		ret.logger.Debug("discarding persisted cookies", "error", err)
	}
	return ret, nil
}
