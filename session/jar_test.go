package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docauth/store"
)

func TestJar_Persistence(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	jar, err := NewJar(ctx, backend)
	require.NoError(t, err)

	u, _ := url.Parse("http://127.0.0.1:8080/auth/login/")
	jar.SetCookies(u, []*http.Cookie{
		{Name: "sessionid", Value: "s1", Path: "/"},
		{Name: "csrftoken", Value: "c1", Path: "/"},
		{Name: "stale", Value: "x", Path: "/", Expires: time.Now().Add(-time.Hour)},
	})
	_, ok, err := backend.Get(ctx, CookieKey)
	require.NoError(t, err)
	require.True(t, ok)

	restored, err := NewJar(ctx, backend)
	require.NoError(t, err)
	cookies := map[string]string{}
	for _, cookie := range restored.Cookies(u) {
		cookies[cookie.Name] = cookie.Value
	}
	assert.Equal(t, map[string]string{"sessionid": "s1", "csrftoken": "c1"}, cookies)

	restored.SetCookies(u, []*http.Cookie{{Name: "sessionid", Value: "", Path: "/", MaxAge: -1}})
	again, err := NewJar(ctx, backend)
	require.NoError(t, err)
	assert.Len(t, again.Cookies(u), 1)

	require.NoError(t, again.Reset(ctx))
	assert.Empty(t, again.Cookies(u))
	_, ok, _ = backend.Get(ctx, CookieKey)
	assert.False(t, ok)
}

func TestJar_MalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	require.NoError(t, backend.Set(ctx, CookieKey, "{not json"))
	jar, err := NewJar(ctx, backend)
	require.NoError(t, err)
	u, _ := url.Parse("http://localhost/")
	assert.Empty(t, jar.Cookies(u))
}

type failingBackend struct {
	store.Backend
}

func (b *failingBackend) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}

func TestJar_PersistFailure(t *testing.T) {
	ctx := context.Background()
	var output bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&output, &slog.HandlerOptions{Level: slog.LevelDebug}))
	jar, err := NewJar(ctx, &failingBackend{Backend: store.NewMemoryBackend()}, WithJarLogger(logger))
	require.NoError(t, err)

	u, _ := url.Parse("http://localhost/auth/login/")
	jar.SetCookies(u, []*http.Cookie{{Name: "sessionid", Value: "s1", Path: "/"}})
	assert.Len(t, jar.Cookies(u), 1)
	assert.Contains(t, output.String(), "failed to persist cookies")
	assert.Contains(t, output.String(), "disk full")
}
