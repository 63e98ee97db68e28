package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/docauth/config"
	"github.com/viant/docauth/schema"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	var testCases = []struct {
		description string
		backend     Backend
		session     *schema.Session
	}{
		{
			description: "memory backend",
			backend:     NewMemoryBackend(),
			session:     &schema.Session{Token: "tok123", User: &schema.User{Email: "a@b.com"}},
		},
		{
			description: "mem afs backend with opaque fields",
			backend:     NewFileBackend("mem://localhost/docauth/roundtrip"),
			session: &schema.Session{Token: "eyJhbGciOi.x.y", User: &schema.User{Email: "dev@example.com", Extra: map[string]interface{}{
				"name":   "Dev",
				"groups": []interface{}{"admin", "qa"},
			}}},
		},
		{
			description: "file afs backend",
			backend:     NewFileBackend("file://" + filepath.Join(t.TempDir(), "tokens")),
			session:     &schema.Session{Token: "t", User: &schema.User{Email: "x@y.z", Extra: map[string]interface{}{"id": float64(7)}}},
		},
	}
	for _, testCase := range testCases {
		aStore := New(testCase.backend)
		require.NoError(t, aStore.Save(ctx, testCase.session), testCase.description)
		actual := aStore.Load(ctx)
		require.NotNil(t, actual, testCase.description)
		assert.EqualValues(t, testCase.session, actual, testCase.description)
		assert.Equal(t, testCase.session.Token, aStore.Token(ctx), testCase.description)
	}
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []Backend{NewMemoryBackend(), NewFileBackend("mem://localhost/docauth/clear")} {
		aStore := New(backend)
		aStore.Clear(ctx)
		assert.Nil(t, aStore.Load(ctx))

		require.NoError(t, aStore.Save(ctx, &schema.Session{Token: "tok", User: &schema.User{Email: "a@b.com"}}))
		aStore.Clear(ctx)
		assert.Nil(t, aStore.Load(ctx))
		aStore.Clear(ctx)
		assert.Nil(t, aStore.Load(ctx))
		assert.Equal(t, "", aStore.Token(ctx))
	}
}

func TestStore_LoadPartial(t *testing.T) {
	ctx := context.Background()
	var testCases = []struct {
		description string
		entries     map[string]string
	}{
		{description: "token only", entries: map[string]string{TokenKey: "tok"}},
		{description: "user only", entries: map[string]string{UserKey: `{"email":"a@b.com"}`}},
		{description: "unparsable user", entries: map[string]string{TokenKey: "tok", UserKey: "{not json"}},
		{description: "null user", entries: map[string]string{TokenKey: "tok", UserKey: "null"}},
		{description: "array user", entries: map[string]string{TokenKey: "tok", UserKey: "[1,2]"}},
		{description: "empty token", entries: map[string]string{TokenKey: "", UserKey: `{"email":"a@b.com"}`}},
	}
	for _, testCase := range testCases {
		backend := NewMemoryBackend()
		for k, v := range testCase.entries {
			require.NoError(t, backend.Set(ctx, k, v))
		}
		assert.Nil(t, New(backend).Load(ctx), testCase.description)
	}
}

func TestStore_SaveInvalid(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	aStore := New(backend)
	assert.Error(t, aStore.Save(ctx, &schema.Session{Token: "tok"}))
	_, ok, _ := backend.Get(ctx, TokenKey)
	assert.False(t, ok)
}

func TestNewBackend(t *testing.T) {
	durable := &config.Config{TokenStorage: config.LocalStorage, StorageURL: "file:///tmp/docauth"}
	backend, ok := NewBackend(durable).(*FileBackend)
	require.True(t, ok)
	assert.Equal(t, "file:///tmp/docauth", backend.baseURL)

	durable = &config.Config{TokenStorage: config.LocalStorage}
	backend, ok = NewBackend(durable).(*FileBackend)
	require.True(t, ok)
	assert.Equal(t, DefaultStorageURL(), backend.baseURL)
	assert.True(t, strings.HasPrefix(backend.baseURL, "file://"))
	assert.True(t, strings.HasSuffix(backend.baseURL, DurableFolder))

	session := &config.Config{TokenStorage: config.SessionStorage, StorageURL: "file:///tmp/docauth"}
	first, ok := NewBackend(session).(*FileBackend)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(first.baseURL, SessionBaseURL+"/"))
	second, ok := NewBackend(session).(*FileBackend)
	require.True(t, ok)
	assert.NotEqual(t, first.baseURL, second.baseURL)
}

func TestNewBackend_SessionIsolation(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{TokenStorage: config.SessionStorage}
	first := New(NewBackend(cfg))
	second := New(NewBackend(cfg))
	require.NoError(t, first.Save(ctx, &schema.Session{Token: "tok-A", User: &schema.User{Email: "a@b.com"}}))
	assert.Nil(t, second.Load(ctx))
	assert.NotNil(t, first.Load(ctx))
	first.Clear(ctx)
}
