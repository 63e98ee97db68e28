package config

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestConfig_Init(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		storage     StorageClass
		language    string
	}{
		{description: "defaults", config: &Config{}, storage: LocalStorage, language: "en"},
		{description: "session alias", config: &Config{TokenStorage: "session", Language: "ko"}, storage: SessionStorage, language: "ko"},
		{description: "durable alias", config: &Config{TokenStorage: "durable"}, storage: LocalStorage, language: "en"},
		{description: "browser name", config: &Config{TokenStorage: "sessionStorage"}, storage: SessionStorage, language: "en"},
	}
	for _, testCase := range testCases {
		testCase.config.Init()
		assert.Equal(t, testCase.storage, testCase.config.TokenStorage, testCase.description)
		assert.Equal(t, testCase.language, testCase.config.Language, testCase.description)
		assert.Equal(t, DefaultSchemes, testCase.config.Schemes, testCase.description)
		assert.Equal(t, time.Second, testCase.config.LoginPropagationDelay, testCase.description)
		assert.Equal(t, 500*time.Millisecond, testCase.config.RestorePropagationDelay, testCase.description)
		assert.Equal(t, 5*time.Second, testCase.config.MessageTTL, testCase.description)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{LoginURL: "/auth/login"}
	cfg.Init()
	assert.ErrorIs(t, cfg.Validate(), ErrMissingEndpoint)

	cfg = &Config{LoginURL: "/auth/login", LogoutURL: "/auth/logout", TokenStorage: "cookie"}
	cfg.Init()
	assert.ErrorIs(t, cfg.Validate(), ErrStorageClass)

	cfg = &Config{LoginURL: "/auth/login", LogoutURL: "/auth/logout"}
	cfg.Init()
	assert.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsDurable())
}

func TestConfig_Candidates(t *testing.T) {
	cfg := Default()
	candidates := cfg.Candidates()
	candidates[0] = "changed"
	assert.Equal(t, "BearerAuth", cfg.Schemes[0])
}

func TestDecode(t *testing.T) {
	cfg, err := Decode([]byte(`{"loginUrl":"/api/auth/login/","logoutUrl":"/api/auth/logout/","csrfToken":"abc","language":"ja","autoAuthorize":true,"showCopyButton":true,"tokenStorage":"sessionStorage"}`))
	require.NoError(t, err)
	assert.Equal(t, "/api/auth/login/", cfg.LoginURL)
	assert.Equal(t, "abc", cfg.CSRFToken)
	assert.Equal(t, "ja", cfg.Language)
	assert.True(t, cfg.AutoAuthorize)
	assert.True(t, cfg.ShowCopyButton)
	assert.Equal(t, SessionStorage, cfg.TokenStorage)
	assert.False(t, cfg.IsDurable())

	cfg, err = Decode([]byte(`{"loginUrl":"/login/","logoutUrl":"/logout/"}`))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Language)
	assert.Equal(t, StorageClass(""), cfg.TokenStorage)
	cfg.Init()
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, LocalStorage, cfg.TokenStorage)

	_, err = Decode([]byte(`{`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/docauth/config.yaml"
	content := `loginURL: http://localhost:8080/login
logoutURL: http://localhost:8080/logout
language: ko
autoAuthorize: true
tokenStorage: session
schemes: [JWT]
loginPropagationDelay: 250ms
`
	require.NoError(t, fs.Upload(ctx, URL, os.FileMode(0644), strings.NewReader(content)))
	cfg, err := Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/login", cfg.LoginURL)
	assert.Equal(t, "ko", cfg.Language)
	assert.True(t, cfg.AutoAuthorize)
	assert.Equal(t, SessionStorage, cfg.TokenStorage)
	assert.Equal(t, []string{"JWT"}, cfg.Schemes)
	assert.Equal(t, 250*time.Millisecond, cfg.LoginPropagationDelay)
	assert.Equal(t, DefaultRestorePropagationDelay, cfg.RestorePropagationDelay)

	_, err = Load(ctx, "mem://localhost/docauth/missing.yaml")
	assert.Error(t, err)
}

