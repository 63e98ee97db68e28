package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// StorageClass defines token durability
type StorageClass string

const (
	// LocalStorage survives browser (or process) restart
	LocalStorage StorageClass = "localStorage"
	// SessionStorage is cleared when the tab (or process) ends
	SessionStorage StorageClass = "sessionStorage"
)

const (
	DefaultLanguage                = "en"
	DefaultLoginPropagationDelay   = time.Second
	DefaultRestorePropagationDelay = 500 * time.Millisecond
	DefaultMessageTTL              = 5 * time.Second
	DefaultCopyFeedbackDelay       = 2 * time.Second
)

// DefaultSchemes lists candidate authorization scheme names in probing order
var DefaultSchemes = []string{"BearerAuth", "Bearer", "JWT", "CognitoJWT", "ApiKeyAuth", "TokenAuth"}

var (
	// ErrMissingEndpoint is returned when login or logout URL is not configured
	ErrMissingEndpoint = errors.New("login and logout endpoints are required")
	// ErrStorageClass is returned for unsupported token storage
	ErrStorageClass = errors.New("unsupported token storage")
)

// Config represents bridge configuration, fixed for the process lifetime
type Config struct {
	LoginURL       string       `yaml:"loginURL" json:"loginUrl,omitempty" long:"login-url" description:"login endpoint URL"`
	LogoutURL      string       `yaml:"logoutURL" json:"logoutUrl,omitempty" long:"logout-url" description:"logout endpoint URL"`
	CSRFToken      string       `yaml:"csrfToken,omitempty" json:"csrfToken,omitempty" long:"csrf" description:"cross-site request forgery token"`
	Language       string       `yaml:"language,omitempty" json:"language,omitempty" short:"l" long:"lang" description:"display language"`
	AutoAuthorize  bool         `yaml:"autoAuthorize,omitempty" json:"autoAuthorize,omitempty" long:"auto-authorize" description:"propagate token to the documentation console"`
	ShowCopyButton bool         `yaml:"showCopyButton,omitempty" json:"showCopyButton,omitempty" long:"copy-button" description:"enable copy token action"`
	TokenStorage   StorageClass `yaml:"tokenStorage,omitempty" json:"tokenStorage,omitempty" short:"s" long:"storage" description:"token storage: localStorage or sessionStorage"`
	StorageURL     string       `yaml:"storageURL,omitempty" json:"storageUrl,omitempty" long:"storage-url" description:"afs storage location for durable tokens"`
	OpenAPIURL     string       `yaml:"openAPIURL,omitempty" json:"openApiUrl,omitempty" short:"o" long:"openapi" description:"OpenAPI document URL for the documentation console"`
	Schemes        []string     `yaml:"schemes,omitempty" json:"schemes,omitempty" long:"scheme" description:"candidate authorization scheme names"`

	LoginPropagationDelay   time.Duration `yaml:"loginPropagationDelay,omitempty" json:"-"`
	RestorePropagationDelay time.Duration `yaml:"restorePropagationDelay,omitempty" json:"-"`
	MessageTTL              time.Duration `yaml:"messageTTL,omitempty" json:"-"`
	CopyFeedbackDelay       time.Duration `yaml:"copyFeedbackDelay,omitempty" json:"-"`
}

// Init applies defaults
func (c *Config) Init() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.TokenStorage == "" {
		c.TokenStorage = LocalStorage
	}
	c.TokenStorage = normalizeStorage(c.TokenStorage)
	if len(c.Schemes) == 0 {
		c.Schemes = append([]string{}, DefaultSchemes...)
	}
	if c.LoginPropagationDelay == 0 {
		c.LoginPropagationDelay = DefaultLoginPropagationDelay
	}
	if c.RestorePropagationDelay == 0 {
		c.RestorePropagationDelay = DefaultRestorePropagationDelay
	}
	if c.MessageTTL == 0 {
		c.MessageTTL = DefaultMessageTTL
	}
	if c.CopyFeedbackDelay == 0 {
		c.CopyFeedbackDelay = DefaultCopyFeedbackDelay
	}
}

// Validate checks configuration
func (c *Config) Validate() error {
	if c.LoginURL == "" || c.LogoutURL == "" {
		return ErrMissingEndpoint
	}
	switch c.TokenStorage {
	case LocalStorage, SessionStorage:
	default:
		return fmt.Errorf("%w: %q", ErrStorageClass, c.TokenStorage)
	}
	return nil
}

// IsDurable returns true when tokens survive restart
func (c *Config) IsDurable() bool {
	return c.TokenStorage == LocalStorage
}

// Candidates returns a copy of the candidate scheme names
func (c *Config) Candidates() []string {
	return append([]string{}, c.Schemes...)
}

func normalizeStorage(class StorageClass) StorageClass {
	switch strings.ToLower(string(class)) {
	case "localstorage", "local", "durable":
		return LocalStorage
	case "sessionstorage", "session":
		return SessionStorage
	}
	return class
}

// Default returns configuration with defaults applied
func Default() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Decode decodes JSON configuration, i.e. the document embedded in a page.
// Defaults are not applied, so the caller can tell which fields the page left unset.
func Decode(data []byte) (*Config, error) {
	ret := &Config{}
	if err := json.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return ret, nil
}

// Load loads YAML configuration from URL
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &Config{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	ret.Init()
	return ret, nil
}
