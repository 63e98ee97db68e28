package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/viant/afs"
	"github.com/viant/docauth/internal/collection"
	"golang.org/x/oauth2"
)

var (
	// ErrUnknownScheme is returned when a scheme is not declared by the document
	ErrUnknownScheme = errors.New("unknown security scheme")
	// ErrUnknownOperation is returned when no document path matches a request
	ErrUnknownOperation = errors.New("unknown operation")
)

// Console represents a documentation console for one OpenAPI document
type Console struct {
	doc         *openapi3.T
	baseURL     string
	schemes     map[string]*openapi3.SecurityScheme
	credentials *collection.SyncMap[string, string]
	transport   http.RoundTripper
	logger      *slog.Logger
}

// Option represents console option
type Option func(c *Console)

// WithBaseURL overrides the document server URL
func WithBaseURL(URL string) Option {
	return func(c *Console) {
		c.baseURL = strings.TrimRight(URL, "/")
	}
}

// WithTransport sets base HTTP transport
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Console) {
		c.transport = transport
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// Available reports whether the console has an authorization store
func (c *Console) Available() bool {
	return c != nil && c.doc != nil
}

// PreauthorizeAPIKey stores value under a declared scheme; empty value removes it
func (c *Console) PreauthorizeAPIKey(name, value string) error {
	if _, ok := c.schemes[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownScheme, name)
	}
	if value == "" {
		c.credentials.Delete(name)
		return nil
	}
	c.credentials.Put(name, value)
	c.logger.Debug("scheme authorized", "scheme", name)
	return nil
}

// Credential returns stored value for scheme
func (c *Console) Credential(name string) (string, bool) {
	return c.credentials.Get(name)
}

// Authorized returns authorized scheme names in order
func (c *Console) Authorized() []string {
	return c.credentials.SortedKeys(func(a, b string) bool { return a < b })
}

// Schemes returns declared scheme names
func (c *Console) Schemes() []string {
	ret := make([]string, 0, len(c.schemes))
	for name := range c.schemes {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Client returns an HTTP client applying stored credentials
func (c *Console) Client(ctx context.Context) *http.Client {
	transport := c.transport
	for _, name := range c.Authorized() {
		value, ok := c.credentials.Get(name)
		if !ok {
			continue
		}
		scheme := c.schemes[name]
		if isBearer(scheme) {
			transport = &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: value, TokenType: "Bearer"}),
				Base:   transport,
			}
			continue
		}
		transport = &apiKeyTransport{scheme: scheme, value: value, base: transport}
	}
	return &http.Client{Transport: transport}
}

// Do issues a try it out request for a documented path
func (c *Console) Do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if !c.documented(method, path) {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownOperation, method, path)
	}
	request, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	return c.Client(ctx).Do(request)
}

func (c *Console) documented(method, path string) bool {
	if c.doc.Paths == nil {
		return false
	}
	if index := strings.Index(path, "?"); index != -1 {
		path = path[:index]
	}
	item := c.doc.Paths.Find(path)
	if item == nil {
		item = c.findTemplate(path)
	}
	return item != nil && item.GetOperation(strings.ToUpper(method)) != nil
}

func (c *Console) findTemplate(path string) *openapi3.PathItem {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for template, item := range c.doc.Paths.Map() {
		candidate := strings.Split(strings.Trim(template, "/"), "/")
		if len(candidate) != len(segments) {
			continue
		}
		matched := true
		for i, segment := range candidate {
			if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
				continue
			}
			if segment != segments[i] {
				matched = false
				break
			}
		}
		if matched {
			return item
		}
	}
	return nil
}

func isBearer(scheme *openapi3.SecurityScheme) bool {
	return scheme.Type == "http" && strings.EqualFold(scheme.Scheme, "bearer")
}

// New creates a console for doc
func New(doc *openapi3.T, options ...Option) *Console {
	ret := &Console{
		doc:         doc,
		schemes:     map[string]*openapi3.SecurityScheme{},
		credentials: collection.NewSyncMap[string, string](),
		transport:   http.DefaultTransport,
		logger:      slog.Default(),
	}
	if len(doc.Servers) > 0 {
		ret.baseURL = strings.TrimRight(doc.Servers[0].URL, "/")
	}
	if doc.Components != nil {
		for name, ref := range doc.Components.SecuritySchemes {
			if ref != nil && ref.Value != nil {
				ret.schemes[name] = ref.Value
			}
		}
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Parse creates a console from a JSON or YAML OpenAPI document
func Parse(data []byte, options ...Option) (*Console, error) {
	doc, err := openapi3.NewLoader().LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	return New(doc, options...), nil
}

// Load creates a console from an OpenAPI document stored at URL
func Load(ctx context.Context, URL string, options ...Option) (*Console, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download OpenAPI document %v: %w", URL, err)
	}
	return Parse(data, options...)
}
