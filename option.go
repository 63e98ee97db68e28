package docauth

import (
	"log/slog"
	"net/http"

	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/schedule"
	"github.com/viant/docauth/scheme"
	"github.com/viant/docauth/session"
	"github.com/viant/docauth/store"
	"github.com/viant/docauth/view"
)

// Option represents bridge option
type Option func(b *Bridge)

// WithBackend sets token storage backend
func WithBackend(backend store.Backend) Option {
	return func(b *Bridge) {
		b.backend = backend
	}
}

// WithAuthorizer sets documentation console authorize capability
func WithAuthorizer(authorizer scheme.Authorizer) Option {
	return func(b *Bridge) {
		b.authorizer = authorizer
	}
}

// WithClipboard sets clipboard
func WithClipboard(clipboard session.Clipboard) Option {
	return func(b *Bridge) {
		b.clipboard = clipboard
	}
}

// WithSurface sets presentation surface
func WithSurface(surface view.Surface) Option {
	return func(b *Bridge) {
		b.surface = surface
	}
}

// WithScheduler sets delay scheduler
func WithScheduler(scheduler schedule.Scheduler) Option {
	return func(b *Bridge) {
		b.scheduler = scheduler
	}
}

// WithEndpoint sets login/logout endpoint
func WithEndpoint(endpoint session.Endpoint) Option {
	return func(b *Bridge) {
		b.endpoint = endpoint
	}
}

// WithHTTPClient sets HTTP client used by the default endpoint
func WithHTTPClient(client *http.Client) Option {
	return func(b *Bridge) {
		b.httpClient = client
	}
}

// WithResolver sets localization resolver
func WithResolver(resolver *i18n.Resolver) Option {
	return func(b *Bridge) {
		b.resolver = resolver
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}
