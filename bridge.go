package docauth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/viant/docauth/config"
	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/schedule"
	"github.com/viant/docauth/schema"
	"github.com/viant/docauth/scheme"
	"github.com/viant/docauth/session"
	"github.com/viant/docauth/store"
	"github.com/viant/docauth/view"
)

// EventSource delivers user actions
type EventSource interface {
	OnLogin(handler func(email, password string))
	OnLogout(handler func())
	OnCopy(handler func())
}

// Bridge wires persistence, propagation, presentation and the session machine
type Bridge struct {
	config     *config.Config
	backend    store.Backend
	authorizer scheme.Authorizer
	clipboard  session.Clipboard
	surface    view.Surface
	scheduler  schedule.Scheduler
	endpoint   session.Endpoint
	httpClient *http.Client
	resolver   *i18n.Resolver
	logger     *slog.Logger

	store      *store.Store
	negotiator *scheme.Negotiator
	reconciler *view.Reconciler
	machine    *session.Machine
}

// Machine returns session machine
func (b *Bridge) Machine() *session.Machine {
	return b.machine
}

// Reconciler returns presentation reconciler
func (b *Bridge) Reconciler() *view.Reconciler {
	return b.reconciler
}

// Store returns persistence adapter
func (b *Bridge) Store() *store.Store {
	return b.store
}

// Negotiator returns scheme negotiator
func (b *Bridge) Negotiator() *scheme.Negotiator {
	return b.negotiator
}

// Config returns configuration
func (b *Bridge) Config() *config.Config {
	return b.config
}

// Start binds events and restores the persisted session
func (b *Bridge) Start(ctx context.Context, events EventSource) *schema.Session {
	if events != nil {
		events.OnLogin(func(email, password string) {
			if _, err := b.machine.Login(ctx, email, password); err != nil {
				b.logger.Debug("login event failed", "error", err)
			}
		})
		events.OnLogout(func() {
			if err := b.machine.Logout(ctx); err != nil {
				b.logger.Debug("logout event failed", "error", err)
			}
		})
		if b.config.ShowCopyButton {
			events.OnCopy(func() {
				if err := b.machine.CopyToken(ctx); err != nil {
					b.logger.Debug("copy event failed", "error", err)
				}
			})
		}
	}
	return b.machine.Restore(ctx)
}

// New creates a bridge for a copy of cfg with defaults applied
func New(cfg *config.Config, options ...Option) (*Bridge, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to create bridge: config was nil")
	}
	copied := *cfg
	copied.Schemes = cfg.Candidates()
	cfg = &copied
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	ret := &Bridge{config: cfg, logger: slog.Default()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.backend == nil {
		ret.backend = store.NewBackend(cfg)
	}
	if ret.scheduler == nil {
		ret.scheduler = schedule.NewTimer()
	}
	if ret.resolver == nil {
		ret.resolver = i18n.New()
	}
	if ret.endpoint == nil {
		ret.endpoint = session.NewHTTPEndpoint(cfg, ret.httpClient)
	}
	ret.store = store.New(ret.backend, store.WithLogger(ret.logger))
	ret.negotiator = scheme.New(ret.authorizer, scheme.WithCandidates(cfg.Candidates()...), scheme.WithLogger(ret.logger))
	ret.reconciler = view.NewReconciler(cfg, ret.surface, ret.scheduler, ret.resolver.Localizer(cfg.Language))
	ret.machine = session.New(cfg, ret.store, ret.negotiator, ret.reconciler,
		session.WithEndpoint(ret.endpoint),
		session.WithClipboard(ret.clipboard),
		session.WithScheduler(ret.scheduler),
		session.WithLogger(ret.logger))
	return ret, nil
}
