package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viant/docauth/config"
	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/schedule"
	"github.com/viant/docauth/schema"
	"github.com/viant/docauth/scheme"
	"github.com/viant/docauth/store"
	"github.com/viant/docauth/view"
)

// State represents authentication state
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// Machine is the authoritative session control flow
type Machine struct {
	config     *config.Config
	store      *store.Store
	negotiator *scheme.Negotiator
	reconciler *view.Reconciler
	endpoint   Endpoint
	clipboard  Clipboard
	scheduler  schedule.Scheduler
	logger     *slog.Logger

	submitting  atomic.Bool
	mu          sync.RWMutex
	session     *schema.Session
	propagation schedule.Task
}

// State returns current state
func (m *Machine) State() State {
	if m.Session() != nil {
		return Authenticated
	}
	return Unauthenticated
}

// Session returns current session or nil
func (m *Machine) Session() *schema.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Restore loads persisted session, it never fails
func (m *Machine) Restore(ctx context.Context) *schema.Session {
	session := m.store.Load(ctx)
	m.enter(session)
	if session != nil {
		m.logger.Info("session restored", "email", session.Email())
		m.schedulePropagation(session.Token, m.config.RestorePropagationDelay)
	}
	return session
}

// Login authenticates with email and password
func (m *Machine) Login(ctx context.Context, email, password string) (*schema.Session, error) {
	if email == "" || password == "" {
		m.reconciler.NotifyKey(i18n.LoginFailed, schema.SeverityError)
		return nil, ErrValidation
	}
	if !m.submitting.CompareAndSwap(false, true) {
		return nil, ErrLoginInProgress
	}
	defer m.submitting.Store(false)
	m.reconciler.Submitting(true)
	defer m.reconciler.Submitting(false)

	result, err := m.endpoint.Login(ctx, email, password)
	if err != nil {
		m.loginFailed(result, err)
		return nil, err
	}
	session := result.Session()
	if err = m.store.Save(ctx, session); err != nil {
		m.store.Clear(ctx)
		m.logger.Error("failed to persist session", "error", err)
		m.reconciler.NotifyKey(i18n.LoginFailed, schema.SeverityError)
		return nil, err
	}
	m.enter(session)
	m.reconciler.ClearCredentials()
	if result.Message != "" {
		m.reconciler.Notify(result.Message, schema.SeverityOK)
	} else {
		m.reconciler.NotifyKey(i18n.LoginSuccess, schema.SeverityOK)
	}
	m.logger.Info("login succeeded", "email", session.Email())
	m.schedulePropagation(session.Token, m.config.LoginPropagationDelay)
	return session, nil
}

func (m *Machine) loginFailed(result *schema.LoginResult, err error) {
	m.logger.Warn("login failed", "error", err)
	var requestErr *RequestError
	switch {
	case errors.As(err, &requestErr) && requestErr.Message != "":
		m.reconciler.Notify(requestErr.Message, schema.SeverityError)
	case result != nil:
		m.reconciler.NotifyKey(i18n.LoginFailed, schema.SeverityError)
	default:
		m.reconciler.NotifyKey(i18n.NetworkError, schema.SeverityError)
	}
}

// Logout ends the session; local teardown happens whatever the endpoint returns
func (m *Machine) Logout(ctx context.Context) error {
	err := m.endpoint.Logout(ctx)
	m.cancelPropagation()
	m.store.Clear(ctx)
	m.negotiator.Revoke()
	m.enter(nil)
	if err != nil {
		m.logger.Warn("logout request failed", "error", err)
		return err
	}
	m.reconciler.NotifyKey(i18n.LogoutSuccess, schema.SeverityOK)
	return nil
}

// CopyToken writes the stored token to the clipboard, falling back to the manual copy overlay
func (m *Machine) CopyToken(ctx context.Context) error {
	token := m.store.Token(ctx)
	if token == "" {
		m.reconciler.NotifyKey(i18n.NoTokenToCopy, schema.SeverityError)
		return ErrNoToken
	}
	err := ErrClipboardUnavailable
	if m.clipboard != nil {
		err = m.clipboard.WriteText(ctx, token)
	}
	if err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		m.reconciler.NotifyKey(i18n.TokenCopyFailed, schema.SeverityError)
		m.reconciler.ShowManualCopy(token)
		return &ClipboardError{Err: err}
	}
	m.reconciler.NotifyKey(i18n.TokenCopied, schema.SeverityOK)
	m.reconciler.CopyFeedback()
	return nil
}

func (m *Machine) enter(session *schema.Session) {
	if !session.IsValid() {
		session = nil
	}
	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
	m.reconciler.Reconcile(session)
}

func (m *Machine) schedulePropagation(token string, delay time.Duration) {
	if !m.config.AutoAuthorize {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.propagation != nil {
		m.propagation.Cancel()
	}
	m.propagation = m.scheduler.After(delay, func() {
		if m.negotiator.Propagate(token) {
			m.logger.Info("token propagated", "scheme", m.negotiator.Scheme())
			return
		}
		m.logger.Info("token propagation unavailable, use copy token")
	})
}

func (m *Machine) cancelPropagation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.propagation != nil {
		m.propagation.Cancel()
		m.propagation = nil
	}
}

// New creates a machine in the Unauthenticated state
func New(cfg *config.Config, persistence *store.Store, negotiator *scheme.Negotiator, reconciler *view.Reconciler, options ...Option) *Machine {
	ret := &Machine{
		config:     cfg,
		store:      persistence,
		negotiator: negotiator,
		reconciler: reconciler,
		logger:     slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.endpoint == nil {
		ret.endpoint = NewHTTPEndpoint(cfg, nil)
	}
	if ret.scheduler == nil {
		ret.scheduler = schedule.NewTimer()
	}
	return ret
}
