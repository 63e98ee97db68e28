package scheme

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/docauth/config"
)

// Authorizer represents the documentation UI pre-authorize capability
type Authorizer interface {
	PreauthorizeAPIKey(scheme, value string) error
}

// Availability reports whether the authorize capability currently exists
type Availability interface {
	Available() bool
}

// AuthorizerFunc adapts a function to Authorizer
type AuthorizerFunc func(scheme, value string) error

func (f AuthorizerFunc) PreauthorizeAPIKey(scheme, value string) error {
	return f(scheme, value)
}

// Negotiator propagates tokens to the documentation UI
type Negotiator struct {
	authorizer Authorizer
	candidates []string
	logger     *slog.Logger
	mu         sync.Mutex
	scheme     string
}

// Option represents negotiator option
type Option func(n *Negotiator)

// WithCandidates overrides candidate scheme names
func WithCandidates(candidates ...string) Option {
	return func(n *Negotiator) {
		if len(candidates) > 0 {
			n.candidates = append([]string{}, candidates...)
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(n *Negotiator) {
		n.logger = logger
	}
}

// Propagate installs token under the first accepted scheme name
func (n *Negotiator) Propagate(token string) bool {
	if !n.available() {
		n.logger.Info("documentation UI authorization unavailable, token kept for manual copy")
		return false
	}
	for _, candidate := range n.candidates {
		if err := n.attempt(candidate, token); err != nil {
			n.logger.Debug("scheme rejected", "scheme", candidate, "error", err)
			continue
		}
		n.mu.Lock()
		n.scheme = candidate
		n.mu.Unlock()
		n.logger.Info("documentation UI authorized", "scheme", candidate)
		return true
	}
	n.logger.Info("no compatible authorization scheme, token kept for manual copy")
	return false
}

// Revoke clears credential for every candidate, ignoring failures
func (n *Negotiator) Revoke() {
	n.mu.Lock()
	n.scheme = ""
	n.mu.Unlock()
	if !n.available() {
		return
	}
	for _, candidate := range n.candidates {
		_ = n.attempt(candidate, "")
	}
}

// Scheme returns the scheme name accepted by the last successful propagation
func (n *Negotiator) Scheme() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scheme
}

// Candidates returns probing order
func (n *Negotiator) Candidates() []string {
	return append([]string{}, n.candidates...)
}

func (n *Negotiator) available() bool {
	if n.authorizer == nil {
		return false
	}
	if availability, ok := n.authorizer.(Availability); ok {
		return availability.Available()
	}
	return true
}

func (n *Negotiator) attempt(scheme, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("authorize %v panicked: %v", scheme, r)
		}
	}()
	return n.authorizer.PreauthorizeAPIKey(scheme, value)
}

// New creates a negotiator; a nil authorizer makes every propagation a no-op
func New(authorizer Authorizer, options ...Option) *Negotiator {
	ret := &Negotiator{
		authorizer: authorizer,
		candidates: append([]string{}, config.DefaultSchemes...),
		logger:     slog.Default(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
