package session

import (
	"log/slog"

	"github.com/viant/docauth/schedule"
)

// Option represents machine option
type Option func(m *Machine)

// WithEndpoint sets login/logout endpoint
func WithEndpoint(endpoint Endpoint) Option {
	return func(m *Machine) {
		m.endpoint = endpoint
	}
}

// WithClipboard sets clipboard, without one every copy falls back to the manual overlay
func WithClipboard(clipboard Clipboard) Option {
	return func(m *Machine) {
		m.clipboard = clipboard
	}
}

// WithScheduler sets propagation scheduler
func WithScheduler(scheduler schedule.Scheduler) Option {
	return func(m *Machine) {
		m.scheduler = scheduler
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}
