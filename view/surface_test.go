package view

import (
	"sync"

	"github.com/viant/docauth/schema"
)

type recordingSurface struct {
	mu         sync.Mutex
	states     []State
	shown      []*schema.Message
	hidden     []*schema.Message
	submitting []bool
	labels     []string
	copyLabels []string
	cleared    int
	attached   []*Overlay
	detached   []*Overlay
}

func (s *recordingSurface) Apply(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state)
}

func (s *recordingSurface) ShowMessage(message *schema.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = append(s.shown, message)
}

func (s *recordingSurface) HideMessage(message *schema.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = append(s.hidden, message)
}

func (s *recordingSurface) SetSubmitting(submitting bool, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = append(s.submitting, submitting)
	s.labels = append(s.labels, label)
}

func (s *recordingSurface) ClearCredentials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cleared++
}

func (s *recordingSurface) SetCopyLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copyLabels = append(s.copyLabels, label)
}

func (s *recordingSurface) AttachOverlay(overlay *Overlay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = append(s.attached, overlay)
}

func (s *recordingSurface) DetachOverlay(overlay *Overlay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detached = append(s.detached, overlay)
}
