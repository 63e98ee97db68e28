package view

import (
	"sync"

	"github.com/google/uuid"
	"github.com/viant/docauth/config"
	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/schedule"
	"github.com/viant/docauth/schema"
)

// Reconciler applies session derived state, messages and overlays to a Surface.
// Surface implementations must not call back into the Reconciler synchronously.
type Reconciler struct {
	config    *config.Config
	surface   Surface
	scheduler schedule.Scheduler
	localize  i18n.Localizer

	mu       sync.Mutex
	state    State
	message  *schema.Message
	hideTask schedule.Task
	copyTask schedule.Task
	overlays []*Overlay
}

// Reconcile renders session and applies it
func (r *Reconciler) Reconcile(session *schema.Session) State {
	state := Render(session, r.config, r.localize)
	r.mu.Lock()
	r.state = state
	r.mu.Unlock()
	r.surface.Apply(state)
	return state
}

// State returns last applied state
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Notify shows a transient message hidden after the configured TTL; a newer
// message replaces the older one together with its pending hide
func (r *Reconciler) Notify(text string, severity schema.Severity) *schema.Message {
	message := &schema.Message{
		ID:        uuid.New().String(),
		Text:      text,
		Severity:  severity,
		ExpiresAt: r.scheduler.Now().Add(r.config.MessageTTL),
	}
	r.mu.Lock()
	if r.hideTask != nil {
		r.hideTask.Cancel()
	}
	r.message = message
	r.hideTask = r.scheduler.After(r.config.MessageTTL, func() { r.expire(message) })
	r.mu.Unlock()
	r.surface.ShowMessage(message)
	return message
}

// NotifyKey shows a localized transient message
func (r *Reconciler) NotifyKey(key string, severity schema.Severity) *schema.Message {
	return r.Notify(r.localize(key), severity)
}

func (r *Reconciler) expire(message *schema.Message) {
	r.mu.Lock()
	if r.message != message {
		r.mu.Unlock()
		return
	}
	r.message = nil
	r.hideTask = nil
	r.mu.Unlock()
	r.surface.HideMessage(message)
}

// Message returns visible message or nil
func (r *Reconciler) Message() *schema.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// Submitting toggles login busy state
func (r *Reconciler) Submitting(submitting bool) {
	label := r.localize(i18n.Login)
	if submitting {
		label = r.localize(i18n.LoginInProgress)
	}
	r.surface.SetSubmitting(submitting, label)
}

// ClearCredentials empties credential inputs
func (r *Reconciler) ClearCredentials() {
	r.surface.ClearCredentials()
}

// CopyFeedback temporarily relabels the copy button
func (r *Reconciler) CopyFeedback() {
	r.mu.Lock()
	if r.copyTask != nil {
		r.copyTask.Cancel()
	}
	r.copyTask = r.scheduler.After(r.config.CopyFeedbackDelay, func() {
		r.surface.SetCopyLabel(r.localize(i18n.CopyToken))
	})
	r.mu.Unlock()
	r.surface.SetCopyLabel(r.localize(i18n.Copied))
}

// ShowManualCopy attaches a new manual copy overlay for token
func (r *Reconciler) ShowManualCopy(token string) *Overlay {
	overlay := &Overlay{
		ID:          uuid.New().String(),
		Title:       r.localize(i18n.ManualCopyTitle),
		Description: r.localize(i18n.ManualCopyDesc),
		Token:       token,
		CloseLabel:  r.localize(i18n.Close),
	}
	r.mu.Lock()
	r.overlays = append(r.overlays, overlay)
	r.mu.Unlock()
	r.surface.AttachOverlay(overlay)
	return overlay
}

// Dismiss detaches overlay, returns false when it was not attached
func (r *Reconciler) Dismiss(overlay *Overlay) bool {
	r.mu.Lock()
	index := -1
	for i, candidate := range r.overlays {
		if candidate == overlay {
			index = i
			break
		}
	}
	if index == -1 {
		r.mu.Unlock()
		return false
	}
	r.overlays = append(r.overlays[:index], r.overlays[index+1:]...)
	r.mu.Unlock()
	r.surface.DetachOverlay(overlay)
	return true
}

// DismissAll detaches every attached overlay
func (r *Reconciler) DismissAll() {
	for _, overlay := range r.Overlays() {
		r.Dismiss(overlay)
	}
}

// Overlays returns attached overlays
func (r *Reconciler) Overlays() []*Overlay {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Overlay{}, r.overlays...)
}

// Localize returns display string for key
func (r *Reconciler) Localize(key string) string {
	return r.localize(key)
}

// NewReconciler creates a reconciler; nil surface discards updates
func NewReconciler(cfg *config.Config, surface Surface, scheduler schedule.Scheduler, localize i18n.Localizer) *Reconciler {
	if surface == nil {
		surface = NopSurface{}
	}
	return &Reconciler{
		config:    cfg,
		surface:   surface,
		scheduler: scheduler,
		localize:  localize,
	}
}
