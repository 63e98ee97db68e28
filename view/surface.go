package view

import "github.com/viant/docauth/schema"

// Surface applies presentation changes to visible elements
type Surface interface {
	Apply(state State)
	ShowMessage(message *schema.Message)
	HideMessage(message *schema.Message)
	// SetSubmitting toggles the login busy state, label is the submit button text
	SetSubmitting(submitting bool, label string)
	ClearCredentials()
	SetCopyLabel(label string)
	AttachOverlay(overlay *Overlay)
	DetachOverlay(overlay *Overlay)
}

// Overlay is the manual copy fallback exposing the raw token
type Overlay struct {
	ID          string
	Title       string
	Description string
	Token       string
	CloseLabel  string
}

// NopSurface ignores every update
type NopSurface struct{}

func (NopSurface) Apply(State) {}
func (NopSurface) ShowMessage(*schema.Message) {}
func (NopSurface) HideMessage(*schema.Message) {}
func (NopSurface) SetSubmitting(bool, string) {}
func (NopSurface) ClearCredentials() {}
func (NopSurface) SetCopyLabel(string) {}
func (NopSurface) AttachOverlay(*Overlay) {}
func (NopSurface) DetachOverlay(*Overlay) {}
