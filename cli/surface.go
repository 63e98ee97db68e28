package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/viant/docauth/schema"
	"github.com/viant/docauth/view"
)

// Terminal renders bridge presentation as text lines
type Terminal struct {
	writer io.Writer
}

func (t *Terminal) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.writer, format, args...)
}

func (t *Terminal) Apply(state view.State) {
	marker := "○"
	if state.Authenticated {
		marker = "●"
	}
	t.printf("%s %s\n", marker, state.Label)
}

func (t *Terminal) ShowMessage(message *schema.Message) {
	t.printf("[%s] %s\n", message.Severity, message.Text)
}

func (t *Terminal) HideMessage(*schema.Message) {}

func (t *Terminal) SetSubmitting(submitting bool, label string) {
	if submitting {
		t.printf("%s\n", label)
	}
}

func (t *Terminal) ClearCredentials() {}

func (t *Terminal) SetCopyLabel(string) {}

func (t *Terminal) AttachOverlay(overlay *view.Overlay) {
	line := strings.Repeat("─", utf8.RuneCountInString(overlay.Title))
	t.printf("%s\n%s\n%s\n\n%s\n\n", overlay.Title, line, overlay.Description, overlay.Token)
}

func (t *Terminal) DetachOverlay(*view.Overlay) {}

// NewTerminal creates a text surface
func NewTerminal(writer io.Writer) *Terminal {
	return &Terminal{writer: writer}
}
