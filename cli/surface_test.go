package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/docauth/schema"
	"github.com/viant/docauth/view"
)

func TestTerminal(t *testing.T) {
	output := &bytes.Buffer{}
	terminal := NewTerminal(output)
	terminal.Apply(view.State{Label: "Unauthenticated", LoginFormVisible: true})
	terminal.SetSubmitting(true, "Logging in...")
	terminal.SetSubmitting(false, "Login")
	terminal.ShowMessage(&schema.Message{Text: "Login failed.", Severity: schema.SeverityError})
	terminal.AttachOverlay(&view.Overlay{Title: "수동 복사", Description: "desc", Token: "tok"})
	assert.Equal(t, "○ Unauthenticated\nLogging in...\n[error] Login failed.\n수동 복사\n─────\ndesc\n\ntok\n\n", output.String())
}
