package cli

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/viant/docauth/session"
)

// systemClipboard writes to the operating system clipboard
type systemClipboard struct{}

func (systemClipboard) WriteText(_ context.Context, text string) error {
	if clipboard.Unsupported {
		return session.ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}
