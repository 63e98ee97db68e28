//go:build js && wasm

package browser

import (
	"context"
	"syscall/js"

	"github.com/viant/docauth/session"
)

// Clipboard writes with navigator.clipboard
type Clipboard struct{}

func (Clipboard) WriteText(ctx context.Context, text string) error {
	clipboard := js.Global().Get("navigator").Get("clipboard")
	if !defined(clipboard) || clipboard.Get("writeText").Type() != js.TypeFunction {
		return session.ErrClipboardUnavailable
	}
	promise, err := call(clipboard, "writeText", text)
	if err != nil {
		return err
	}
	_, err = await(promise)
	return err
}
