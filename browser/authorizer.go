//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"
)

// UI is the documentation UI authorize capability exposed as window.ui
type UI struct{}

func (UI) ui() js.Value {
	return js.Global().Get("ui")
}

// Available reports whether window.ui.preauthorizeApiKey exists
func (u UI) Available() bool {
	ui := u.ui()
	return defined(ui) && ui.Get("preauthorizeApiKey").Type() == js.TypeFunction
}

func (u UI) PreauthorizeAPIKey(scheme, value string) error {
	if !u.Available() {
		return fmt.Errorf("preauthorizeApiKey is not available")
	}
	_, err := call(u.ui(), "preauthorizeApiKey", scheme, value)
	return err
}
