//go:build js && wasm

package browser

import (
	"sync"
	"syscall/js"

	"github.com/viant/docauth/schema"
	"github.com/viant/docauth/view"
)

const overlayPrefix = "auth-manual-copy-"

// Page applies presentation to the auth panel elements
type Page struct {
	mu      sync.Mutex
	onClose func(overlay *view.Overlay)
	closers map[string]js.Func
}

func display(selector string, visible bool) {
	el := element(selector)
	if !defined(el) {
		return
	}
	value := "none"
	if visible {
		value = "block"
	}
	el.Get("style").Set("display", value)
}

func setText(selector, text string) {
	if el := element(selector); defined(el) {
		el.Set("textContent", text)
	}
}

func (p *Page) Apply(state view.State) {
	if indicator := element("#auth-indicator"); defined(indicator) {
		class := "auth-indicator unauthenticated"
		if state.Authenticated {
			class = "auth-indicator authenticated"
		}
		indicator.Set("className", class)
	}
	setText("#auth-text", state.Label)
	display("#login-form", state.LoginFormVisible)
	display("#logout-btn", state.LogoutButtonVisible)
	display("#copy-token-btn", state.CopyButtonVisible)
}

func (p *Page) ShowMessage(message *schema.Message) {
	el := element("#auth-message")
	if !defined(el) {
		return
	}
	el.Set("textContent", message.Text)
	el.Set("className", "auth-message "+string(message.Severity))
	el.Get("dataset").Set("messageId", message.ID)
	el.Get("style").Set("display", "block")
}

func (p *Page) HideMessage(message *schema.Message) {
	el := element("#auth-message")
	if !defined(el) || el.Get("dataset").Get("messageId").String() != message.ID {
		return
	}
	el.Get("style").Set("display", "none")
}

func (p *Page) SetSubmitting(submitting bool, label string) {
	button := element(`#login-form button[type="submit"]`)
	if !defined(button) {
		return
	}
	button.Set("textContent", label)
	button.Set("disabled", submitting)
}

func (p *Page) ClearCredentials() {
	for _, selector := range []string{"#auth-email", "#auth-password"} {
		if el := element(selector); defined(el) {
			el.Set("value", "")
		}
	}
}

func (p *Page) SetCopyLabel(label string) {
	setText("#copy-token-btn", label)
}

func (p *Page) AttachOverlay(overlay *view.Overlay) {
	doc := document()
	modal := doc.Call("createElement", "div")
	modal.Set("id", overlayPrefix+overlay.ID)
	modal.Set("className", "auth-manual-copy")

	content := doc.Call("createElement", "div")
	content.Set("className", "auth-manual-copy-content")
	title := doc.Call("createElement", "h3")
	title.Set("textContent", overlay.Title)
	description := doc.Call("createElement", "p")
	description.Set("textContent", overlay.Description)
	field := doc.Call("createElement", "textarea")
	field.Set("readOnly", true)
	field.Set("value", overlay.Token)
	button := doc.Call("createElement", "button")
	button.Set("type", "button")
	button.Set("textContent", overlay.CloseLabel)

	closer := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if p.onClose != nil {
			go p.onClose(overlay)
		}
		return nil
	})
	p.mu.Lock()
	p.closers[overlay.ID] = closer
	p.mu.Unlock()
	button.Call("addEventListener", "click", closer)

	for _, child := range []js.Value{title, description, field, button} {
		content.Call("appendChild", child)
	}
	modal.Call("appendChild", content)
	doc.Get("body").Call("appendChild", modal)
	field.Call("select")
}

func (p *Page) DetachOverlay(overlay *view.Overlay) {
	if modal := document().Call("getElementById", overlayPrefix+overlay.ID); defined(modal) {
		modal.Call("remove")
	}
	p.mu.Lock()
	closer, ok := p.closers[overlay.ID]
	delete(p.closers, overlay.ID)
	p.mu.Unlock()
	if ok {
		closer.Release()
	}
}

// NewPage creates a page surface; onClose is called when an overlay close button is clicked
func NewPage(onClose func(overlay *view.Overlay)) *Page {
	return &Page{onClose: onClose, closers: map[string]js.Func{}}
}
