//go:build js && wasm

package browser

import (
	"syscall/js"
)

// Events binds panel elements to bridge handlers. Handlers run on their own
// goroutine because they block on network and clipboard promises.
type Events struct {
	funcs []js.Func
}

func (e *Events) listen(selector, event string, fn func(this js.Value, args []js.Value)) {
	el := element(selector)
	if !defined(el) {
		return
	}
	listener := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		fn(this, args)
		return nil
	})
	e.funcs = append(e.funcs, listener)
	el.Call("addEventListener", event, listener)
}

func (e *Events) OnLogin(handler func(email, password string)) {
	e.listen("#login-form", "submit", func(this js.Value, args []js.Value) {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		email := element("#auth-email").Get("value").String()
		password := element("#auth-password").Get("value").String()
		go handler(email, password)
	})
}

func (e *Events) OnLogout(handler func()) {
	e.listen("#logout-btn", "click", func(js.Value, []js.Value) {
		go handler()
	})
}

func (e *Events) OnCopy(handler func()) {
	e.listen("#copy-token-btn", "click", func(js.Value, []js.Value) {
		go handler()
	})
}

// Release releases bound listeners
func (e *Events) Release() {
	for _, fn := range e.funcs {
		fn.Release()
	}
	e.funcs = nil
}
