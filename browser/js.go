//go:build js && wasm

package browser

import (
	"fmt"
	"syscall/js"
)

// call invokes a JS method converting a thrown exception to an error
func call(target js.Value, method string, args ...interface{}) (result js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s failed: %v", method, r)
		}
	}()
	return target.Call(method, args...), nil
}

func defined(value js.Value) bool {
	return !value.IsUndefined() && !value.IsNull()
}

func document() js.Value {
	return js.Global().Get("document")
}

func element(selector string) js.Value {
	return document().Call("querySelector", selector)
}

// await blocks until promise settles; it must not run on the JS event loop goroutine
func await(promise js.Value) (js.Value, error) {
	type outcome struct {
		value js.Value
		err   error
	}
	done := make(chan outcome, 1)
	resolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		value := js.Undefined()
		if len(args) > 0 {
			value = args[0]
		}
		done <- outcome{value: value}
		return nil
	})
	defer resolve.Release()
	reject := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		reason := "rejected"
		if len(args) > 0 && defined(args[0]) {
			reason = args[0].Call("toString").String()
		}
		done <- outcome{err: fmt.Errorf("%s", reason)}
		return nil
	})
	defer reject.Release()
	promise.Call("then", resolve).Call("catch", reject)
	result := <-done
	return result.value, result.err
}
