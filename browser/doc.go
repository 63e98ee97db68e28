//go:build js && wasm

// Package browser hosts the bridge inside the documentation page when
// compiled to WebAssembly.
//
// Storage is window.localStorage or window.sessionStorage, propagation goes
// to window.ui.preauthorizeApiKey, copying uses navigator.clipboard and the
// panel elements (#auth-indicator, #login-form, #logout-btn, ...) form the
// presentation surface. Configuration is read from the global
// docauthConfig object.
package browser
