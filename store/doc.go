// Package store persists the bridge Session as two independent key-value
// entries: the raw access token and the JSON encoded user profile.
//
// The Store never exposes the backend to callers. Backends are pluggable; the
// package ships an afs backed implementation (file:// for durable storage,
// mem:// for storage that ends with the process) and a memory map for tests.
// The browser host supplies localStorage/sessionStorage backends.
package store
