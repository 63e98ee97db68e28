//go:build js && wasm

package browser

import (
	"context"
	"syscall/js"

	"github.com/viant/docauth/config"
)

// Storage is a store.Backend over Web Storage
type Storage struct {
	storage js.Value
}

func (s *Storage) Get(_ context.Context, key string) (string, bool, error) {
	value, err := call(s.storage, "getItem", key)
	if err != nil || value.IsNull() {
		return "", false, err
	}
	return value.String(), true, nil
}

func (s *Storage) Set(_ context.Context, key, value string) error {
	_, err := call(s.storage, "setItem", key, value)
	return err
}

func (s *Storage) Delete(_ context.Context, key string) error {
	_, err := call(s.storage, "removeItem", key)
	return err
}

// NewStorage returns window.localStorage or window.sessionStorage backend for the configured class
func NewStorage(class config.StorageClass) *Storage {
	name := "localStorage"
	if class == config.SessionStorage {
		name = "sessionStorage"
	}
	return &Storage{storage: js.Global().Get(name)}
}
