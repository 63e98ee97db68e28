//go:build js && wasm

package browser

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"syscall/js"

	"github.com/viant/docauth"
	"github.com/viant/docauth/config"
	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/view"
)

// ConfigGlobal names the global object holding bridge configuration
const ConfigGlobal = "docauthConfig"

// LoadConfig decodes the page configuration object, defaults are not applied
func LoadConfig() (*config.Config, error) {
	value := js.Global().Get(ConfigGlobal)
	if !defined(value) {
		return nil, fmt.Errorf("failed to load config: window.%s was not defined", ConfigGlobal)
	}
	data := js.Global().Get("JSON").Call("stringify", value).String()
	return config.Decode([]byte(data))
}

// Start creates and starts the bridge for the current page
func Start(ctx context.Context) (*docauth.Bridge, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	resolver := i18n.New()
	preferred := []string{cfg.Language}
	if navigator := js.Global().Get("navigator"); defined(navigator) && defined(navigator.Get("language")) {
		preferred = append(preferred, navigator.Get("language").String())
	}
	cfg.Language = resolver.Match(preferred...)
	cfg.Init()
	var bridge *docauth.Bridge
	page := NewPage(func(overlay *view.Overlay) {
		bridge.Reconciler().Dismiss(overlay)
	})
	bridge, err = docauth.New(cfg,
		docauth.WithBackend(NewStorage(cfg.TokenStorage)),
		docauth.WithAuthorizer(UI{}),
		docauth.WithClipboard(Clipboard{}),
		docauth.WithSurface(page),
		docauth.WithHTTPClient(http.DefaultClient),
		docauth.WithResolver(resolver),
		docauth.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, err
	}
	bridge.Start(ctx, &Events{})
	return bridge, nil
}
