// Package docauth bridges a host application's login endpoints with an API
// documentation console.
//
// It logs a user in, persists the issued bearer token and user profile, and
// propagates the token into the documentation console's own authorization
// store so that "try it out" requests carry it. New wires the building blocks:
//
//   - store: persisted token and user entries
//   - scheme: best-effort token propagation by probing scheme names
//   - session: the login, logout and restore state machine
//   - view: derived affordances, messages and the manual copy overlay
//   - i18n: localized display strings
//
// Example:
//
//	bridge, _ := docauth.New(cfg, docauth.WithAuthorizer(ui), docauth.WithSurface(surface))
//	bridge.Start(ctx, events)
package docauth
