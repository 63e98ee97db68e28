package mock

import (
	"net/http"
)

// Handler routes HTTP requests to the mock endpoints.
type Handler struct {
	Service *Service
}

// ServeHTTP dispatches incoming HTTP requests based on URL path.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case LoginPath:
		h.Service.loginCalls.Add(1)
		if h.Service.LoginHandler != nil {
			h.Service.LoginHandler(w, r)
		} else {
			h.Service.defaultLoginHandler(w, r)
		}
	case LogoutPath:
		h.Service.logoutCalls.Add(1)
		if h.Service.LogoutHandler != nil {
			h.Service.LogoutHandler(w, r)
		} else {
			h.Service.defaultLogoutHandler(w, r)
		}
	case ResourcePath:
		if h.Service.ResourceHandler != nil {
			h.Service.ResourceHandler(w, r)
		} else {
			h.Service.defaultResourceHandler(w, r)
		}
	default:
		http.NotFound(w, r)
	}
}
