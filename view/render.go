package view

import (
	"github.com/viant/docauth/config"
	"github.com/viant/docauth/i18n"
	"github.com/viant/docauth/schema"
)

// State represents visible affordances for a session
type State struct {
	Authenticated       bool
	Label               string
	LoginFormVisible    bool
	LogoutButtonVisible bool
	CopyButtonVisible   bool
}

// Render derives affordances from session and configuration
func Render(session *schema.Session, cfg *config.Config, localize i18n.Localizer) State {
	if !session.IsValid() {
		return State{
			Label:            localize(i18n.Unauthenticated),
			LoginFormVisible: true,
		}
	}
	label := localize(i18n.Authenticated)
	if email := session.Email(); email != "" {
		label += " (" + email + ")"
	}
	return State{
		Authenticated:       true,
		Label:               label,
		LogoutButtonVisible: true,
		CopyButtonVisible:   cfg.ShowCopyButton,
	}
}
