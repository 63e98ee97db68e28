package cli

import (
	"github.com/viant/docauth/config"
)

// Options represents command line options
type Options struct {
	ConfigURL string   `short:"c" long:"config" description:"bridge config URL (yaml)"`
	Email     string   `short:"e" long:"email" description:"login email"`
	Password  string   `short:"p" long:"password" description:"login password"`
	Secret    string   `long:"secret" description:"scy resource URL with login credentials"`
	SecretKey string   `long:"secret-key" description:"scy resource key, i.e. blowfish://default"`
	Port      int      `long:"port" description:"mock server port" default:"8089"`
	Origins   []string `long:"allow-origin" description:"mock server CORS allowed origin"`
	Verbose   bool     `short:"v" long:"verbose" description:"debug logging"`

	Bridge config.Config `group:"bridge"`
}

// Config returns bridge configuration: the config file when set, overridden by explicit flags
func (o *Options) Config(base *config.Config) *config.Config {
	ret := &config.Config{}
	if base != nil {
		*ret = *base
	}
	flags := &o.Bridge
	if flags.LoginURL != "" {
		ret.LoginURL = flags.LoginURL
	}
	if flags.LogoutURL != "" {
		ret.LogoutURL = flags.LogoutURL
	}
	if flags.CSRFToken != "" {
		ret.CSRFToken = flags.CSRFToken
	}
	if flags.Language != "" {
		ret.Language = flags.Language
	}
	if flags.TokenStorage != "" {
		ret.TokenStorage = flags.TokenStorage
	}
	if flags.StorageURL != "" {
		ret.StorageURL = flags.StorageURL
	}
	if flags.OpenAPIURL != "" {
		ret.OpenAPIURL = flags.OpenAPIURL
	}
	if len(flags.Schemes) > 0 {
		ret.Schemes = flags.Schemes
	}
	ret.AutoAuthorize = ret.AutoAuthorize || flags.AutoAuthorize
	ret.ShowCopyButton = true
	return ret
}
