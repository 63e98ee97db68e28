package mock

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	AllowOriginHeader      = "Access-Control-Allow-Origin"
	AllowHeadersHeader     = "Access-Control-Allow-Headers"
	AllowMethodsHeader     = "Access-Control-Allow-Methods"
	RequestMethodHeader    = "Access-Control-Request-Method"
	AllowCredentialsHeader = "Access-Control-Allow-Credentials"
	MaxAgeHeader           = "Access-Control-Max-Age"
	Separator              = ", "
)

// Cors lets a documentation page served from another origin call the mock endpoints
type Cors struct {
	AllowOrigins     []string `yaml:"allowOrigins,omitempty"`
	AllowHeaders     []string `yaml:"allowHeaders,omitempty"`
	AllowCredentials bool     `yaml:"allowCredentials,omitempty"`
	MaxAge           int      `yaml:"maxAge,omitempty"`
}

func (c *Cors) allowed(origin string) bool {
	for _, candidate := range c.AllowOrigins {
		if candidate == "*" || candidate == origin {
			return true
		}
	}
	return false
}

// Middleware sets CORS headers and answers preflight requests
func (c *Cors) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !c.allowed(origin) {
			next.ServeHTTP(w, r)
			return
		}
		header := w.Header()
		header.Set(AllowOriginHeader, origin)
		header.Add("Vary", "Origin")
		if c.AllowCredentials {
			header.Set(AllowCredentialsHeader, strconv.FormatBool(true))
		}
		if r.Method != http.MethodOptions || r.Header.Get(RequestMethodHeader) == "" {
			next.ServeHTTP(w, r)
			return
		}
		header.Set(AllowMethodsHeader, r.Header.Get(RequestMethodHeader))
		allowHeaders := c.AllowHeaders
		if len(allowHeaders) == 0 {
			allowHeaders = []string{"Content-Type", "Authorization", csrfHeader}
		}
		header.Set(AllowHeadersHeader, strings.Join(allowHeaders, Separator))
		if c.MaxAge > 0 {
			header.Set(MaxAgeHeader, strconv.Itoa(c.MaxAge))
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

// DefaultCors allows any origin with credentials
func DefaultCors() *Cors {
	return &Cors{AllowOrigins: []string{"*"}, AllowCredentials: true}
}
