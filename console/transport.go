package console

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// apiKeyTransport applies an apiKey scheme credential
type apiKeyTransport struct {
	scheme *openapi3.SecurityScheme
	value  string
	base   http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	switch t.scheme.In {
	case "query":
		query := clone.URL.Query()
		query.Set(t.scheme.Name, t.value)
		clone.URL.RawQuery = query.Encode()
	case "cookie":
		clone.AddCookie(&http.Cookie{Name: t.scheme.Name, Value: t.value})
	default:
		name := t.scheme.Name
		if name == "" {
			name = "Authorization"
		}
		clone.Header.Set(name, t.value)
	}
	return t.base.RoundTrip(clone)
}
