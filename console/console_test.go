package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const document = `openapi: 3.0.3
info:
  title: pets
  version: "1.0"
servers:
  - url: http://localhost:8000/api
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
  /pets/{id}:
    delete:
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      responses:
        "204":
          description: deleted
components:
  securitySchemes:
    JWT:
      type: http
      scheme: bearer
      bearerFormat: JWT
    ApiKeyAuth:
      type: apiKey
      in: header
      name: X-API-Key
`

func echoServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"method":        r.Method,
			"path":          r.URL.Path,
			"authorization": r.Header.Get("Authorization"),
			"apiKey":        r.Header.Get("X-API-Key"),
		})
	}))
}

func TestConsole_Preauthorize(t *testing.T) {
	console, err := Parse([]byte(document))
	require.NoError(t, err)
	assert.True(t, console.Available())
	assert.Equal(t, []string{"ApiKeyAuth", "JWT"}, console.Schemes())

	assert.ErrorIs(t, console.PreauthorizeAPIKey("BearerAuth", "tok"), ErrUnknownScheme)
	require.NoError(t, console.PreauthorizeAPIKey("JWT", "tok"))
	value, ok := console.Credential("JWT")
	assert.True(t, ok)
	assert.Equal(t, "tok", value)
	assert.Equal(t, []string{"JWT"}, console.Authorized())

	require.NoError(t, console.PreauthorizeAPIKey("JWT", ""))
	assert.Empty(t, console.Authorized())
}

func TestConsole_Do(t *testing.T) {
	server := echoServer()
	defer server.Close()
	console, err := Parse([]byte(document), WithBaseURL(server.URL+"/api/"))
	require.NoError(t, err)

	var testCases = []struct {
		description string
		schemes     map[string]string
		method      string
		path        string
		expectErr   error
		expect      map[string]string
	}{
		{
			description: "anonymous",
			method:      http.MethodGet,
			path:        "/pets",
			expect:      map[string]string{"method": "GET", "path": "/api/pets", "authorization": "", "apiKey": ""},
		},
		{
			description: "bearer",
			schemes:     map[string]string{"JWT": "tok"},
			method:      http.MethodGet,
			path:        "/pets",
			expect:      map[string]string{"method": "GET", "path": "/api/pets", "authorization": "Bearer tok", "apiKey": ""},
		},
		{
			description: "api key on templated path",
			schemes:     map[string]string{"ApiKeyAuth": "key"},
			method:      "delete",
			path:        "/pets/42",
			expect:      map[string]string{"method": "DELETE", "path": "/api/pets/42", "authorization": "", "apiKey": "key"},
		},
		{
			description: "undocumented method",
			method:      http.MethodPost,
			path:        "/pets",
			expectErr:   ErrUnknownOperation,
		},
	}

	for _, testCase := range testCases {
		for _, name := range console.Authorized() {
			require.NoError(t, console.PreauthorizeAPIKey(name, ""))
		}
		for name, value := range testCase.schemes {
			require.NoError(t, console.PreauthorizeAPIKey(name, value), testCase.description)
		}
		response, err := console.Do(context.Background(), testCase.method, testCase.path, nil)
		if testCase.expectErr != nil {
			assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		actual := map[string]string{}
		require.NoError(t, json.NewDecoder(response.Body).Decode(&actual))
		response.Body.Close()
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/docauth/openapi.yaml"
	require.NoError(t, fs.Upload(ctx, URL, 0o644, strings.NewReader(document)))
	console, err := Load(ctx, URL)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/api", console.baseURL)

	_, err = Load(ctx, "mem://localhost/docauth/missing.yaml")
	assert.Error(t, err)
}
