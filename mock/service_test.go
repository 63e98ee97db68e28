package mock

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(t *testing.T, URL, csrf string, values url.Values) (*http.Response, map[string]interface{}) {
	request, err := http.NewRequest(http.MethodPost, URL, strings.NewReader(values.Encode()))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if csrf != "" {
		request.Header.Set(csrfHeader, csrf)
	}
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()
	body := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	return response, body
}

func TestService_Login(t *testing.T) {
	server, err := NewHTTPTestServer(WithAccount("a@b.com", "pw"), WithCSRFToken("csrf"))
	require.NoError(t, err)
	defer server.Close()

	var testCases = []struct {
		description string
		csrf        string
		values      url.Values
		status      int
		expectError string
	}{
		{
			description: "valid credentials",
			csrf:        "csrf",
			values:      url.Values{"email": {"a@b.com"}, "password": {"pw"}},
			status:      http.StatusOK,
		},
		{
			description: "csrf in form field",
			values:      url.Values{"email": {"a@b.com"}, "password": {"pw"}, csrfField: {"csrf"}},
			status:      http.StatusOK,
		},
		{
			description: "missing csrf",
			values:      url.Values{"email": {"a@b.com"}, "password": {"pw"}},
			status:      http.StatusForbidden,
			expectError: "CSRF verification failed",
		},
		{
			description: "missing password",
			csrf:        "csrf",
			values:      url.Values{"email": {"a@b.com"}},
			status:      http.StatusBadRequest,
			expectError: "Email and password are required",
		},
		{
			description: "wrong password",
			csrf:        "csrf",
			values:      url.Values{"email": {"a@b.com"}, "password": {"nope"}},
			status:      http.StatusUnauthorized,
			expectError: "Invalid credentials",
		},
	}

	for _, testCase := range testCases {
		response, body := postForm(t, server.LoginURL(), testCase.csrf, testCase.values)
		assert.Equal(t, testCase.status, response.StatusCode, testCase.description)
		if testCase.expectError != "" {
			assert.Equal(t, testCase.expectError, body["error"], testCase.description)
			continue
		}
		token, _ := body["access_token"].(string)
		claims, err := server.Verify(token)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, "a@b.com", claims.Subject, testCase.description)
		user, _ := body["user"].(map[string]interface{})
		assert.Equal(t, "a@b.com", user["email"], testCase.description)
	}
	assert.Equal(t, len(testCases), server.LoginCalls())
}

func TestService_LogoutRevokes(t *testing.T) {
	server, err := NewHTTPTestServer(WithAccount("a@b.com", "pw"), WithCSRFToken("csrf"))
	require.NoError(t, err)
	defer server.Close()

	_, body := postForm(t, server.LoginURL(), "csrf", url.Values{"email": {"a@b.com"}, "password": {"pw"}})
	token := body["access_token"].(string)

	request, _ := http.NewRequest(http.MethodGet, server.ResourceURL(), nil)
	request.Header.Set("Authorization", "Bearer "+token)
	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)

	logout, _ := http.NewRequest(http.MethodPost, server.LogoutURL(), nil)
	logout.Header.Set(csrfHeader, "csrf")
	logout.Header.Set("Authorization", "Bearer "+token)
	response, err = http.DefaultClient.Do(logout)
	require.NoError(t, err)
	response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, 1, server.LogoutCalls())

	_, err = server.Verify(token)
	assert.Error(t, err)
}

func TestService_ResourceUnauthorized(t *testing.T) {
	server, err := NewHTTPTestServer()
	require.NoError(t, err)
	defer server.Close()
	response, err := http.Get(server.ResourceURL())
	require.NoError(t, err)
	response.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
	assert.NotEmpty(t, response.Header.Get("WWW-Authenticate"))
}
