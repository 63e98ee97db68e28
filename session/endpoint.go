package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/docauth/config"
	"github.com/viant/docauth/schema"
)

const (
	// CSRFHeader carries the cross site request forgery token
	CSRFHeader = "X-CSRFToken"
	// CSRFField carries the cross site request forgery token in login forms
	CSRFField = "csrfmiddlewaretoken"
)

// Endpoint represents the credential issuing server
type Endpoint interface {
	// Login exchanges credentials for a token. A decoded non success body is
	// returned together with *RequestError.
	Login(ctx context.Context, email, password string) (*schema.LoginResult, error)
	Logout(ctx context.Context) error
}

// Clipboard represents a text clipboard
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a function to Clipboard
type ClipboardFunc func(ctx context.Context, text string) error

func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// HTTPEndpoint calls login and logout over HTTP
type HTTPEndpoint struct {
	loginURL  string
	logoutURL string
	csrfToken string
	client    *http.Client
}

// Login posts form encoded credentials
func (e *HTTPEndpoint) Login(ctx context.Context, email, password string) (*schema.LoginResult, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)
	form.Set(CSRFField, e.csrfToken)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &RequestError{Op: "login", Err: err}
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")
	request.Header.Set(CSRFHeader, e.csrfToken)
	response, err := e.client.Do(request)
	if err != nil {
		return nil, &RequestError{Op: "login", Err: err}
	}
	defer response.Body.Close()
	result := &schema.LoginResult{}
	if err = json.NewDecoder(response.Body).Decode(result); err != nil {
		return nil, &RequestError{Op: "login", StatusCode: response.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if !isSuccess(response.StatusCode) || result.AccessToken == "" {
		return result, &RequestError{Op: "login", StatusCode: response.StatusCode, Message: result.Error}
	}
	return result, nil
}

// Logout posts an empty JSON request, the response body is ignored
func (e *HTTPEndpoint) Logout(ctx context.Context) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, e.logoutURL, nil)
	if err != nil {
		return &RequestError{Op: "logout", Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(CSRFHeader, e.csrfToken)
	response, err := e.client.Do(request)
	if err != nil {
		return &RequestError{Op: "logout", Err: err}
	}
	defer response.Body.Close()
	_, _ = io.Copy(io.Discard, response.Body)
	if !isSuccess(response.StatusCode) {
		return &RequestError{Op: "logout", StatusCode: response.StatusCode}
	}
	return nil
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

// NewHTTPEndpoint creates an endpoint for configured URLs, nil client uses http.DefaultClient
func NewHTTPEndpoint(cfg *config.Config, client *http.Client) *HTTPEndpoint {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPEndpoint{
		loginURL:  cfg.LoginURL,
		logoutURL: cfg.LogoutURL,
		csrfToken: cfg.CSRFToken,
		client:    client,
	}
}
