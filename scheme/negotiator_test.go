package scheme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	scheme string
	value  string
}

type stubUI struct {
	accepts   map[string]bool
	panics    bool
	absent    bool
	calls     []call
	succeeded []call
}

func (s *stubUI) PreauthorizeAPIKey(scheme, value string) error {
	s.calls = append(s.calls, call{scheme, value})
	if s.panics {
		panic("ui not ready")
	}
	if !s.accepts[scheme] {
		return errors.New("unknown security scheme " + scheme)
	}
	s.succeeded = append(s.succeeded, call{scheme, value})
	return nil
}

func (s *stubUI) Available() bool {
	return !s.absent
}

func TestNegotiator_Propagate(t *testing.T) {
	var testCases = []struct {
		description string
		ui          *stubUI
		options     []Option
		expect      bool
		expectCalls []string
		scheme      string
	}{
		{
			description: "first candidate",
			ui:          &stubUI{accepts: map[string]bool{"BearerAuth": true, "JWT": true}},
			expect:      true,
			expectCalls: []string{"BearerAuth"},
			scheme:      "BearerAuth",
		},
		{
			description: "only JWT accepted",
			ui:          &stubUI{accepts: map[string]bool{"JWT": true}},
			expect:      true,
			expectCalls: []string{"BearerAuth", "Bearer", "JWT"},
			scheme:      "JWT",
		},
		{
			description: "nothing accepted",
			ui:          &stubUI{accepts: map[string]bool{}},
			expect:      false,
			expectCalls: []string{"BearerAuth", "Bearer", "JWT", "CognitoJWT", "ApiKeyAuth", "TokenAuth"},
		},
		{
			description: "panicking ui",
			ui:          &stubUI{panics: true},
			expect:      false,
			expectCalls: []string{"BearerAuth", "Bearer", "JWT", "CognitoJWT", "ApiKeyAuth", "TokenAuth"},
		},
		{
			description: "capability absent",
			ui:          &stubUI{absent: true, accepts: map[string]bool{"JWT": true}},
			expect:      false,
		},
		{
			description: "custom candidates",
			ui:          &stubUI{accepts: map[string]bool{"oauth": true}},
			options:     []Option{WithCandidates("api_key", "oauth")},
			expect:      true,
			expectCalls: []string{"api_key", "oauth"},
			scheme:      "oauth",
		},
	}
	for _, testCase := range testCases {
		negotiator := New(testCase.ui, testCase.options...)
		actual := negotiator.Propagate("tok123")
		assert.Equal(t, testCase.expect, actual, testCase.description)
		var schemes []string
		for _, c := range testCase.ui.calls {
			schemes = append(schemes, c.scheme)
			assert.Equal(t, "tok123", c.value, testCase.description)
		}
		assert.Equal(t, testCase.expectCalls, schemes, testCase.description)
		assert.Equal(t, testCase.scheme, negotiator.Scheme(), testCase.description)
		if testCase.expect {
			require.Len(t, testCase.ui.succeeded, 1, testCase.description)
		}
	}
}

func TestNegotiator_NilAuthorizer(t *testing.T) {
	negotiator := New(nil)
	assert.False(t, negotiator.Propagate("tok"))
	assert.NotPanics(t, negotiator.Revoke)
}

func TestNegotiator_Revoke(t *testing.T) {
	ui := &stubUI{accepts: map[string]bool{"Bearer": true}}
	negotiator := New(ui)
	require.True(t, negotiator.Propagate("tok"))
	ui.calls = nil
	negotiator.Revoke()
	assert.Len(t, ui.calls, len(negotiator.Candidates()))
	for _, c := range ui.calls {
		assert.Equal(t, "", c.value)
	}
	assert.Equal(t, "", negotiator.Scheme())

	panicking := &stubUI{panics: true}
	assert.NotPanics(t, New(panicking).Revoke)
	assert.Len(t, panicking.calls, 6)
}

func TestAuthorizerFunc(t *testing.T) {
	var got []string
	negotiator := New(AuthorizerFunc(func(scheme, value string) error {
		got = append(got, scheme)
		return nil
	}), WithCandidates("JWT"))
	assert.True(t, negotiator.Propagate("tok"))
	assert.Equal(t, []string{"JWT"}, got)
}
