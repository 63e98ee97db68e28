package schema

import (
	"encoding/json"
	"time"
)

// User is the authenticated user profile. Only the email is interpreted, all
// other fields returned by the login endpoint are kept verbatim.
type User struct {
	Email string
	Extra map[string]interface{}
}

// MarshalJSON writes email together with the opaque fields
func (u User) MarshalJSON() ([]byte, error) {
	aMap := make(map[string]interface{}, len(u.Extra)+1)
	for k, v := range u.Extra {
		aMap[k] = v
	}
	if u.Email != "" {
		aMap["email"] = u.Email
	}
	return json.Marshal(aMap)
}

// UnmarshalJSON reads a user object, a JSON null yields ErrNullUser
func (u *User) UnmarshalJSON(data []byte) error {
	var aMap map[string]interface{}
	if err := json.Unmarshal(data, &aMap); err != nil {
		return err
	}
	if aMap == nil {
		return ErrNullUser
	}
	u.Email = ""
	u.Extra = nil
	for k, v := range aMap {
		if k == "email" {
			if email, ok := v.(string); ok {
				u.Email = email
				continue
			}
		}
		if u.Extra == nil {
			u.Extra = map[string]interface{}{}
		}
		u.Extra[k] = v
	}
	return nil
}

// Session represents the authenticated identity held by the bridge
type Session struct {
	Token string
	User  *User
}

// IsValid returns true when token and user are both present
func (s *Session) IsValid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// Email returns user email or empty string
func (s *Session) Email() string {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Email
}

// LoginResult represents the login endpoint response body
type LoginResult struct {
	AccessToken string `json:"access_token,omitempty"`
	User        *User  `json:"user,omitempty"`
	Message     string `json:"message,omitempty"`
	Error       string `json:"error,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

// Session returns a session when the result carries a token
func (r *LoginResult) Session() *Session {
	if r == nil || r.AccessToken == "" {
		return nil
	}
	user := r.User
	if user == nil {
		user = &User{}
	}
	return &Session{Token: r.AccessToken, User: user}
}

// Severity represents message severity
type Severity string

const (
	SeverityOK    Severity = "success"
	SeverityError Severity = "error"
)

// Message represents a transient user facing message
type Message struct {
	ID        string
	Text      string
	Severity  Severity
	ExpiresAt time.Time
}

// IsError returns true for error messages
func (m *Message) IsError() bool {
	return m.Severity == SeverityError
}
