package mock

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	SessionCookie = "sessionid"
	csrfHeader    = "X-CSRFToken"
	csrfField     = "csrfmiddlewaretoken"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Service) validCSRF(r *http.Request) bool {
	if s.CSRFToken == "" {
		return true
	}
	if r.Header.Get(csrfHeader) == s.CSRFToken {
		return true
	}
	return r.PostFormValue(csrfField) == s.CSRFToken
}

// defaultLoginHandler handles form encoded login requests
func (s *Service) defaultLoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		return
	}
	if !s.validCSRF(r) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "CSRF verification failed", "detail": "CSRF token missing or incorrect."})
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email and password are required"})
		return
	}
	account := s.account(email)
	if account == nil || account.Password != password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		return
	}
	token, err := s.createJWT(email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
		return
	}
	user := map[string]interface{}{}
	for k, v := range account.Extra {
		user[k] = v
	}
	user["email"] = account.Email
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: uuid.New().String(), Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"user":         user,
		"message":      "Login successful",
	})
}

// defaultLogoutHandler handles logout requests, the bearer token if any is revoked
func (s *Service) defaultLogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}
	if s.CSRFToken != "" && r.Header.Get(csrfHeader) != s.CSRFToken {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "CSRF verification failed"})
		return
	}
	if token, ok := bearer(r); ok {
		s.revoke(token)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
