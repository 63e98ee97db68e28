package mock

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	LoginPath    = "/auth/login/"
	LogoutPath   = "/auth/logout/"
	ResourcePath = "/resource"
)

// Account represents a registered user
type Account struct {
	Email    string
	Password string
	Extra    map[string]interface{}
}

// Service is a test server that simulates the host application's credential endpoints
type Service struct {
	Secret          []byte
	CSRFToken       string
	LoginHandler    func(w http.ResponseWriter, r *http.Request)
	LogoutHandler   func(w http.ResponseWriter, r *http.Request)
	ResourceHandler func(w http.ResponseWriter, r *http.Request)
	Cors            *Cors

	mu          sync.RWMutex
	accounts    map[string]*Account
	revoked     map[string]bool
	loginCalls  atomic.Int32
	logoutCalls atomic.Int32
}

// Option represents service option
type Option func(s *Service)

// WithAccount registers an account
func WithAccount(email, password string) Option {
	return func(s *Service) {
		s.accounts[email] = &Account{Email: email, Password: password}
	}
}

// WithCSRFToken sets expected CSRF token
func WithCSRFToken(token string) Option {
	return func(s *Service) {
		s.CSRFToken = token
	}
}

// WithSecret sets token signing secret
func WithSecret(secret []byte) Option {
	return func(s *Service) {
		s.Secret = secret
	}
}

// WithCORS enables cross origin access
func WithCORS(cors *Cors) Option {
	return func(s *Service) {
		s.Cors = cors
	}
}

// AddAccount registers an account
func (s *Service) AddAccount(account *Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Email] = account
}

func (s *Service) account(email string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accounts[email]
}

// LoginCalls returns number of login requests received
func (s *Service) LoginCalls() int {
	return int(s.loginCalls.Load())
}

// LogoutCalls returns number of logout requests received
func (s *Service) LogoutCalls() int {
	return int(s.logoutCalls.Load())
}

// Register registers HTTP handlers for all mock endpoints onto the given ServeMux.
func (s *Service) Register(mux *http.ServeMux) {
	mux.Handle("/", &Handler{Service: s})
}

// Handler returns an http.Handler for all mock endpoints
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	if s.Cors != nil {
		return s.Cors.Middleware(mux)
	}
	return mux
}

// NewService creates a mock credential service
func NewService(opts ...Option) (*Service, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %v", err)
	}
	ret := &Service{
		Secret:    secret,
		CSRFToken: uuid.New().String(),
		accounts:  map[string]*Account{},
		revoked:   map[string]bool{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}
