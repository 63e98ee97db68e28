package mock

import "net/http/httptest"

// HTTPTestServer runs Service on an httptest server
type HTTPTestServer struct {
	*Service
	Server *httptest.Server
	URL    string
}

// LoginURL returns login endpoint URL
func (s *HTTPTestServer) LoginURL() string {
	return s.URL + LoginPath
}

// LogoutURL returns logout endpoint URL
func (s *HTTPTestServer) LogoutURL() string {
	return s.URL + LogoutPath
}

// ResourceURL returns protected resource URL
func (s *HTTPTestServer) ResourceURL() string {
	return s.URL + ResourcePath
}

func (s *HTTPTestServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Service = nil
	s.Server = nil
}

// NewHTTPTestServer starts a mock service
func NewHTTPTestServer(opts ...Option) (*HTTPTestServer, error) {
	service, err := NewService(opts...)
	if err != nil {
		return nil, err
	}
	ret := &HTTPTestServer{Service: service}
	ret.Server = httptest.NewServer(service.Handler())
	ret.URL = ret.Server.URL
	return ret, nil
}
