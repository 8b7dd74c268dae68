// Package catalogtest runs an in-memory product catalog speaking the same
// HTTP API as the real one, for use in tests.
package catalogtest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
)

// Request is a request as received by the catalog
type Request struct {
	Method    string
	Path      string
	Body      []byte
	RequestID string
}

type override struct {
	status int
	body   string
}

// Server is a running fake catalog
type Server struct {
	*httptest.Server

	repo      *memoryRepository
	validate  *validator.Validate
	logger    hclog.Logger
	pascal    bool
	seed      []Record
	mutex     sync.Mutex
	requests  []Request
	overrides map[string]override
}

// Option configures a Server
type Option func(*Server)

// WithProducts seeds the catalog
func WithProducts(products ...Record) Option {
	return func(s *Server) {
		s.seed = append(s.seed, products...)
	}
}

// WithPascalCase makes the catalog name response fields ProductName,
// SerialNum and so on
func WithPascalCase() Option {
	return func(s *Server) {
		s.pascal = true
	}
}

// WithLogger sets the logger used by the catalog
func WithLogger(l hclog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts a catalog that is closed when the test ends
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		validate:  validator.New(),
		logger:    hclog.NewNullLogger(),
		overrides: make(map[string]override),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.repo = newMemoryRepository(s.seed...)

	s.Server = httptest.NewServer(handlers.RecoveryHandler()(s.router()))
	t.Cleanup(s.Close)

	return s
}

// BaseURL returns the base address clients should use
func (s *Server) BaseURL() string {
	return s.Server.URL + "/"
}

// Respond makes every request for method and path answer with status and
// body instead of reaching the catalog
func (s *Server) Respond(method, path string, status int, body string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.overrides[method+" "+path] = override{status: status, body: body}
}

// Requests returns every request received so far
func (s *Server) Requests() []Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsFor returns the requests received for method
func (s *Server) RequestsFor(method string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method {
			out = append(out, r)
		}
	}
	return out
}

// Products returns the current catalog content
func (s *Server) Products() []Record {
	return s.repo.All()
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter().UseEncodedPath()

	router.Use(s.recordingMiddleware)
	router.Use(s.overrideMiddleware)
	router.Use(contentTypeMiddleware)

	router.HandleFunc("/products/{serialNum}", s.getProduct).Methods(http.MethodGet)
	router.HandleFunc("/products/{serialNum}", s.deleteProduct).Methods(http.MethodDelete)

	postRouter := router.Methods(http.MethodPost).Subrouter()
	postRouter.HandleFunc("/products", s.addProduct)
	postRouter.Use(s.validationMiddleware)

	return router
}
