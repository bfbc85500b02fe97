// Package devserver implements an in-memory flow service speaking the
// same REST contract the dashboard consumes. It backs `flowdeck serve`
// for local development and the client integration tests; it is a test
// double with an HTTP face, not a product server.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"flowdeck/internal/flow"
	"flowdeck/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Server is an in-memory flow service.
type Server struct {
	router *mux.Router
	logger *logging.Logger

	// latency is injected before every response so the dashboard's
	// progressive reveal is visible during demos.
	latency time.Duration

	mu        sync.RWMutex
	instances map[string]flow.Instance
	order     []string
}

// Option configures a Server.
type Option func(*Server)

// WithLatency makes every response wait d before answering.
func WithLatency(d time.Duration) Option {
	return func(s *Server) { s.latency = d }
}

// WithLogger sets the request logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// New creates a Server with an empty instance set.
func New(opts ...Option) *Server {
	s := &Server{
		logger:    logging.NopLogger(),
		instances: make(map[string]flow.Instance),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = mux.NewRouter()
	api := s.router.PathPrefix("/api/v1").Subrouter()
	flows := api.PathPrefix("/flows").Subrouter()
	flows.HandleFunc("", s.handleListInstances).Methods(http.MethodGet)
	flows.HandleFunc("/{name}", s.handleGetInstance).Methods(http.MethodGet)
	flows.HandleFunc("/{name}", s.handleDeleteInstance).Methods(http.MethodDelete)

	return s
}

// Handler returns the HTTP handler for the service.
func (s *Server) Handler() http.Handler { return s.router }

// Add registers an instance with the service.
func (s *Server) Add(inst flow.Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.instances[inst.Name]; !exists {
		s.order = append(s.order, inst.Name)
	}
	s.instances[inst.Name] = inst
}

// Seed populates the service with n demo instances spread across a few
// pipeline templates.
func (s *Server) Seed(n int) {
	pipelines := []string{"nightly-etl", "image-resize", "report-digest", "log-compaction"}
	for i := 0; i < n; i++ {
		pipeline := pipelines[i%len(pipelines)]
		s.Add(flow.Instance{
			Name:     fmt.Sprintf("%s-%s", pipeline, uuid.NewString()[:8]),
			Pipeline: pipeline,
		})
	}
}

// Names returns the registered instance names in registration order.
func (s *Server) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Server) handleListInstances(w http.ResponseWriter, r *http.Request) {
	s.pause()

	names := s.Names()
	s.logger.Debug("list instances", "count", len(names))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(names)
}

func (s *Server) handleGetInstance(w http.ResponseWriter, r *http.Request) {
	s.pause()

	name := mux.Vars(r)["name"]

	s.mu.RLock()
	inst, ok := s.instances[name]
	s.mu.RUnlock()

	if !ok {
		http.Error(w, fmt.Sprintf("no flow instance named %q", name), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(inst)
}

func (s *Server) handleDeleteInstance(w http.ResponseWriter, r *http.Request) {
	s.pause()

	name := mux.Vars(r)["name"]

	s.mu.Lock()
	_, ok := s.instances[name]
	if ok {
		delete(s.instances, name)
		for i, n := range s.order {
			if n == name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, fmt.Sprintf("no flow instance named %q", name), http.StatusNotFound)
		return
	}

	s.logger.Info("deleted instance", "name", name)
	w.WriteHeader(http.StatusNoContent)
}

// pause injects the configured demo latency.
func (s *Server) pause() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
