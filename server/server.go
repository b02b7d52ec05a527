// Package server exposes a loaded navigator over a read-only JSON HTTP API.
//
//	GET /health                → {"status":"ok","locations":N}
//	GET /locations             → {"locations":[...]}
//	GET /path?from=A&to=B      → {"path":[...],"times":[...],"total":T}
//	GET /furthest?from=A       → {"location":"X","reachable":true}
//
// Unknown locations answer 404 and missing parameters 400, both with {"error":...}.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/campusmap/navigator"
)

// Navigator is the query surface the API needs. *navigator.Navigator implements it.
type Navigator interface {
	Len() int
	Locations() []string
	Route(from, to string) (navigator.Route, error)
	MostDistant(from string) (string, error)
}

// Server routes HTTP requests to a Navigator. The Navigator must be fully
// loaded before the first request; handlers only read from it.
type Server struct {
	nav    Navigator
	log    *slog.Logger
	router *mux.Router
}

// New builds the router. A nil logger discards access logs.
func New(nav Navigator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{nav: nav, log: logger, router: mux.NewRouter()}

	s.router.Use(requestIDMiddleware)
	logging := loggingMiddleware{log: logger}
	s.router.Use(logging.Middleware)

	s.router.HandleFunc("/health", s.getHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/locations", s.getLocations).Methods(http.MethodGet)
	s.router.HandleFunc("/path", s.getPath).Methods(http.MethodGet)
	s.router.HandleFunc("/furthest", s.getFurthest).Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// HTTPServer wraps s in an *http.Server with the given address and timeouts.
func (s *Server) HTTPServer(addr string, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Handler:      s,
		Addr:         addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Locations int    `json:"locations"`
}

type locationsResponse struct {
	Locations []string `json:"locations"`
}

type pathResponse struct {
	Path  []string  `json:"path"`
	Times []float64 `json:"times"`
	Total float64   `json:"total"`
}

type furthestResponse struct {
	Location  string `json:"location"`
	Reachable bool   `json:"reachable"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Locations: s.nav.Len()})
}

func (s *Server) getLocations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, locationsResponse{Locations: s.nav.Locations()})
}

func (s *Server) getPath(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		s.writeError(w, r, http.StatusBadRequest, errors.New("from and to are required"))
		return
	}

	route, err := s.nav.Route(from, to)
	if err != nil {
		s.writeError(w, r, statusOf(err), err)
		return
	}

	resp := pathResponse{Path: route.Path, Times: route.Times, Total: route.Total}
	if resp.Path == nil {
		resp.Path = []string{}
	}
	if resp.Times == nil {
		resp.Times = []float64{}
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) getFurthest(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		s.writeError(w, r, http.StatusBadRequest, errors.New("from is required"))
		return
	}

	far, err := s.nav.MostDistant(from)
	if err != nil {
		s.writeError(w, r, statusOf(err), err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, furthestResponse{Location: far, Reachable: far != navigator.NoLocation})
}

func statusOf(err error) int {
	if errors.Is(err, navigator.ErrUnknownLocation) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "query failed",
			slog.String("request_id", RequestID(r.Context())),
			slog.Any("error", err),
		)
	}
	s.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	js, err := json.Marshal(v)
	if err != nil {
		s.log.ErrorContext(r.Context(), "encode response", slog.Any("error", err))
		http.Error(w, "could not encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}
