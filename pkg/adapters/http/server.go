package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/session"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
)

//go:embed openapi.yaml
var rawSpec []byte

// Simulator defines the read-only surface of the simulator served over HTTP.
type Simulator interface {
	Automaton() *domain.Automaton
	Transitions() []string
	CheckDeterminism(ctx context.Context) domain.DeterminismReport
	EvaluateSequence(ctx context.Context, seq domain.Sequence) domain.Result
}

// Server serves one Simulator.
type Server struct {
	sim     Simulator
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetricsHandler mounts h (e.g. promhttp.Handler()) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Listing is the response for the state, final-state, alphabet and transition listings.
type Listing struct {
	Items []string `json:"items"`
}

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Sequence string   `json:"sequence"`
	Symbols  []string `json:"symbols,omitempty"`
}

// EvaluateResponse extends the domain result with printable lines.
type EvaluateResponse struct {
	domain.Result
	Lines   []string `json:"lines"`
	Message string   `json:"message"`
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

// NewHandler creates a new HTTP handler for the simulator.
func NewHandler(sim Simulator, opts ...Option) (http.Handler, error) {
	if _, err := LoadSpec(context.Background()); err != nil {
		return nil, err
	}

	server := &Server{
		sim:    sim,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/automaton", server.GetAutomaton)
	r.Get("/states", server.GetStates)
	r.Get("/finals", server.GetFinals)
	r.Get("/alphabet", server.GetAlphabet)
	r.Get("/transitions", server.GetTransitions)
	r.Get("/determinism", server.CheckDeterminism)
	r.Get("/evaluate", server.EvaluateQuery)
	r.Post("/evaluate", server.Evaluate)
	if server.metrics != nil {
		r.Handle("/metrics", server.metrics)
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetAutomaton handles GET /automaton.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, compiler.Describe(s.sim.Automaton()))
}

// GetStates handles GET /states.
func (s *Server) GetStates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, Listing{Items: stateStrings(s.sim.Automaton().States())})
}

// GetFinals handles GET /finals.
func (s *Server) GetFinals(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, Listing{Items: stateStrings(s.sim.Automaton().FinalStates())})
}

// GetAlphabet handles GET /alphabet.
func (s *Server) GetAlphabet(w http.ResponseWriter, r *http.Request) {
	symbols := s.sim.Automaton().Alphabet()
	items := make([]string, len(symbols))
	for i, sym := range symbols {
		items[i] = string(sym)
	}
	s.writeJSON(w, Listing{Items: items})
}

// GetTransitions handles GET /transitions.
func (s *Server) GetTransitions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, Listing{Items: s.sim.Transitions()})
}

// CheckDeterminism handles GET /determinism.
func (s *Server) CheckDeterminism(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.sim.CheckDeterminism(r.Context()))
}

// EvaluateQuery handles GET /evaluate?sequence=...
func (s *Server) EvaluateQuery(w http.ResponseWriter, r *http.Request) {
	var sequence string
	if err := runtime.BindQueryParameter("form", true, true, "sequence", r.URL.Query(), &sequence); err != nil {
		http.Error(w, fmt.Sprintf("Invalid format for parameter sequence: %v", err), http.StatusBadRequest)
		s.logger.Warn("EvaluateQuery: invalid parameter", "error", err)
		return
	}
	clean, err := session.SanitizeInput(sequence)
	if err != nil {
		http.Error(w, fmt.Sprintf("Input rejected: %v", err), http.StatusBadRequest)
		s.logger.Warn("EvaluateQuery: input rejected", "error", err, "size", len(sequence))
		return
	}
	s.respondResult(w, s.sim.EvaluateSequence(r.Context(), domain.ParseSequence(clean)))
}

// Evaluate handles POST /evaluate.
func (s *Server) Evaluate(w http.ResponseWriter, r *http.Request) {
	var body EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Evaluate: invalid request body", "error", err)
		return
	}

	clean, err := session.SanitizeInput(body.Sequence)
	if err != nil {
		http.Error(w, fmt.Sprintf("Input rejected: %v", err), http.StatusBadRequest)
		s.logger.Warn("Evaluate: input rejected", "error", err, "size", len(body.Sequence))
		return
	}
	seq := domain.ParseSequence(clean)
	if len(body.Symbols) > 0 {
		symbols := make([]domain.Symbol, len(body.Symbols))
		for i, sym := range body.Symbols {
			if symbols[i], err = sanitizeSymbol(sym); err != nil {
				http.Error(w, fmt.Sprintf("Input rejected: %v", err), http.StatusBadRequest)
				return
			}
		}
		seq = domain.NewSequence(symbols...)
	}
	s.respondResult(w, s.sim.EvaluateSequence(r.Context(), seq))
}

func (s *Server) respondResult(w http.ResponseWriter, result domain.Result) {
	resp := EvaluateResponse{
		Result:  result,
		Lines:   make([]string, 0, len(result.Trace)),
		Message: result.Verdict.Message(),
	}
	for _, step := range result.Trace {
		resp.Lines = append(resp.Lines, step.String())
	}
	s.writeJSON(w, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func sanitizeSymbol(sym string) (domain.Symbol, error) {
	clean, err := session.SanitizeInput(sym)
	return domain.Symbol(clean), err
}

func stateStrings(states []domain.State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}
