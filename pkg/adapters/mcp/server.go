package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/automata"
	"github.com/aretw0/automata/internal/compiler"
	"github.com/aretw0/automata/internal/logging"
	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const descriptionURI = "automata://description"

// Simulator defines the interface required by the MCP server.
type Simulator interface {
	Automaton() *domain.Automaton
	Transitions() []string
	CheckDeterminism(ctx context.Context) domain.DeterminismReport
	EvaluateSequence(ctx context.Context, seq domain.Sequence) domain.Result
}

// EvaluateResponse is the structured output of evaluate_sequence.
type EvaluateResponse struct {
	Verdict     domain.Verdict     `json:"verdict" jsonschema_description:"accepted, rejected, invalid_symbol or non_deterministic"`
	Message     string             `json:"message" jsonschema_description:"Human readable verdict"`
	Trace       []string           `json:"trace" jsonschema_description:"Transitions applied, one delta line per step"`
	FailedAt    int                `json:"failed_at" jsonschema_description:"Index of the symbol that stopped evaluation, or -1"`
	Ambiguities []domain.Ambiguity `json:"ambiguities,omitempty" jsonschema_description:"Keys with several destinations"`
}

// Server wraps a Simulator and exposes it as an MCP Server.
type Server struct {
	sim       Simulator
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(sim Simulator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		sim:       sim,
		logger:    logger,
		mcpServer: server.NewMCPServer("automata-mcp", strings.TrimSpace(automata.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("describe_automaton",
		mcp.WithDescription("Get the loaded automaton: states, initial state, final states, alphabet and transitions."),
		mcp.WithOutputSchema[compiler.Description](),
	), mcp.NewStructuredToolHandler(s.handleDescribe))

	s.mcpServer.AddTool(mcp.NewTool("check_determinism",
		mcp.WithDescription("Report every (state, symbol) pair that has more than one destination."),
		mcp.WithOutputSchema[domain.DeterminismReport](),
	), mcp.NewStructuredToolHandler(s.handleCheckDeterminism))

	s.mcpServer.AddTool(mcp.NewTool("evaluate_sequence",
		mcp.WithDescription("Evaluate an input sequence and return the trace and verdict."),
		mcp.WithString("sequence", mcp.Required(), mcp.Description("Input symbols. Split on whitespace when present, otherwise one symbol per character.")),
		mcp.WithOutputSchema[EvaluateResponse](),
	), mcp.NewStructuredToolHandler(s.handleEvaluate))

	s.mcpServer.AddTool(mcp.NewTool("list_transitions",
		mcp.WithDescription("List the transition table, one delta line per (state, symbol) pair."),
	), s.handleListTransitions)
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (compiler.Description, error) {
	return compiler.Describe(s.sim.Automaton()), nil
}

func (s *Server) handleCheckDeterminism(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.DeterminismReport, error) {
	return s.sim.CheckDeterminism(ctx), nil
}

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	raw, ok := args["sequence"].(string)
	if !ok {
		s.logger.Warn("MCP evaluate: missing sequence")
		return EvaluateResponse{}, fmt.Errorf("sequence is required")
	}

	clean, err := session.SanitizeInput(raw)
	if err != nil {
		s.logger.Warn("MCP evaluate: input rejected", "error", err, "size", len(raw))
		return EvaluateResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	result := s.sim.EvaluateSequence(ctx, domain.ParseSequence(clean))
	resp := EvaluateResponse{
		Verdict:     result.Verdict,
		Message:     result.Verdict.Message(),
		Trace:       make([]string, 0, len(result.Trace)),
		FailedAt:    result.FailedAt,
		Ambiguities: result.Ambiguities,
	}
	for _, step := range result.Trace {
		resp.Trace = append(resp.Trace, step.String())
	}
	return resp, nil
}

func (s *Server) handleListTransitions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(strings.Join(s.sim.Transitions(), "\n")), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(descriptionURI, "Loaded Automaton",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(compiler.Describe(s.sim.Automaton()))
		if err != nil {
			return nil, fmt.Errorf("failed to encode automaton: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      descriptionURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}
