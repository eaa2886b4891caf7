// Package server exposes the blend engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/f3rmion/blend/internal/blend"
)

const (
	maxBodyBytes    = 4 << 10
	shutdownTimeout = 5 * time.Second
)

// Blender produces a portmanteau for two words.
type Blender interface {
	Generate(word1, word2 string) (blend.Result, error)
}

// AnswerRequest is the body of POST /answer.
type AnswerRequest struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

// AnswerResponse is the body returned by POST /answer.
type AnswerResponse struct {
	Kind        string   `json:"kind"`
	Portmanteau string   `json:"portmanteau"`
	Message     string   `json:"message"`
	Reversed    bool     `json:"reversed"`
	Missing     []string `json:"missing,omitempty"`
	Unspellable []string `json:"unspellable,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Server serves blend requests.
type Server struct {
	blender Blender
	logger  *slog.Logger
}

// New creates a server around a shared engine.
func New(blender Blender, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{blender: blender, logger: logger}
}

// Handler returns the routed handler with request IDs and access logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /answer", s.handleAnswer)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return withRequestID(withLogging(s.logger, mux))
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req.Word1 = strings.TrimSpace(req.Word1)
	req.Word2 = strings.TrimSpace(req.Word2)
	if req.Word1 == "" || req.Word2 == "" {
		s.writeError(w, r, http.StatusBadRequest, "word1 and word2 are required")
		return
	}

	res, err := s.blender.Generate(req.Word1, req.Word2)
	if err != nil {
		s.logger.Error("blend failed",
			slog.String("request_id", RequestID(r.Context())),
			slog.String("error", err.Error()))
		s.writeError(w, r, http.StatusInternalServerError, "dictionary data is inconsistent")
		return
	}

	writeJSON(w, http.StatusOK, AnswerResponse{
		Kind:        res.Kind.String(),
		Portmanteau: res.Text,
		Message:     res.Message(),
		Reversed:    res.Reversed,
		Missing:     res.Missing,
		Unspellable: res.Unspelled,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, RequestID: RequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
