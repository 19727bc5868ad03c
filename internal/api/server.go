// Package api exposes the chat service over HTTP and websocket.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/shubhampawar16/synthea/internal/chat"
	"github.com/shubhampawar16/synthea/internal/config"
	"github.com/shubhampawar16/synthea/internal/types"
)

// Server serves the question-answering API.
type Server struct {
	service         *chat.Service
	logger          *slog.Logger
	httpSrv         *http.Server
	upgrader        websocket.Upgrader
	shutdownTimeout time.Duration
}

// NewServer creates a Server around the chat service.
func NewServer(service *chat.Service, cfg config.APIConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		service:         service,
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	router := mux.NewRouter()
	router.HandleFunc("/ask", s.handleAsk).Methods(http.MethodPost)
	router.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	router.HandleFunc("/samples", s.handleSamples).Methods(http.MethodGet)
	router.HandleFunc("/schema", s.handleSchema).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/ws/ask", s.handleWebsocketAsk)

	s.httpSrv = &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// ListenAndServe blocks serving requests until the context is canceled, then
// shuts down gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "address", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("api shutting down")
		timeout := s.shutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	}
}

type questionRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	RequestID string           `json:"request_id,omitempty"`
	Answer    string           `json:"answer,omitempty"`
	Cypher    string           `json:"cypher_query,omitempty"`
	Results   []map[string]any `json:"raw_results,omitempty"`
	Success   bool             `json:"success"`
	Error     string           `json:"error,omitempty"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := s.service.Ask(r.Context(), req.Question)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		RequestID: answer.RequestID,
		Answer:    answer.Answer,
		Cypher:    answer.Cypher,
		Results:   answer.Results,
		Success:   true,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.Stats(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats, "success": true})
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	patients, err := s.service.SamplePatients(r.Context(), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"patients": patients, "success": true})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"schema_info": chat.SchemaDescription(),
		"success":     true,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	graphHealth, llmHealth := s.service.Health(r.Context())

	status := "healthy"
	code := http.StatusOK
	if !graphHealth.IsHealthy() || !llmHealth.IsHealthy() {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":             status,
		"database_connected": graphHealth.IsHealthy(),
		"llm_connected":      llmHealth.IsHealthy(),
	})
}

// writeServiceError maps structured error codes onto HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var serr *types.SyntheaError
	if errors.As(err, &serr) {
		switch serr.Code {
		case chat.ErrCodeEmptyQuestion:
			status = http.StatusBadRequest
		case chat.ErrCodeCypherRejected:
			status = http.StatusUnprocessableEntity
		}
	}

	s.logger.Error("request failed", "error", err)
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, answerResponse{Success: false, Error: message})
}
