package ipc

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server wraps an HTTP server with engine-specific routing.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server that binds to the given address.
func NewServer(h *Handler, listenAddr string) *Server {
	mux := http.NewServeMux()

	// Health endpoint.
	mux.HandleFunc("GET /api/v1/health", h.Health)

	// Tutoring endpoints.
	mux.HandleFunc("POST /api/v1/solve", h.Solve)
	mux.HandleFunc("GET /api/v1/resources/{subject}", h.Resources)
	mux.HandleFunc("GET /api/v1/history", h.ListHistory)

	// Calculator endpoints.
	mux.HandleFunc("POST /api/v1/calculate", h.Calculate)
	mux.HandleFunc("POST /api/v1/equation", h.SolveEquation)
	mux.HandleFunc("POST /api/v1/convert", h.Convert)
	mux.HandleFunc("POST /api/v1/tip", h.Tip)
	mux.HandleFunc("POST /api/v1/percentage", h.Percentage)
	mux.HandleFunc("GET /api/v1/mathhelp/{topic}", h.MathHelp)
	mux.HandleFunc("GET /api/v1/conversions", h.Conversions)

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: corsMiddleware(loggingMiddleware(h.Logger, mux)),
	}

	return &Server{
		httpServer: srv,
	}
}

// Start begins listening for HTTP connections. Blocks until the server stops.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// corsMiddleware adds CORS headers for local client access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware emits one structured log line per request.
func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
