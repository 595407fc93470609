package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/unified-ats/internal/domain/recruiting"
	"github.com/honeycarbs/unified-ats/pkg/logging"
)

const requestIDHeader = "X-Request-ID"

// Handler serves the unified REST API
type Handler struct {
	svc    recruiting.Service
	logger *logging.Logger
	mux    *http.ServeMux
}

// NewHandler builds the REST handler over a recruiting service
func NewHandler(svc recruiting.Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	h := &Handler{
		svc:    svc,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	h.routes()
	return h
}

func (h *Handler) routes() {
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	h.mux.HandleFunc("GET /jobs", h.handleListJobs)
	h.mux.HandleFunc("POST /jobs", h.handleCreateJob)
	h.mux.HandleFunc("GET /applications", h.handleListApplications)
	h.mux.HandleFunc("POST /candidates", h.handleCreateCandidate)
}

// ServeHTTP applies request ids, CORS headers and preflight handling
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, id)
	writeCORSHeaders(w)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	if r.Method == http.MethodOptions {
		rec.WriteHeader(http.StatusNoContent)
	} else {
		h.mux.ServeHTTP(rec, r)
	}

	h.logger.Debug("request served",
		"request_id", id,
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"elapsed", time.Since(start),
	)
}

func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
