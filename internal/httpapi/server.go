package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/netdiag/internal/domain"
	apimw "github.com/hamed0406/netdiag/internal/httpapi/middleware"
	"github.com/hamed0406/netdiag/internal/identity"
	"github.com/hamed0406/netdiag/internal/repo"
)

// DiagnosticRunner is what the API needs from the orchestrator; tests plug in
// a fake.
type DiagnosticRunner interface {
	RunDiagnostic(ctx context.Context, ownerID, target string) (*domain.DiagnosticResult, error)
}

type Server struct {
	Logger  *zap.Logger
	Results repo.ResultStore
	Diag    DiagnosticRunner
}

func NewServer(l *zap.Logger, rs repo.ResultStore, d DiagnosticRunner) *Server {
	return &Server{Logger: l, Results: rs, Diag: d}
}

func (s *Server) Router(ids identity.Provider, rpm, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireOwner(ids))
		r.Use(apimw.RateLimit(rpm, burst))

		r.Post("/api/diagnostics", s.handleRunDiagnostic)
		r.Get("/api/diagnostics", s.handleListDiagnostics)
		r.Get("/api/diagnostics/{id}", s.handleGetDiagnostic)
	})

	return r
}

type runPayload struct {
	TargetHost string `json:"target_host"`
}

func (s *Server) handleRunDiagnostic(w http.ResponseWriter, r *http.Request) {
	owner := apimw.OwnerID(r.Context())

	var p runPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}

	res, err := s.Diag.RunDiagnostic(r.Context(), owner, p.TargetHost)
	if err != nil {
		s.Logger.Warn("diagnostic_failed",
			zap.String("owner_id", owner),
			zap.String("target", p.TargetHost),
			zap.Error(err),
		)
		writeKindError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListDiagnostics(w http.ResponseWriter, r *http.Request) {
	owner := apimw.OwnerID(r.Context())
	list, err := s.Results.ListByOwner(r.Context(), owner)
	if err != nil {
		s.Logger.Error("list_error", zap.String("owner_id", owner), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDiagnostic(w http.ResponseWriter, r *http.Request) {
	owner := apimw.OwnerID(r.Context())
	id := domain.ResultID(chi.URLParam(r, "id"))

	res, found, err := s.Results.GetByID(r.Context(), owner, id)
	if err != nil {
		s.Logger.Error("get_error", zap.String("owner_id", owner), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeKindError maps the error taxonomy to HTTP statuses. Only the kind and
// its cause string go to the client; raw probe output never leaves the server.
func writeKindError(w http.ResponseWriter, err error) {
	var status int
	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		status = http.StatusBadRequest
	case domain.KindProbeTimeout:
		status = http.StatusGatewayTimeout
	case domain.KindProbeFailure:
		status = http.StatusBadGateway
	case domain.KindNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	msg := domain.KindOf(err).String()
	var de *domain.Error
	if errors.As(err, &de) {
		msg = de.Msg
	}
	writeJSON(w, status, map[string]string{
		"error": msg,
		"kind":  domain.KindOf(err).String(),
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
