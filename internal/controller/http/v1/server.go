package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/doc_intelligence/internal/config"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func init() {
	// pdfcpu is used read-only for validation and must not create its config dir.
	api.DisableConfigDir()
}

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, h *DocumentsHandler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(h),
		},
	}
}

func NewRouter(h *DocumentsHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/documents", func(r chi.Router) {
		r.Get("/", h.GetDocuments)
		r.Post("/", h.UploadDocument)
		r.Get("/{name}/benefits", h.GetBenefits)
		r.Get("/{name}/test-cases", h.GetTestCases)
		r.Get("/{name}/test-cases.csv", h.GetTestCasesCSV)
		r.Get("/{name}/report.pdf", h.GetReport)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
