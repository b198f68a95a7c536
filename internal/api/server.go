// Package api exposes the outreach CRM over HTTP/JSON. All brand and
// campaign routes sit behind bearer-token authentication.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/crm"
	"github.com/sunglassai/outreach/internal/metrics"
	"github.com/sunglassai/outreach/internal/outreach"
	"github.com/sunglassai/outreach/internal/template"
)

// Deps wires the server's collaborators.
type Deps struct {
	Brands   *crm.BrandStore
	Attempts *crm.AttemptStore
	Users    *auth.UserStore
	Tokens   *auth.TokenIssuer
	Verifier auth.Verifier
	OIDC     auth.OIDCConfig
	Engine   *template.Engine
	Sender   outreach.Sender
	Bulk     *outreach.BulkSender
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	listenAddr string

	brands   *crm.BrandStore
	attempts *crm.AttemptStore
	users    *auth.UserStore
	tokens   *auth.TokenIssuer
	verifier auth.Verifier
	oidc     auth.OIDCConfig
	engine   *template.Engine
	sender   outreach.Sender
	bulk     *outreach.BulkSender
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer creates the API server and configures its routes.
func NewServer(listenAddr string, deps Deps) *Server {
	s := &Server{
		router:     chi.NewRouter(),
		listenAddr: listenAddr,
		brands:     deps.Brands,
		attempts:   deps.Attempts,
		users:      deps.Users,
		tokens:     deps.Tokens,
		verifier:   deps.Verifier,
		oidc:       deps.OIDC,
		engine:     deps.Engine,
		sender:     deps.Sender,
		bulk:       deps.Bulk,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Recoverer)
	if s.metrics != nil {
		s.router.Use(s.metrics.HTTPMiddleware)
	}

	// Public routes.
	s.router.Get("/health", s.handleHealth)
	s.router.Post("/signup", s.handleSignup)
	s.router.Post("/login", s.handleLogin)
	s.router.Get("/auth/oidc", s.handleOIDCEndpoint)
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	// Brand and campaign routes require a valid bearer token.
	s.router.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Get("/brands", s.handleListBrands)
		r.Post("/brands", s.handleSaveBrand)
		r.Delete("/brands/{id}", s.handleDeleteBrand)

		r.Get("/discover", s.handleDiscover)
		r.Get("/discover/export", s.handleDiscoverExport)

		r.Post("/generate-email", s.handleGenerateEmail)
		r.Post("/send-email", s.handleSendEmail)
		r.Post("/send-bulk", s.handleSendBulk)
		r.Post("/send-bulk/preview", s.handleBulkPreview)

		r.Get("/analytics", s.handleAnalytics)
		r.Get("/campaigns/{id}", s.handleGetCampaign)
	})
}

// Handler returns the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting HTTP API server", "addr", s.listenAddr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP API server")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
