package server

import (
	"net/http"
	"strings"

	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	mux *chi.Mux
}

type config struct {
	session     SessionProvider
	frontendURL string
}

type Option func(*config)

// WithSessionProvider selects the session variant (stateless cookie or
// platform auth). Without one every session-bound route returns 401.
func WithSessionProvider(sp SessionProvider) Option {
	return func(cfg *config) {
		cfg.session = sp
	}
}

// WithFrontendURL makes the installation callback redirect the browser
// back to the frontend instead of answering with JSON.
func WithFrontendURL(frontendURL string) Option {
	return func(cfg *config) {
		cfg.frontendURL = frontendURL
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	h := &handlers{
		uc:          uc,
		session:     cfg.session,
		frontendURL: strings.TrimRight(cfg.frontendURL, "/"),
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/install", h.install)
		r.Get("/callback", h.callback)
		r.Get("/auth-status", h.authStatus)
		r.Post("/workflows", h.uploadWorkflow)
		r.Get("/workflows", h.workflowStatus)
		r.Post("/logout", h.logout)
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
