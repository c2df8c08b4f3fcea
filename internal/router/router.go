package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/arbazmubasher1/TicketDashboard/internal/auth"
	"github.com/arbazmubasher1/TicketDashboard/internal/config"
	"github.com/arbazmubasher1/TicketDashboard/internal/handlers"
	"github.com/arbazmubasher1/TicketDashboard/internal/middleware"
	"github.com/arbazmubasher1/TicketDashboard/internal/service"
)

func New(log zerolog.Logger, table *auth.Table, svc *service.TicketService, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	ah := handlers.NewAuthHTTP(table)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", ah.Login(cfg.SessionSecret))
		r.Post("/logout", ah.Logout())
		r.With(middleware.RequireAuth).Get("/me", ah.Me())
	})

	th := handlers.NewTicketHTTP(svc)
	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", th.List())
		r.Post("/", th.Create())
		r.Route("/{rowId}", func(r chi.Router) {
			r.Put("/", th.Update())
			r.Delete("/", th.Delete())
		})
	})

	rh := handlers.NewReportsHTTP(svc)
	r.Route("/api/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/summary", rh.Summary())
		r.Get("/deadlines", rh.Deadlines())
	})

	return r
}
