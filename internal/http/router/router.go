package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"service-livraison/internal/http/handlers"
	"service-livraison/internal/http/middleware"
	"service-livraison/internal/http/middleware/ratelimit"
	"service-livraison/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// The rate limiter guards only the claim endpoint.
func New(
	logger logx.Logger,
	base *handlers.Handlers,
	livr *handlers.LivraisonHandler,
	claimLimit *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(5 * time.Second))
	r.Use(middleware.Observability(logger))

	r.Get("/ping", base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/livraison", func(r chi.Router) {
		r.Get("/pending", livr.Pending)
		r.With(claimLimit.Handler()).Post("/claim", livr.Claim)
		r.Post("/outcome", livr.Outcome)
		r.Post("/cancel", livr.Cancel)
	})

	r.NotFound(http.HandlerFunc(base.NotFound))

	return r
}
