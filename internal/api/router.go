// CloudCompass - Cloud Provider and Service Model Recommendation
// Copyright 2026 The CloudCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cloudcompass/cloudcompass

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloudcompass/cloudcompass/internal/config"
	"github.com/cloudcompass/cloudcompass/internal/middleware"
	"github.com/cloudcompass/cloudcompass/internal/recommend"
)

// NewRouter assembles the full HTTP surface. Middleware order matters:
// RealIP, when proxies are trusted, must precede rate limiting so limits
// key on the client address, and RequestID must precede anything that logs.
func NewRouter(cfg *config.Config, engine *recommend.Engine) chi.Router {
	h := NewHandler(engine)

	r := chi.NewRouter()
	if cfg.Security.TrustedProxies {
		// Honor X-Forwarded-For / X-Real-IP only when a trusted proxy sets
		// them; otherwise clients could spoof their rate-limit key.
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Prometheus)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// Health probes get a generous separate budget so orchestrator
			// checks never starve behind client traffic.
			r.Use(httprate.LimitByIP(cfg.Security.HealthRateLimit, time.Minute))
			r.Get("/health", h.Health)
			r.Get("/health/live", h.HealthLive)
			r.Get("/health/ready", h.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.Security.RateLimitRPM, time.Minute))
			if cfg.Security.RateLimitBurst > 0 {
				// Short-window cap so a client cannot spend the whole
				// per-minute budget in one burst.
				r.Use(httprate.LimitByIP(cfg.Security.RateLimitBurst, time.Second))
			}
			r.Get("/recommend", h.RecommendUsage)
			r.Post("/recommend", h.Recommend)
		})
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
