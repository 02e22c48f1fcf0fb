// Package api provides the HTTP server for EcoQuest.
// It exposes the progression state, quest and quiz flows, mini-game
// scoring, and the analytics views as a JSON REST API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecoquest-app/ecoquest/internal/app/generator"
	"github.com/ecoquest-app/ecoquest/internal/app/progression"
	"github.com/ecoquest-app/ecoquest/internal/health"
)

// Server is the EcoQuest HTTP API server.
type Server struct {
	store          *progression.Store
	gen            generator.Generator
	version        string
	metricsEnabled bool
	health         *health.Checker
	corsOrigins    []string
}

// NewServer creates a new API server around the progression store and
// content generator.
func NewServer(store *progression.Store, gen generator.Generator, version string) *Server {
	return &Server{store: store, gen: gen, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth attaches the periodic health checker; /health then reports
// its per-check results.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// SetCORSOrigins restricts cross-origin requests to the given origins.
// An empty list allows any origin.
func (s *Server) SetCORSOrigins(origins []string) { s.corsOrigins = origins }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": s.version,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/reset", s.handleReset)

		r.Get("/profile", s.handleGetProfile)
		r.Patch("/profile", s.handleUpdateProfile)

		r.Route("/quests", func(r chi.Router) {
			r.Get("/", s.handleListQuests)
			r.Get("/personalized", s.handlePersonalizedQuests)
			r.Post("/generate", s.handleGenerateQuest)
			r.Post("/{id}/complete", s.handleCompleteQuest)
			r.Patch("/{id}", s.handleUpdateQuest)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Get("/", s.handleGenerateQuiz)
			r.Post("/submit", s.handleSubmitQuiz)
		})

		r.Route("/games", func(r chi.Router) {
			r.Get("/", s.handleListGames)
			r.Post("/{id}/score", s.handleGameScore)
		})

		r.Post("/streak", s.handleStreak)
		r.Get("/achievements", s.handleAchievements)
		r.Get("/tips", s.handleTips)
		r.Get("/insights", s.handleInsights)
		r.Get("/export", s.handleExport)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
		return
	}

	status := "ok"
	code := http.StatusOK
	if !s.health.IsHealthy() {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": s.health.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers. With no configured origins any
// origin is allowed; otherwise only listed origins (or "*") are echoed.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := s.allowedOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if origin != "*" {
				w.Header().Add("Vary", "Origin")
			}
		}
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) allowedOrigin(origin string) string {
	if len(s.corsOrigins) == 0 {
		return "*"
	}
	for _, allowed := range s.corsOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin && origin != "" {
			return origin
		}
	}
	return ""
}
