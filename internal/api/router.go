// Package api exposes the gateway over HTTP with JSON bodies. Callers
// are assumed to be authenticated upstream of this service; uploads and
// account management live in their own services.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"lexigate/internal/config"
	"lexigate/internal/crypto"
	"lexigate/internal/database"
	"lexigate/internal/gateway"
	"lexigate/internal/llm"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Server struct {
	db             *database.DB
	cfg            *config.Config
	gw             *gateway.Gateway
	client         llm.Client
	catalog        []llm.Model
	llmRateLimiter *rate.Limiter
}

func NewServer(db *database.DB, cfg *config.Config, gw *gateway.Gateway, client llm.Client, catalog []llm.Model) *Server {
	return &Server{
		db:             db,
		cfg:            cfg,
		gw:             gw,
		client:         client,
		catalog:        catalog,
		llmRateLimiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.BaseURL},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.healthCheck)
		r.Get("/status", s.getStatus)
		r.Get("/models", s.listModels)

		// LLM operations
		r.With(s.rateLimitLLM).Post("/test-connection", s.testConnection)
		r.With(s.rateLimitLLM).Post("/translate", s.translate)
		r.With(s.rateLimitLLM).Post("/define", s.define)

		// Lookup history
		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.getHistory)
			r.Delete("/{id}", s.deleteLookup)
		})
	})

	return r
}

// --- Middleware ---

func (s *Server) rateLimitLLM(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.llmRateLimiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded - please wait before making another request")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- Health & Status ---

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	lookupCount, _ := s.db.GetLookupCount(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"configured":   s.gw.Configured(),
		"provider":     s.cfg.Provider,
		"model":        s.gw.Model(),
		"api_key_mask": crypto.MaskAPIKey(s.cfg.APIKey),
		"lookup_count": lookupCount,
	})
}

func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	models := s.catalog
	if models == nil {
		models = []llm.Model{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resolved": s.gw.Model(),
		"models":   models,
	})
}

// --- LLM Operations ---

func (s *Server) testConnection(w http.ResponseWriter, r *http.Request) {
	if s.client == nil {
		writeError(w, http.StatusServiceUnavailable, "Server Error: provider API key not configured")
		return
	}

	if err := s.client.TestConnection(r.Context()); err != nil {
		log.Warn().Err(err).Str("provider", s.cfg.Provider).Msg("upstream connection test failed")
		writeError(w, http.StatusBadGateway, "Connection test failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"model":   s.gw.Model(),
	})
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	var req gateway.TranslationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := s.gw.Translate(r.Context(), req)
	if err != nil {
		s.writeGatewayError(w, err)
		return
	}

	s.saveLookup(r, "translate", req.Text, "", result.Translation)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) define(w http.ResponseWriter, r *http.Request) {
	var req gateway.DefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := s.gw.Define(r.Context(), req)
	if err != nil {
		s.writeGatewayError(w, err)
		return
	}

	s.saveLookup(r, "define", req.Word, req.Context, result.HTML)
	writeJSON(w, http.StatusOK, result)
}

// saveLookup records a successful result. Persistence trouble is logged
// and never surfaced to the caller.
func (s *Server) saveLookup(r *http.Request, kind, input, context, output string) {
	id, err := s.db.SaveLookup(r.Context(), &database.Lookup{
		Kind:    kind,
		Input:   input,
		Context: context,
		Model:   s.gw.Model(),
		Output:  output,
	})
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to save lookup")
		return
	}
	log.Info().Int64("lookup_id", id).Str("kind", kind).Msg("lookup saved")
}

// --- Lookup History ---

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	lookups, err := s.db.GetRecentLookups(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch lookup history")
		writeError(w, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	if lookups == nil {
		lookups = []database.Lookup{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"history": lookups})
}

func (s *Server) deleteLookup(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid lookup ID")
		return
	}

	if err := s.db.DeleteLookup(r.Context(), id); err != nil {
		log.Error().Err(err).Int64("lookup_id", id).Msg("failed to delete lookup")
		writeError(w, http.StatusInternalServerError, "Failed to delete lookup")
		return
	}

	log.Info().Int64("lookup_id", id).Msg("lookup deleted")
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// --- Helpers ---

// writeGatewayError maps the gateway taxonomy onto HTTP status codes.
func (s *Server) writeGatewayError(w http.ResponseWriter, err error) {
	ge, ok := gateway.AsError(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch ge.Kind {
	case gateway.KindInvalidInput:
		status = http.StatusBadRequest
	case gateway.KindNotConfigured:
		status = http.StatusServiceUnavailable
	case gateway.KindUpstream:
		status = http.StatusBadGateway
		if ge.TimedOut {
			status = http.StatusGatewayTimeout
		}
	case gateway.KindEmptyResponse:
		status = http.StatusBadGateway
	}

	log.Warn().
		Str("kind", string(ge.Kind)).
		Str("model", ge.Model).
		Bool("timed_out", ge.TimedOut).
		Msg(ge.Message)

	writeError(w, status, ge.Message)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
