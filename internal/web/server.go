package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"swiss/internal/config"
	"swiss/internal/swiss"
	"swiss/internal/util"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// AdminScope is the token scope required by destructive endpoints.
const AdminScope = "admin"

func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Swiss-Token"},
		MaxAge:         300,
	}))

	r.Get("/", s.index)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/players", s.getPlayers)
		r.Get("/players/count", s.countPlayers)
		r.Get("/standings", s.getStandings)
		r.Get("/pairings", s.getPairings)
		r.Get("/ratings", s.getRatings)

		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/players", s.postPlayer)
			r.Post("/matches", s.postMatch)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Delete("/matches", s.deleteMatches)
				r.Delete("/players", s.deletePlayers)
			})
		})
	})

	return r
}

type Server struct {
	http       *http.Server
	tournament *swiss.Tournament
	config     *config.Config
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

func NewServer(tournament *swiss.Tournament, conf *config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		tournament: tournament,
		config:     conf,
		limiter:    rate.NewLimiter(rate.Every(100*time.Millisecond), 20),
		logger:     logger.With().Str("component", "web").Logger(),
	}

	s.http = &http.Server{
		Addr:         conf.Listen,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  10 * time.Second,
		Handler:      s.setupRouter(),
	}

	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Serve listens until ctx is done, then gracefully shuts the server down.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info().Str("address", s.http.Addr).Msg("starting HTTP server")

	errs := make(chan error, 1)
	go func() {
		errs <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("webserver crashed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn().Err(err).Msg("unable to gracefully shut down webserver")
		return s.http.Close()
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info().Msg("HTTP server closed")

	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.error(w, r, util.ErrPublic("too many requests, slow down"), http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.config.CheckToken(r.Header.Get("X-Swiss-Token"), AdminScope); err != nil {
			s.error(w, r, fmt.Errorf("refused admin call: %w", err), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) response(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	response, err := json.Marshal(data)
	if err != nil {
		s.logger.Error().Err(err).Msg("unable to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)

	if _, err := w.Write(response); err != nil {
		s.logger.Error().Err(err).Msg("unable to send response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error, code int) {
	event := s.logger.Warn()
	if code >= http.StatusInternalServerError {
		event = s.logger.Error()
	}
	event.Err(err).Str("path", r.URL.Path).Int("status", code).Msg("request failed")

	s.response(w, code, errorResponse{
		Error: util.PublicMessage(err, http.StatusText(code)),
	})
}

// fail responds with the status matching a tournament error.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, swiss.ErrInvalidInput):
		s.error(w, r, err, http.StatusBadRequest)
	case errors.Is(err, swiss.ErrNotFound):
		s.error(w, r, err, http.StatusNotFound)
	case errors.Is(err, swiss.ErrStorageUnavailable):
		s.error(w, r, err, http.StatusServiceUnavailable)
	default:
		s.error(w, r, err, http.StatusInternalServerError)
	}
}

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
