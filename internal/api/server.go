package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lakeview-games/fishbot/internal/game"
	"github.com/lakeview-games/fishbot/internal/logger"
)

// Server binds the action engine to HTTP. It also hosts the mini-app
// static files, a health probe and the prometheus endpoint.
type Server struct {
	svc        *game.Service
	log        *logger.Logger
	httpServer *http.Server
}

func New(addr string, svc *game.Service, staticDir string, log *logger.Logger) *Server {
	s := &Server{svc: svc, log: log}

	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/init", s.handleInit).Methods(http.MethodPost)
	api.HandleFunc("/fish", s.handleFish).Methods(http.MethodPost)
	api.HandleFunc("/upgrade", s.handleUpgrade).Methods(http.MethodPost)
	api.HandleFunc("/ad_reward", s.handleAdReward).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	if staticDir != "" {
		r.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.log.Info("http server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
