package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

func New(logger *slog.Logger, port string, battles battleService) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(logger, battles),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter wires the public endpoints: liveness, battle registration and battle lookup.
func NewRouter(logger *slog.Logger, battles battleService) http.Handler {
	handlers := NewBattleHandlers(logger, battles)
	ping := NewPingHandler()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Get("/", ping.HelloHandler)
	router.Get("/ping", ping.PingHandler)

	router.Post("/tic-tac-toe", handlers.Register)
	router.Get("/tic-tac-toe/{battleID}", handlers.GetBattle)

	return router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	that.logger.Info("shutting down HTTP server")
	if err := that.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
