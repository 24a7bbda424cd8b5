package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

type Server struct {
	logger *slog.Logger

	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewServer(logger *slog.Logger, port string, shutdownTimeout time.Duration, handler http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "http"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// NewRouter registers the game API on a gin engine with recovery and request logging.
func NewRouter(logger *slog.Logger, game GameHandlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/ping", pingHandler)

	games := router.Group("/games")
	games.POST("", game.CreateGame)
	games.GET("/:id", game.GetGame)
	games.DELETE("/:id", game.DeleteGame)
	games.POST("/:id/turns", game.MakeTurn)
	games.POST("/:id/rounds", game.NewRound)

	return router
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("listening", "addr", that.srv.Addr)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), that.shutdownTimeout)
	defer cancel()

	if err := that.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	that.logger.Info("server stopped")

	return nil
}
