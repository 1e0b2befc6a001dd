package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/promptforge/promptforge/internal/leaderboard"
	"github.com/promptforge/promptforge/internal/rest"
	"github.com/promptforge/promptforge/internal/setup"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RESTLogDir specifies where REST server log files are stored.
const RESTLogDir = "logs/rest_logs"

// Server timeouts.
const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 10 * time.Second
	ShutdownTimeout = 30 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application with required dependencies
	app, err := setup.InitializeApp(ctx, RESTLogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup(context.Background())

	// Create leaderboard cache and warm it before serving
	cache := leaderboard.NewCache(
		app.Redis, app.DB.Model().User(), app.Config.Leaderboard.Size, app.Logger)
	if err := cache.Refresh(ctx); err != nil {
		app.Logger.Warn("Failed to warm leaderboard cache", zap.Error(err))
	}

	// Create HTTP server with timeouts
	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      rest.NewServer(app.DB, cache, app.Logger),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info("REST server started", zap.String("addr", addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	// Periodically rebuild the leaderboard from the database
	g.Go(func() error {
		interval := time.Duration(app.Config.Leaderboard.RefreshInterval) * time.Second
		if interval <= 0 {
			interval = time.Minute
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				if err := cache.Refresh(gctx); err != nil {
					app.Logger.Error("Failed to refresh leaderboard", zap.Error(err))
				}
			}
		}
	})

	// Shut the server down once the context is cancelled
	g.Go(func() error {
		<-gctx.Done()

		app.Logger.Info("Shutting down REST server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error("Server exited with error", zap.Error(err))
		return
	}

	app.Logger.Info("Server gracefully stopped")
}
