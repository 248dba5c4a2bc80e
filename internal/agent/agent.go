// Package agent wires the persistence chain and board service into a
// long-running process: load the board, keep it refreshed, keep the local
// cache warm and optionally expose Prometheus metrics.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"glassboard/internal/config"
	"glassboard/internal/logger"
	"glassboard/internal/service"
	"glassboard/internal/session"
	"glassboard/internal/store"
)

type Agent struct {
	Service *service.BoardService
	Local   *store.Local
	Config  *config.Config
}

func Init(cfg *config.Config) (*Agent, error) {
	sess := session.Anonymous()
	if cfg.APIToken != "" {
		parsed, err := session.FromToken(cfg.APIToken)
		if err != nil {
			logger.Log.Warn("⚠️  Ignoring invalid API token, continuing anonymously", "error", err)
		} else {
			sess = parsed
			logger.Log.Info("✅ Session established", "user", sess.User().ID)
		}
	}

	cachePath := cfg.CachePath
	if cachePath == "" {
		path, err := store.DefaultCachePath()
		if err != nil {
			return nil, fmt.Errorf("❌ failed to resolve cache path: %w", err)
		}
		cachePath = path
	}

	local, err := store.OpenLocal(cachePath)
	if err != nil {
		return nil, fmt.Errorf("❌ failed to open cache: %w", err)
	}
	logger.Log.Info("✅ Cache ready", "path", cachePath)

	chain := store.NewFallback(store.NewRemote(cfg.APIBaseURL, sess), local, store.NewSeed())
	boards := service.NewBoardService(cfg.BoardID, chain)

	return &Agent{
		Service: boards,
		Local:   local,
		Config:  cfg,
	}, nil
}

// Run loads the board, starts the refresh loop and blocks until SIGINT or
// SIGTERM.
func (a *Agent) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	board := a.Service.LoadBoard(ctx)
	logger.Log.Info("🚀 Board agent running", "board", board.ID, "title", board.Title)

	a.Service.StartAutoRefresh(ctx, a.Config.RefreshInterval)

	var metricsSrv *http.Server
	if a.Config.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              a.Config.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Log.Info("🚀 Metrics listening", "addr", a.Config.MetricsAddr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Log.Error("❌ Metrics server failed", "error", err)
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("🛑 Shutting down agent...")

	cancel()
	if metricsSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("❌ Metrics server forced to shutdown", "error", err)
		}
	}

	logger.Log.Info("✅ Agent exited properly")
}

// DumpBoard resolves the board through the fallback chain and writes it as
// indented JSON.
func (a *Agent) DumpBoard(w io.Writer) error {
	board := a.Service.LoadBoard(context.Background())

	payload, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}
	_, err = fmt.Fprintln(w, string(payload))
	return err
}

// ResetCache drops the locally cached copy of the configured board.
func (a *Agent) ResetCache() error {
	err := a.Local.DeleteBoard(a.Config.BoardID)
	if errors.Is(err, store.ErrBoardNotFound) {
		logger.Log.Info("No cached copy to drop", "board", a.Config.BoardID)
		return nil
	}
	if err != nil {
		return err
	}
	logger.Log.Info("✅ Cached board dropped", "board", a.Config.BoardID)
	return nil
}

// Close releases the cache database handle.
func (a *Agent) Close() error {
	return a.Local.Close()
}
