package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "gomoku/internal/api/http"
	"gomoku/internal/api/ws"
	"gomoku/internal/config"
	"gomoku/internal/session"
	"gomoku/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	mem := store.NewMemoryStore()
	sm := session.NewManager(mem, cfg, nil)
	hub := ws.NewHub(sm, cfg.PingInterval)
	sm.SetHub(hub)
	r := httpapi.NewRouter(sm, hub, cfg)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	go sweepIdle(sigCtx, sm, cfg.SweepInterval)

	log.Printf("listening on %s", cfg.HTTPAddr)
	exitCode := 0
	select {
	case <-sigCtx.Done():
		log.Printf("shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			exitCode = 1
			log.Printf("server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("forced close failed: %v", closeErr)
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func sweepIdle(ctx context.Context, sm *session.Manager, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sm.Sweep(now)
		}
	}
}
