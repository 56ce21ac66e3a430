package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayfare-dev/wayfare/internal/demo"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		baseHref string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo application server",
		Long: `Start the demo application server.

The server renders the demo route set, exposes Prometheus metrics on
/metrics, and keeps connected browser shells in sync over WebSocket.

Configuration comes from the environment (WAYFARE_ADDR,
WAYFARE_BASE_HREF, WAYFARE_HASH_BASED, WAYFARE_METRICS); flags
override it.

Examples:
  wayfare serve
  wayfare serve --addr=:8080
  wayfare serve --base-href=/app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, baseHref)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from environment)")
	cmd.Flags().StringVarP(&baseHref, "base-href", "b", "", "Base href prefix (default from environment)")

	return cmd
}

func runServe(addr, baseHref string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := demo.LoadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if baseHref != "" {
		cfg.BaseHref = baseHref
	}

	server, err := demo.NewServer(cfg, log)
	if err != nil {
		return err
	}
	defer server.Close()

	// Resolve an initial view before the first shell connects.
	if _, err := server.Pipeline().Navigate(context.Background(), ""); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Handler(),
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("demo server listening", "addr", cfg.Addr, "base_href", cfg.BaseHref)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	<-done
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(ctx)
}
