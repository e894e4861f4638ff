package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adithyavalsaraj/folio/internal/server"
	"github.com/adithyavalsaraj/folio/internal/storage"
	"github.com/adithyavalsaraj/folio/internal/subject"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio API over HTTP",
	Long: `Serve the portfolio API:

  GET /api/publications        full classified publication list + metrics
  GET /api/publications/stats  citation totals over the raw library
  GET /api/timeline            merged curated+live timeline (?highlight=1)
  GET /api/curated             curated list queries (?search=&role=&year=)
  GET /healthz

The curated list is loaded once at startup; it is immutable at runtime.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		curated := mustLoadCurated(cfg)

		// The index is optional for serving: without it only /api/curated
		// is unavailable.
		var index *storage.DB
		if db, err := storage.OpenDB(cfg.Store.Index); err != nil {
			logger.Warn("curated index unavailable", "error", err)
		} else {
			index = db
			defer db.Close()
			if _, err := db.Rebuild(curated); err != nil {
				logger.Warn("rebuilding curated index", "error", err)
			}
		}

		srv := server.New(server.Config{
			Service:     newService(cfg),
			Curated:     curated,
			Highlighter: subject.NewHighlighter(cfg.Subject.NameVariants, cfg.Highlight.Open, cfg.Highlight.Close),
			Index:       index,
			Logger:      logger,
		})

		addr := serveAddr
		if addr == "" {
			addr = cfg.Server.Addr
		}

		httpServer := &http.Server{
			Addr:    addr,
			Handler: srv.Handler(),
		}

		done := make(chan os.Signal, 1)
		signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			logger.Info("listening", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", "error", err)
				os.Exit(ExitError)
			}
		}()

		<-done
		logger.Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(ExitError)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
