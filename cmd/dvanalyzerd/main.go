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

	"github.com/mfortin/dv-analyzer/internal/analysis"
	"github.com/mfortin/dv-analyzer/internal/checklist"
	"github.com/mfortin/dv-analyzer/internal/common"
	"github.com/mfortin/dv-analyzer/internal/extract"
	"github.com/mfortin/dv-analyzer/internal/llm/openrouter"
	"github.com/mfortin/dv-analyzer/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver := extract.NewResolver(cfg.Download.Timeout, logger)
	extractor := extract.NewExtractor(resolver, logger)
	loader := checklist.NewLoader(logger)
	client := openrouter.NewClient(openrouter.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Referer: cfg.LLM.Referer,
		Timeout: cfg.LLM.Timeout,
	}, logger)

	svc := analysis.NewService(extractor, resolver, loader, client, logger)
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(svc, logger).Router(),
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
