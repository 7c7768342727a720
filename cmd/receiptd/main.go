package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benshabbat/receipt-scanner/internal/catalog"
	"github.com/benshabbat/receipt-scanner/internal/common"
	"github.com/benshabbat/receipt-scanner/internal/engine"
	"github.com/benshabbat/receipt-scanner/internal/export"
	"github.com/benshabbat/receipt-scanner/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.Engine.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.Engine.CatalogPath)
		if err != nil {
			logger.Error("load catalog", "path", cfg.Engine.CatalogPath, "error", err)
			os.Exit(1)
		}
		cat = loaded
		logger.Info("catalog loaded", "path", cfg.Engine.CatalogPath,
			"stores", len(cat.Stores), "categories", len(cat.Categories))
	}

	eng := engine.New(engine.Config{
		MinPrice:           cfg.Engine.MinPrice,
		StrictMaxPrice:     cfg.Engine.StrictMaxPrice,
		AggressiveMaxPrice: cfg.Engine.AggressiveMaxPrice,
		MaxQuantity:        cfg.Engine.MaxQuantity,
		StoreLookahead:     cfg.Engine.StoreLookahead,
		TotalTailLines:     cfg.Engine.TotalTailLines,
		MinTextLength:      cfg.Engine.MinTextLength,
	}, cat, logger)
	exp := export.NewService(cfg.Export.SheetName, logger)
	srv := server.New(cfg.Server, eng, exp, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		errCh <- srv.Listen(cfg.Server.Addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		if err := srv.Shutdown(cfg.Server.ShutdownTimeout); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
