package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/solace/internal/proxy"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg := proxy.LoadConfig()
	if cfg.APIKey == "" {
		slog.Error("COHERE_API_KEY environment variable is required")
		os.Exit(1)
	}

	app := proxy.NewServer(cfg).App()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("proxy starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("proxy failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down proxy...")

	if err := app.Shutdown(); err != nil {
		slog.Error("proxy shutdown error", "error", err)
	}

	slog.Info("proxy stopped")
}
