package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/eradate/core/config"
	"github.com/dmitrymomot/eradate/core/logger"
	"github.com/dmitrymomot/eradate/internal/eragen"
)

func main() {
	log := logger.New(logger.WithDevelopment("eragen"), logger.WithOutput(os.Stderr))

	var cfg eragen.Config
	if err := config.Load(&cfg); err != nil {
		log.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		cfg.Output = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	if err := eragen.Run(ctx, cfg, log); err != nil {
		log.Error("era table build failed", logger.Error(err), logger.Elapsed(start))
		stop()
		os.Exit(1)
	}
	log.Info("era table build complete", logger.Elapsed(start))
}
