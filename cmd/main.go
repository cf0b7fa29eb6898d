package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"marker-clicker/config"
	cli "marker-clicker/internal/api"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		initLogger("info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	initLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCmd(cfg, cli.DefaultDeps())
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("marker-clicker failed")
		stop()
		os.Exit(1)
	}
}
