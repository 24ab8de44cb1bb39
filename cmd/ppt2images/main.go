// Package main provides the entry point for the ppt2images CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/ppt2images/internal/cli"
	"github.com/GabrielNunesIT/ppt2images/internal/config"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.NewConsoleLogger(os.Stdout)

	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(log, cfg)
	if err := app.Execute(ctx); err != nil {
		log.Errorf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
