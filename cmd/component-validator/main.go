package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evanx/component-validator/config"
	"github.com/evanx/component-validator/logger"
	"github.com/evanx/component-validator/runner"
	"github.com/evanx/component-validator/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetShortVersion())
		return
	}

	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg config.Config
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return err
	}
	cfg.ApplyDefaults()
	if cfg.Version == "" {
		cfg.Version = version.GetShortVersion()
	}

	logger.Init(cfg.Logging)
	log := logger.GetGlobalLogger()

	// A missing COMPONENT_MODULE is fatal before any load attempt.
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("Invalid configuration")
		return err
	}

	r, err := runner.New(&cfg, runner.WithLogger(log))
	if err != nil {
		log.WithError(err).Error("Runner setup failed")
		return err
	}
	return r.Run(ctx)
}
