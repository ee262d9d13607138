// Package main provides the exemplar CLI.
// It lists the studies of the corpus and runs their demonstrations.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"go.llib.dev/exemplar/pkg/logging"
)

type config struct {
	LogLevel string `env:"EXEMPLAR_LOG_LEVEL" envDefault:"info"`
}

func parseConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := &logging.Logger{
		Out:   os.Stderr,
		Level: logging.Level(cfg.LogLevel),
	}

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *logging.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "exemplar",
		Short:        "Browse and run the studies of the exemplar corpus",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		listCommand(),
		runCommand(logger),
	)
	return cmd
}
