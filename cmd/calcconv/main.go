// Package main provides the CLI entry point for calcconv.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"calcconv/internal/config"
	"calcconv/internal/logging"
	"calcconv/pkg/calcconv"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calcconv",
		Short: "Convert calculation CSV exports to columnar JSON",
		Long: `calcconv converts the configured semicolon-delimited calculation and
profile exports into compact columnar JSON documents, dropping all-zero
and redundant time-axis columns and renaming files to descriptive names.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	return calcconv.Run(cfg.DataDir, calcconv.DefaultFileMap(), calcconv.DefaultOptions(), os.Stdout)
}
