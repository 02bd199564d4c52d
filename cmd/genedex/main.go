// Package main is the entry point for the genedex CLI.
//
//	@title						Genedex API
//	@version					1.0
//	@description				Gene catalog with ranked full-text search, aggregated gene records, and chromosome atlas views
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	AdminTokenAuth
//	@in							header
//	@name						X-Admin-Token
package main

import (
	"fmt"
	"os"

	"github.com/genomelab/genedex/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genedex",
		Short: "Genedex gene search server",
		Long:  `Genedex serves a gene catalog with ranked full-text search, aggregated per-gene annotation records, and schematic chromosome views.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(stdioCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
