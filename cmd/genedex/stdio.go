package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/internal/log"
	"github.com/genomelab/genedex/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This allows AI assistants to search the gene catalog and fetch aggregated
gene records. Configuration is loaded from environment variables and .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	// Load configuration
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Ensure the data directory exists
	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// Log to stderr; stdout is reserved for the MCP protocol.
	logger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel())
	slogger := logger.Slog()

	slogger.Info("starting MCP server",
		slog.String("version", version),
		slog.String("data_dir", cfg.DataDir()),
	)

	// Build genedex client options
	opts := append(clientOptions(cfg),
		genedex.WithDataDir(cfg.DataDir()),
		genedex.WithLogger(slogger),
	)

	client, err := genedex.New(opts...)
	if err != nil {
		return fmt.Errorf("create genedex client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close genedex client", slog.Any("error", err))
		}
	}()

	// Create MCP server
	mcpServer := mcp.NewServer(client.Search, client.Genes, client.Atlas, version, slogger)

	// Run on stdio
	return mcpServer.ServeStdio()
}
