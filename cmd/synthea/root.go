// Command synthea loads Synthea CSV exports into a Neo4j property graph and
// serves natural-language queries over the result.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shubhampawar16/synthea/internal/config"
	"github.com/shubhampawar16/synthea/internal/graph"
)

const version = "v1.0.0"

var (
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "synthea",
	Short: "Synthea healthcare graph loader and chat service",
	Long: `Loads Synthea CSV exports into a Neo4j property graph: schema-driven
node creation, dependency-ordered relationship resolution, and batched
writes. Also serves natural-language questions against the loaded graph
through an LLM-backed chat service.`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// loadConfig runs before every command, loading configuration and building
// the logger from it.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "init" {
		return nil
	}

	path := configFile
	if path == "" {
		path = os.Getenv("SYNTHEA_CONFIG")
	}
	if path == "" {
		path = "synthea.yaml"
	}

	loaded, err := config.NewLoader(config.NewValidator()).LoadWithDefaults(path)
	if err != nil {
		return err
	}
	cfg = loaded
	logger = newLogger(cfg.Logging)
	slog.SetDefault(logger)

	return nil
}

// newLogger builds a slog.Logger per the logging configuration.
func newLogger(lc config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if lc.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// connectGraph builds and connects the Neo4j client. The caller owns the
// returned client and must Close it.
func connectGraph(ctx context.Context) (graph.GraphClient, error) {
	client, err := graph.NewNeo4jClient(cfg.Neo4j)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"path to the configuration file (default synthea.yaml)")

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("synthea %s\n", version)
	},
}
