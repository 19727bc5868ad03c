package main

import (
	"github.com/spf13/cobra"

	"github.com/shubhampawar16/synthea/internal/api"
	"github.com/shubhampawar16/synthea/internal/chat"
	"github.com/shubhampawar16/synthea/internal/llm/providers"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question-answering HTTP API",
	Long: `Starts the HTTP server: POST /ask for one-shot questions, /ws/ask for
streaming answers over websocket, plus /stats, /samples, /schema, and
/health. Shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", "",
		"listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	provider, err := providers.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return err
	}

	apiCfg := cfg.API
	if serveAddress != "" {
		apiCfg.Address = serveAddress
	}

	service := chat.NewService(client, provider, logger)
	server := api.NewServer(service, apiCfg, logger)

	return server.ListenAndServe(ctx)
}
