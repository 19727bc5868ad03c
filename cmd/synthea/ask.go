package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shubhampawar16/synthea/internal/chat"
	"github.com/shubhampawar16/synthea/internal/llm/providers"
)

var askShowQuery bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a natural-language question about the loaded data",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowQuery, "show-query", false,
		"print the generated Cypher query")
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := strings.Join(args, " ")

	client, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	provider, err := providers.NewProvider(ctx, cfg.LLM)
	if err != nil {
		return err
	}

	service := chat.NewService(client, provider, logger)
	answer, err := service.Ask(ctx, question)
	if err != nil {
		return err
	}

	cmd.Println(answer.Answer)
	if askShowQuery && answer.Cypher != "" {
		cmd.Println()
		cmd.Println("Generated query:")
		cmd.Println("  " + answer.Cypher)
	}
	return nil
}
