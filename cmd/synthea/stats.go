package main

import (
	"github.com/spf13/cobra"

	"github.com/shubhampawar16/synthea/internal/loader"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show node and relationship counts",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	nodes, rels, err := loader.Stats(ctx, client)
	if err != nil {
		return err
	}

	cmd.Println("Nodes by label:")
	for _, lc := range nodes {
		cmd.Printf("  %-20s %d\n", lc.Label, lc.Count)
	}
	cmd.Println()
	cmd.Println("Relationships by type:")
	for _, tc := range rels {
		cmd.Printf("  %-24s %d\n", tc.Type, tc.Count)
	}
	return nil
}
