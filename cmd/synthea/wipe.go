package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shubhampawar16/synthea/internal/loader"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every node and relationship from the graph",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVarP(&wipeYes, "yes", "y", false,
		"skip the confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	if !wipeYes {
		cmd.Print("This deletes ALL data in the target database. Continue? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			cmd.Println("Aborted.")
			return nil
		}
	}

	ctx := cmd.Context()
	client, err := connectGraph(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	if err := loader.Wipe(ctx, client); err != nil {
		return err
	}

	cmd.Println("Graph wiped.")
	return nil
}
