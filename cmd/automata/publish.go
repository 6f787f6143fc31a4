package main

import (
	"fmt"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Upload a description to Redis",
	Long: `Validates the description file and stores it under the Redis key
(--redis-key, default automata:description) so other simulators can load it
with --redis-addr. YAML and JSON descriptions are converted to the text format
before they are stored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := cli.Publish(cmd.Context(), cliOptions(cmd), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %s to %s\n", args[0], key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
