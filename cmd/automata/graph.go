package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [sequence]",
	Short: "Export the automaton as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph LR) of the automaton. Given a sequence, the states its trace visits are highlighted.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer env.Close()

		var sequence string
		if len(args) > 0 {
			sequence = args[0]
		}
		cli.Graph(cmd.Context(), cmd.OutOrStdout(), env.Simulator, sequence)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
