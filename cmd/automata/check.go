package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether the automaton is deterministic",
	Long:  `Lists every (state, symbol) pair with more than one destination. Exits with status 1 when the automaton is non-deterministic.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer env.Close()
		return cli.Check(cmd.Context(), cmd.OutOrStdout(), env.Simulator)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
