package main

import (
	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/pkg/session"
	"github.com/spf13/cobra"
)

func newListingCmd(use, short string, command session.Command) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(cmd, nil)
			if err != nil {
				return err
			}
			defer env.Close()
			return cli.PrintListing(cmd.Context(), cmd.OutOrStdout(), env.Simulator, command)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newListingCmd("states", "Print the states", session.CommandStates),
		newListingCmd("finals", "Print the final states", session.CommandFinalStates),
		newListingCmd("alphabet", "Print the alphabet", session.CommandAlphabet),
		newListingCmd("transitions", "Print the transition table", session.CommandTransitions),
	)
}
