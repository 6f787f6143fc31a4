package main

import (
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var evalCmd = &cobra.Command{
	Use:   "eval <sequence>...",
	Short: "Evaluate input sequences",
	Long: `Evaluates each argument as one sequence. A sequence containing spaces is
split into symbols on whitespace; otherwise every character is a symbol.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")
		noColor, _ := cmd.Flags().GetBool("no-color")

		env, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer env.Close()
		return cli.Eval(cmd.Context(), cmd.OutOrStdout(), env.Simulator, args, cli.EvalOptions{
			JSON:  jsonMode,
			Color: !noColor && term.IsTerminal(int(os.Stdout.Fd())),
		})
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("json", false, "Print one JSON result per line")
	evalCmd.Flags().Bool("no-color", false, "Disable the colored verdict on terminals")
}
