package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/automata/internal/cli"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive menu",
	Long: `Shows the menu (1 states, 2 final states, 3 alphabet, 4 transitions,
5 sequence, 0 exit) and reads commands until 0 or end of input. The menu and
prompts are hidden when stdin is not a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")

		env, err := loadEnv(cmd, nil)
		if err != nil {
			return err
		}
		defer env.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		interactive := !headless && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		return cli.Repl(ctx, env.Simulator, cli.ReplOptions{
			Input:       cmd.InOrStdin(),
			Output:      cmd.OutOrStdout(),
			Interactive: interactive,
		})
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().Bool("headless", false, "Hide menu and prompts even on a terminal")
}
