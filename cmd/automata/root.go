package main

import (
	"fmt"
	"os"

	"github.com/aretw0/automata/internal/cli"
	"github.com/aretw0/automata/internal/config"
	"github.com/aretw0/automata/pkg/observability"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Automata is a finite automaton simulator",
	Long: `Automata loads a finite automaton description (text, YAML or JSON file,
Redis key or Loam document), checks whether it is deterministic and evaluates
input sequences, printing the transitions it takes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringP("file", "f", "", "Description file (.txt, .yaml, .json)")
	flags.String("format", "", "Force the description format (text, yaml, json)")
	flags.StringP("config", "c", "", "Config file (default "+config.DefaultPath+" when present)")
	flags.Bool("strict", true, "Validate the automaton structure after loading")
	flags.Bool("debug", false, "Enable debug logs on stderr")
	flags.String("redis-addr", "", "Load the description from this Redis server")
	flags.String("redis-key", "", "Redis key holding the description")
	flags.String("loam-dir", "", "Load the description from this Loam repository")
	flags.String("doc", "", "Loam document holding the description")
}

// cliOptions collects the persistent flags.
func cliOptions(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	opts := cli.Options{}
	opts.File, _ = flags.GetString("file")
	opts.Format, _ = flags.GetString("format")
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Debug, _ = flags.GetBool("debug")
	opts.RedisAddr, _ = flags.GetString("redis-addr")
	opts.RedisKey, _ = flags.GetString("redis-key")
	opts.LoamDir, _ = flags.GetString("loam-dir")
	opts.Doc, _ = flags.GetString("doc")
	if flags.Changed("strict") {
		strict, _ := flags.GetBool("strict")
		opts.Strict = &strict
	}
	return opts
}

// loadEnv loads the simulator for cmd. The caller must Close the Env.
func loadEnv(cmd *cobra.Command, metrics *observability.Metrics) (*cli.Env, error) {
	return cli.Setup(cmd.Context(), cliOptions(cmd), metrics)
}
