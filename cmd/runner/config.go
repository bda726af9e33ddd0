package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/coin-runner/internal/config"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config or check a custom one",
	Long: `Without flags, prints the built-in runner config as YAML.
With --check, loads and validates the given file.

Examples:
  runner config > ~/.arcade/configs/runner.yaml
  runner config --check ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigCheck == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if _, err := config.LoadRunner(flagConfigCheck); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: ok\n", flagConfigCheck)
	if path := config.UserConfigPath(); path != "" {
		fmt.Printf("User config location: %s\n", path)
	}
}
