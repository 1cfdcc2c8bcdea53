package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osmwrangle/internal/config"
)

var verbose bool

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load environment: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "wrangle",
		Short: "Singapore OpenStreetMap wrangling pipeline",
		Long:  `Audits, corrects and loads an OpenStreetMap export: street-type and postcode normalization, tabular shaping, bulk load, and manual-resolution support.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(createAuditCmd())
	rootCmd.AddCommand(createCleanCmd())
	rootCmd.AddCommand(createLoadCmd())
	rootCmd.AddCommand(createProblemsCmd())
	rootCmd.AddCommand(createResolveCmd())
	rootCmd.AddCommand(createServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
