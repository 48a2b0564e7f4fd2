// Package main provides the CLI entrypoint for tanvet.
//
// tanvet validates the hand-authored tangram dataset (wz and codm
// encodings plus the mapping between them) and renders diagnostic PNG
// sheets so a human can visually confirm the data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tanvet/cmd/tanvet/commands"
	"tanvet/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tanvet",
	Short: "Validate and render the tangram dataset",
	Long: `tanvet - tangram dataset validator and diagnostic renderer

Validates the wz and codm tangram sets against mapping.csv and renders
diagnostic images for visual confirmation.

Examples:
  tanvet validate                  # Run the full validation pass
  tanvet render                    # Validate, then write all PNG sheets
  tanvet dump                      # Dump the loaded dataset (debug aid)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if err := logger.Initialize(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.DumpCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
