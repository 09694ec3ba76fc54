package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceASCII/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "otd",
	Short: "OpenTraceASCII - DipTrace ASCII schematic and board tools",
	Long: `OpenTraceASCII (otd) reads and edits DipTrace ASCII exports:
  - round-trip checks of schematic and board files
  - project summaries (components, nets, numbering, layers)
  - scripted edits: duplicate, rename, move and rotate components and nets

Examples:
  otd check design.asc board.asc                      # Verify files regenerate unchanged
  otd info --schematic design.asc --board board.asc   # Show project summary
  otd apply edits.otd --schematic design.asc --diff   # Run an edit script
  otd inspect board.asc Board Components --depth 2    # Dump part of a tree`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if !verbose {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(os.Stderr)
		}
		log.SetFlags(0)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./otd.yaml or the user config dir)")
}
