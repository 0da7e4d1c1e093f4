package cmd

import (
	"fmt"
	"os"

	"github.com/paddlecraft/gohull/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gohull",
	Short: "Kayak Hull Hydrostatics and Stability Tool",
	Long: `gohull - Go Kayak Hull Analyzer

A CLI tool for hydrostatic and stability analysis of kayaks and
other small paddlecraft defined by transverse station profiles.

This tool helps hull designers perform:
  - Hull geometry inspection and validation
  - Displacement and center of buoyancy calculation
  - Cross-section tables at any waterline, heel and trim
  - Righting arm (GZ) curves and stability metrics
  - Section and GZ curve diagrams (terminal and image)

Hulls are defined in JSON files with station profiles.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gohull v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Kayak Hull Analyzer                                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for hydrostatic and stability analysis of")
		fmt.Println("  kayaks and other small paddlecraft.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Hull geometry inspection and validation")
		fmt.Println("    • Displacement, heel and trim hydrostatics")
		fmt.Println("    • Righting arm curves and stability metrics")
		fmt.Println("    • Section and GZ curve diagrams (terminal and image)")
		fmt.Println()
		fmt.Println("  Use 'gohull --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
