package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paddlecraft/gohull/internal/hullio"
	"github.com/spf13/cobra"
)

var (
	hullValidateFile      string
	hullValidateTolerance float64
)

var hullValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check hull profile consistency and symmetry",
	Long: `Validate a hull definition: profile count, station ordering,
port/starboard symmetry and end closure.

Symmetry compares every off-center point against a mirror point at
-y with the same height, within the given tolerance.

Examples:
  gohull hull validate --file tern.json
  gohull hull validate -f tern.json --tolerance 0.005`,
	Run: runHullValidate,
}

func init() {
	hullCmd.AddCommand(hullValidateCmd)

	hullValidateCmd.Flags().StringVarP(&hullValidateFile, "file", "f", "", "Path to hull JSON file [required]")
	hullValidateCmd.MarkFlagRequired("file")

	hullValidateCmd.Flags().Float64VarP(&hullValidateTolerance, "tolerance", "t", 0.001, "Symmetry tolerance (m)")
}

func runHullValidate(cmd *cobra.Command, args []string) {
	def, err := hullio.Load(hullValidateFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	h := def.Hull

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HULL VALIDATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	ok := true

	if err := h.Validate(); err != nil {
		fmt.Fprintf(w, "  Profiles:\t⚠ %v\n", err)
		ok = false
	} else {
		fmt.Fprintf(w, "  Profiles:\t✓ %d stations, ascending\n", h.Count())
	}

	if err := h.ValidateSymmetry(hullValidateTolerance); err != nil {
		fmt.Fprintf(w, "  Symmetry:\t⚠ %v\n", err)
		ok = false
	} else {
		fmt.Fprintf(w, "  Symmetry:\t✓ within %.4f m\n", hullValidateTolerance)
	}

	if _, err := def.ExpandedHull(0); err != nil {
		fmt.Fprintf(w, "  End closure:\t⚠ %v\n", err)
		ok = false
	} else {
		fmt.Fprintf(w, "  End closure:\t✓ bow %d point(s), stern %d point(s)\n", len(def.Bow), len(def.Stern))
	}
	w.Flush()
	fmt.Println()

	if ok {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  HULL OK                                ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  HULL HAS ISSUES - see report above     ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
}
