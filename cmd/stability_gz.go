package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/water"
	"github.com/paddlecraft/gohull/internal/waterline"
	"github.com/spf13/cobra"
)

var (
	gzFile    string
	gzHeight  float64
	gzHeel    float64
	gzTrim    float64
	gzMass    float64
	gzLCG     float64
	gzTCG     float64
	gzVCG     float64
	gzLoads   []string
	gzDensity string
	gzMethod  string
	gzInterp  string
	gzExpand  bool
)

var stabilityGZCmd = &cobra.Command{
	Use:   "gz",
	Short: "Righting arm at a single heel angle",
	Long: `Calculate the righting arm GZ at one heel angle.

The hull is rotated to the heel angle against a level waterline,
the submerged volume and its centroid are found, and GZ is the
transverse distance between the center of buoyancy and the heeled
center of gravity.

Examples:
  # 110 kg paddler and boat, CG 0.25 m above the keel, heel 30 deg
  gohull stability gz -f tern.json -w 0.15 --heel 30 --mass 110 --lcg 2.3 --vcg 0.25

  # Loading condition from components
  gohull stability gz -f tern.json -w 0.15 --heel 30 \
    --load "hull:26:2.2:0:0.18" --load "paddler:84:2.4:0:0.30"`,
	Run: runStabilityGZ,
}

func init() {
	stabilityCmd.AddCommand(stabilityGZCmd)

	stabilityGZCmd.Flags().StringVarP(&gzFile, "file", "f", "", "Path to hull JSON file [required]")
	stabilityGZCmd.MarkFlagRequired("file")

	stabilityGZCmd.Flags().Float64VarP(&gzHeight, "height", "w", 0, "Waterline height (m) [required]")
	stabilityGZCmd.MarkFlagRequired("height")

	stabilityGZCmd.Flags().Float64Var(&gzHeel, "heel", 0, "Heel angle (deg) [required]")
	stabilityGZCmd.MarkFlagRequired("heel")

	stabilityGZCmd.Flags().Float64Var(&gzTrim, "trim", 0, "Trim angle (deg), positive bow down")
	stabilityGZCmd.Flags().Float64VarP(&gzMass, "mass", "m", 0, "Total mass (kg)")
	stabilityGZCmd.Flags().Float64Var(&gzLCG, "lcg", 0, "Longitudinal center of gravity (m)")
	stabilityGZCmd.Flags().Float64Var(&gzTCG, "tcg", 0, "Transverse center of gravity (m)")
	stabilityGZCmd.Flags().Float64Var(&gzVCG, "vcg", 0, "Vertical center of gravity (m)")
	stabilityGZCmd.Flags().StringArrayVar(&gzLoads, "load", nil, "Mass component \"name:mass:x:y:z\" (repeatable)")
	stabilityGZCmd.Flags().StringVar(&gzDensity, "density", "", "Water density: kg/m^3, 'fresh' or 'sea' (default: from file)")
	stabilityGZCmd.Flags().StringVar(&gzMethod, "method", "simpson", "Integration method: simpson or trapezoid")
	stabilityGZCmd.Flags().StringVar(&gzInterp, "interp", "linear", "Section interpolation: linear or cubic")
	stabilityGZCmd.Flags().BoolVar(&gzExpand, "expand", false, "Close bow and stern with taper profiles first")
}

func runStabilityGZ(cmd *cobra.Command, args []string) {
	def, h, err := loadHull(gzFile, gzExpand)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	cg, err := resolveCG(gzLoads, gzMass, gzLCG, gzTCG, gzVCG)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	density, err := resolveDensity(gzDensity, def)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	wl := waterline.New(gzHeight, 0, gzTrim)
	opts := hydro.Options{Method: gzMethod, Interp: gzInterp}

	arm, err := stability.GZ(h, cg, wl, gzHeel, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RIGHTING ARM")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Hull: %s\n", def.Name)
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Heel angle:\t%.1f deg\n", gzHeel)
	fmt.Fprintf(w, "  Waterline height:\t%.3f m\n", gzHeight)
	fmt.Fprintf(w, "  Trim:\t%.1f deg\n", gzTrim)
	fmt.Fprintf(w, "  Total mass:\t%.1f kg\n", cg.TotalMass)
	fmt.Fprintf(w, "  CG (x, y, z):\t%.3f, %.3f, %.3f m\n", cg.LCG, cg.TCG, cg.VCG)
	w.Flush()
	fmt.Println()

	fmt.Println("CENTER OF BUOYANCY (HEELED):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Displaced volume:\t%.4f m^3\n", arm.CB.Volume)
	fmt.Fprintf(w, "  LCB (x):\t%.4f m\n", arm.CB.LCB)
	fmt.Fprintf(w, "  TCB (y):\t%.4f m\n", arm.CB.TCB)
	fmt.Fprintf(w, "  VCB (z):\t%.4f m\n", arm.CB.VCB)

	// A floating hull displaces its own mass. A large mismatch means
	// the waterline height does not match the loading condition.
	buoyantMass := arm.CB.Volume * density
	equilibrium := "✓"
	if math.Abs(buoyantMass-cg.TotalMass) > 0.02*cg.TotalMass {
		equilibrium = "⚠ adjust --height to match the displacement"
	}
	fmt.Fprintf(w, "  Displaced mass:\t%.1f kg %s\n", buoyantMass, equilibrium)
	w.Flush()
	fmt.Println()

	fmt.Println("RIGHTING ARM:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  GZ:\t%.4f m\n", arm.GZ)
	fmt.Fprintf(w, "  Righting moment:\t%.1f N*m\n", cg.TotalMass*water.Gravity*arm.GZ)
	w.Flush()
	fmt.Println()

	status := "stable (rights itself)"
	if !arm.Stable {
		status = "unstable (heels further)"
	}
	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  GZ = %.4f m at %.1f deg - %s\n", arm.GZ, gzHeel, status)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()
}
