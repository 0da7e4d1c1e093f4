package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/paddlecraft/gohull/internal/diagram"
	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/report"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
	"github.com/spf13/cobra"
)

var (
	curveFile   string
	curveHeight float64
	curveTrim   float64
	curveMass   float64
	curveLCG    float64
	curveTCG    float64
	curveVCG    float64
	curveLoads  []string
	curveFrom   float64
	curveTo     float64
	curveStep   float64
	curveMethod string
	curveInterp string
	curveExpand bool
	curvePlot   bool
	curveCSV    string
	curveOutput string
)

var stabilityCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Righting arm curve with stability metrics",
	Long: `Sweep the heel angle and calculate the righting arm at each step,
then derive the stability metrics: initial GM, maximum GZ, angle of
vanishing stability, range of positive stability and the dynamic
stability area.

Examples:
  gohull stability curve -f tern.json -w 0.15 --mass 110 --lcg 2.3 --vcg 0.25
  gohull stability curve -f tern.json -w 0.15 --mass 110 --vcg 0.25 --plot
  gohull stability curve -f tern.json -w 0.15 --mass 110 --vcg 0.25 \
    --from 0 --to 60 --step 2.5 --csv gz.csv -o gz.png`,
	Run: runStabilityCurve,
}

func init() {
	stabilityCmd.AddCommand(stabilityCurveCmd)

	stabilityCurveCmd.Flags().StringVarP(&curveFile, "file", "f", "", "Path to hull JSON file [required]")
	stabilityCurveCmd.MarkFlagRequired("file")

	stabilityCurveCmd.Flags().Float64VarP(&curveHeight, "height", "w", 0, "Waterline height (m) [required]")
	stabilityCurveCmd.MarkFlagRequired("height")

	stabilityCurveCmd.Flags().Float64Var(&curveTrim, "trim", 0, "Trim angle (deg), positive bow down")
	stabilityCurveCmd.Flags().Float64VarP(&curveMass, "mass", "m", 0, "Total mass (kg)")
	stabilityCurveCmd.Flags().Float64Var(&curveLCG, "lcg", 0, "Longitudinal center of gravity (m)")
	stabilityCurveCmd.Flags().Float64Var(&curveTCG, "tcg", 0, "Transverse center of gravity (m)")
	stabilityCurveCmd.Flags().Float64Var(&curveVCG, "vcg", 0, "Vertical center of gravity (m)")
	stabilityCurveCmd.Flags().StringArrayVar(&curveLoads, "load", nil, "Mass component \"name:mass:x:y:z\" (repeatable)")

	stabilityCurveCmd.Flags().Float64Var(&curveFrom, "from", 0, "First heel angle (deg)")
	stabilityCurveCmd.Flags().Float64Var(&curveTo, "to", 90, "Last heel angle (deg)")
	stabilityCurveCmd.Flags().Float64Var(&curveStep, "step", 5, "Heel angle step (deg)")

	stabilityCurveCmd.Flags().StringVar(&curveMethod, "method", "simpson", "Integration method: simpson or trapezoid")
	stabilityCurveCmd.Flags().StringVar(&curveInterp, "interp", "linear", "Section interpolation: linear or cubic")
	stabilityCurveCmd.Flags().BoolVar(&curveExpand, "expand", false, "Close bow and stern with taper profiles first")

	stabilityCurveCmd.Flags().BoolVar(&curvePlot, "plot", false, "Plot the curve in the terminal")
	stabilityCurveCmd.Flags().StringVar(&curveCSV, "csv", "", "Export the curve to a CSV file")
	stabilityCurveCmd.Flags().StringVarP(&curveOutput, "output", "o", "", "Export the curve to an image file (png, svg, pdf)")
}

func runStabilityCurve(cmd *cobra.Command, args []string) {
	def, h, err := loadHull(curveFile, curveExpand)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	cg, err := resolveCG(curveLoads, curveMass, curveLCG, curveTCG, curveVCG)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if curveStep <= 0 {
		fmt.Println("Error: --step must be positive")
		return
	}
	if curveTo < curveFrom {
		fmt.Println("Error: --to must not be below --from")
		return
	}
	var angles []float64
	for a := curveFrom; a <= curveTo+1e-9; a += curveStep {
		angles = append(angles, a)
	}

	wl := waterline.New(curveHeight, 0, curveTrim)
	opts := hydro.Options{Method: curveMethod, Interp: curveInterp}

	c, err := stability.Curve(h, cg, wl, angles, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	m, err := stability.Analyze(c)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     RIGHTING ARM CURVE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Hull: %s\n", def.Name)
	fmt.Printf("  Mass: %.1f kg, CG (%.3f, %.3f, %.3f) m\n", cg.TotalMass, cg.LCG, cg.TCG, cg.VCG)
	fmt.Printf("  Waterline: %.3f m, trim %.1f deg\n", curveHeight, curveTrim)
	fmt.Println()

	fmt.Println("GZ CURVE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Heel (deg)\tGZ (m)\tTCB (m)\tStable\n")
	fmt.Fprintf(w, "  ──────────\t──────\t───────\t──────\n")
	for _, arm := range c.Arms {
		mark := "✓"
		if !arm.Stable {
			mark = "⚠"
		}
		fmt.Fprintf(w, "  %.1f\t%.4f\t%.4f\t%s\n", arm.HeelAngle, arm.GZ, arm.CB.TCB, mark)
	}
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Max GZ: %.4f m at %.1f deg", m.MaxGZ, m.MaxGZAngle),
	}
	if m.HasGM {
		lines = append(lines, fmt.Sprintf("Initial GM: %.4f m", m.GM))
	} else {
		lines = append(lines, "Initial GM: not available")
	}
	if m.HasVanishing {
		lines = append(lines, fmt.Sprintf("Vanishing angle: %.1f deg", m.VanishingAngle))
	} else {
		lines = append(lines, "Vanishing angle: beyond sweep")
	}
	if !math.IsNaN(m.PositiveRange[0]) {
		lines = append(lines, fmt.Sprintf("Positive range: %.1f to %.1f deg",
			m.PositiveRange[0], m.PositiveRange[1]))
	}
	lines = append(lines, fmt.Sprintf("Dynamic stability: %.4f m*rad", m.DynamicStability))
	fmt.Print(diagram.DrawSummaryBox("STABILITY SUMMARY", lines))
	fmt.Println()

	if curvePlot {
		fmt.Println(diagram.DrawGZCurveASCII(c, 12))
		fmt.Println()
	}

	if curveCSV != "" {
		f, err := os.Create(curveCSV)
		if err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		err = report.WriteGZCurveCSV(f, c)
		f.Close()
		if err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("Curve exported to: %s\n", curveCSV)
	}

	if curveOutput != "" {
		if err := diagram.ExportGZCurve(c, m, curveOutput); err != nil {
			fmt.Printf("Error exporting curve: %v\n", err)
			return
		}
		fmt.Printf("Curve diagram exported to: %s\n", curveOutput)
	}
}
