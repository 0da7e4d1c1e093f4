package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/report"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
	"github.com/spf13/cobra"
)

var (
	reportFile     string
	reportHeight   float64
	reportHeel     float64
	reportTrim     float64
	reportDensity  string
	reportStations int
	reportMethod   string
	reportInterp   string
	reportExpand   bool
	reportMass     float64
	reportLCG      float64
	reportTCG      float64
	reportVCG      float64
	reportLoads    []string
	reportOutput   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full hydrostatics and stability report",
	Long: `Generate a plain-text report: displacement summary, per-station
cross-section table and, when a loading condition is given, the
stability metrics over the default heel sweep.

The report goes to stdout unless --output names a file.

Examples:
  gohull report --file tern.json --height 0.15
  gohull report -f tern.json -w 0.15 --mass 110 --lcg 2.3 --vcg 0.25 -o tern-report.txt`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "Path to hull JSON file [required]")
	reportCmd.MarkFlagRequired("file")

	reportCmd.Flags().Float64VarP(&reportHeight, "height", "w", 0, "Waterline height (m) [required]")
	reportCmd.MarkFlagRequired("height")

	reportCmd.Flags().Float64Var(&reportHeel, "heel", 0, "Heel angle (deg) for the hydrostatics part")
	reportCmd.Flags().Float64Var(&reportTrim, "trim", 0, "Trim angle (deg), positive bow down")
	reportCmd.Flags().StringVar(&reportDensity, "density", "", "Water density: kg/m^3, 'fresh' or 'sea' (default: from file)")
	reportCmd.Flags().IntVarP(&reportStations, "stations", "n", hydro.DefaultStations, "Evaluation stations (0 uses the stored stations)")
	reportCmd.Flags().StringVar(&reportMethod, "method", "simpson", "Integration method: simpson or trapezoid")
	reportCmd.Flags().StringVar(&reportInterp, "interp", "linear", "Section interpolation: linear or cubic")
	reportCmd.Flags().BoolVar(&reportExpand, "expand", false, "Close bow and stern with taper profiles first")

	reportCmd.Flags().Float64VarP(&reportMass, "mass", "m", 0, "Total mass (kg), enables the stability part")
	reportCmd.Flags().Float64Var(&reportLCG, "lcg", 0, "Longitudinal center of gravity (m)")
	reportCmd.Flags().Float64Var(&reportTCG, "tcg", 0, "Transverse center of gravity (m)")
	reportCmd.Flags().Float64Var(&reportVCG, "vcg", 0, "Vertical center of gravity (m)")
	reportCmd.Flags().StringArrayVar(&reportLoads, "load", nil, "Mass component \"name:mass:x:y:z\" (repeatable)")

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) {
	def, h, err := loadHull(reportFile, reportExpand)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	density, err := resolveDensity(reportDensity, def)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	wl := waterline.New(reportHeight, reportHeel, reportTrim)
	opts := hydro.Options{
		Stations: reportStations,
		Method:   reportMethod,
		Interp:   reportInterp,
	}

	d, err := hydro.Displacement(h, wl, density, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	secs, err := hydro.Sections(h, wl, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var b strings.Builder
	b.WriteString(report.HydrostaticsText(def.Name, d))
	b.WriteString("\n")
	b.WriteString(report.SectionsText(secs))

	if reportMass > 0 || len(reportLoads) > 0 {
		cg, err := resolveCG(reportLoads, reportMass, reportLCG, reportTCG, reportVCG)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		// The heel sweep needs a level waterline; the heel flag only
		// applies to the hydrostatics part above.
		c, err := stability.Curve(h, cg, waterline.New(reportHeight, 0, reportTrim), nil,
			hydro.Options{Method: reportMethod, Interp: reportInterp})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		m, err := stability.Analyze(c)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		b.WriteString("\n")
		b.WriteString(report.StabilityText(def.Name, cg, m))
	}

	if reportOutput == "" {
		fmt.Println()
		fmt.Print(b.String())
		return
	}
	if err := os.WriteFile(reportOutput, []byte(b.String()), 0o644); err != nil {
		fmt.Printf("Error writing report: %v\n", err)
		return
	}
	fmt.Printf("Report written to: %s\n", reportOutput)
}
