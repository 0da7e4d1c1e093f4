package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/waterline"
	"github.com/spf13/cobra"
)

var (
	hydroDispFile     string
	hydroDispHeight   float64
	hydroDispHeel     float64
	hydroDispTrim     float64
	hydroDispDensity  string
	hydroDispStations int
	hydroDispMethod   string
	hydroDispInterp   string
	hydroDispExpand   bool
)

var hydroDisplacementCmd = &cobra.Command{
	Use:   "displacement",
	Short: "Displaced volume, mass and center of buoyancy",
	Long: `Calculate the displaced volume, displacement mass and center of
buoyancy of a hull floating at a given waterline.

Cross-sections are clipped against the waterline plane at each
evaluation station and integrated over the length.

Examples:
  # Level waterline 0.15 m above the keel, density from the file
  gohull hydro displacement --file tern.json --height 0.15

  # Heeled 10 degrees in seawater, trapezoid integration
  gohull hydro displacement -f tern.json -w 0.15 --heel 10 --density sea --method trapezoid`,
	Run: runHydroDisplacement,
}

func init() {
	hydroCmd.AddCommand(hydroDisplacementCmd)

	hydroDisplacementCmd.Flags().StringVarP(&hydroDispFile, "file", "f", "", "Path to hull JSON file [required]")
	hydroDisplacementCmd.MarkFlagRequired("file")

	hydroDisplacementCmd.Flags().Float64VarP(&hydroDispHeight, "height", "w", 0, "Waterline height (m) [required]")
	hydroDisplacementCmd.MarkFlagRequired("height")

	hydroDisplacementCmd.Flags().Float64Var(&hydroDispHeel, "heel", 0, "Heel angle (deg), positive to starboard")
	hydroDisplacementCmd.Flags().Float64Var(&hydroDispTrim, "trim", 0, "Trim angle (deg), positive bow down")
	hydroDisplacementCmd.Flags().StringVar(&hydroDispDensity, "density", "", "Water density: kg/m^3, 'fresh' or 'sea' (default: from file)")
	hydroDisplacementCmd.Flags().IntVarP(&hydroDispStations, "stations", "n", hydro.DefaultStations, "Evaluation stations (0 uses the stored stations)")
	hydroDisplacementCmd.Flags().StringVar(&hydroDispMethod, "method", "simpson", "Integration method: simpson or trapezoid")
	hydroDisplacementCmd.Flags().StringVar(&hydroDispInterp, "interp", "linear", "Section interpolation: linear or cubic")
	hydroDisplacementCmd.Flags().BoolVar(&hydroDispExpand, "expand", false, "Close bow and stern with taper profiles first")
}

func runHydroDisplacement(cmd *cobra.Command, args []string) {
	def, h, err := loadHull(hydroDispFile, hydroDispExpand)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}
	density, err := resolveDensity(hydroDispDensity, def)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	wl := waterline.New(hydroDispHeight, hydroDispHeel, hydroDispTrim)
	opts := hydro.Options{
		Stations: hydroDispStations,
		Method:   hydroDispMethod,
		Interp:   hydroDispInterp,
	}

	d, err := hydro.Displacement(h, wl, density, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HULL HYDROSTATICS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Hull: %s\n", def.Name)
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Hull file:\t%s\n", hydroDispFile)
	fmt.Fprintf(w, "  Waterline height:\t%.3f m\n", hydroDispHeight)
	fmt.Fprintf(w, "  Heel / trim:\t%.1f / %.1f deg\n", hydroDispHeel, hydroDispTrim)
	fmt.Fprintf(w, "  Water density:\t%.1f kg/m^3\n", density)
	fmt.Fprintf(w, "  Integration:\t%s, %d stations\n", opts.Method, d.Buoyancy.StationCount)
	if hydroDispExpand {
		fmt.Fprintf(w, "  End closure:\tbow/stern tapers added\n")
	} else {
		fmt.Fprintf(w, "  End closure:\tstored profiles only\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("DISPLACEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Displaced volume:\t%.4f m^3\n", d.Volume)
	fmt.Fprintf(w, "  Displacement:\t%.1f kg (%.4f t)\n", d.Mass, d.Tonnes)
	fmt.Fprintf(w, "  Buoyant force:\t%.1f N\n", d.Weight)
	w.Flush()
	fmt.Println()

	fmt.Println("CENTER OF BUOYANCY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  LCB (x):\t%.4f m\n", d.Buoyancy.LCB)
	fmt.Fprintf(w, "  TCB (y):\t%.4f m\n", d.Buoyancy.TCB)
	fmt.Fprintf(w, "  VCB (z):\t%.4f m\n", d.Buoyancy.VCB)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DISPLACEMENT Δ = %.1f kg at %.3f m waterline\n", d.Mass, hydroDispHeight)
	fmt.Printf("  ╚═════════════════════════════════════════════════╝\n")
	fmt.Println()
}
