package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/paddlecraft/gohull/internal/hullio"
	"github.com/spf13/cobra"
)

var (
	hullInfoFile   string
	hullInfoExpand bool
)

var hullInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print hull dimensions and the station table",
	Long: `Print the principal dimensions of a hull and a table of its
station profiles.

With --expand the bow and stern taper profiles are generated first,
so the dimensions and the station table cover the closed hull.

Examples:
  gohull hull info --file tern.json
  gohull hull info -f tern.json --expand`,
	Run: runHullInfo,
}

func init() {
	hullCmd.AddCommand(hullInfoCmd)

	hullInfoCmd.Flags().StringVarP(&hullInfoFile, "file", "f", "", "Path to hull JSON file [required]")
	hullInfoCmd.MarkFlagRequired("file")

	hullInfoCmd.Flags().BoolVar(&hullInfoExpand, "expand", false, "Close bow and stern with taper profiles before measuring")
}

func runHullInfo(cmd *cobra.Command, args []string) {
	def, err := hullio.Load(hullInfoFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	h := def.Hull
	if hullInfoExpand {
		h, err = def.ExpandedHull(0)
		if err != nil {
			fmt.Printf("Error expanding hull: %v\n", err)
			return
		}
	}

	lo, hi := h.Bounds()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HULL GEOMETRY")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("PRINCIPAL DIMENSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name:\t%s\n", h.Name())
	fmt.Fprintf(w, "  Profiles:\t%d\n", h.Count())
	fmt.Fprintf(w, "  Length:\t%.3f m\n", h.Length())
	fmt.Fprintf(w, "  Max beam:\t%.3f m\n", h.MaxBeam())
	fmt.Fprintf(w, "  Depth:\t%.3f m\n", hi.Z-lo.Z)
	fmt.Fprintf(w, "  Stations:\t%.3f m to %.3f m\n", lo.X, hi.X)
	fmt.Fprintf(w, "  Bow / stern points:\t%d / %d\n", len(def.Bow), len(def.Stern))
	fmt.Fprintf(w, "  Water density:\t%.1f kg/m^3\n", def.Density)
	w.Flush()
	fmt.Println()

	fmt.Println("STATION TABLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Station (m)\tPoints\tBeam (m)\tDepth (m)\tTagged\n")
	fmt.Fprintf(w, "  ───────────\t──────\t────────\t─────────\t──────\n")
	for _, p := range h.Profiles() {
		tagged := "-"
		if p.Tagged() {
			tagged = "✓"
		}
		fmt.Fprintf(w, "  %.3f\t%d\t%.3f\t%.3f\t%s\n",
			p.Station(), p.Count(), p.Beam(), p.Depth(), tagged)
	}
	w.Flush()
	fmt.Println()
}
