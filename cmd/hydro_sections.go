package cmd

import (
	"fmt"
	"os"

	"github.com/paddlecraft/gohull/internal/diagram"
	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/report"
	"github.com/paddlecraft/gohull/internal/waterline"
	"github.com/spf13/cobra"
)

var (
	hydroSectionsFile    string
	hydroSectionsHeight  float64
	hydroSectionsHeel    float64
	hydroSectionsTrim    float64
	hydroSectionsCount   int
	hydroSectionsInterp  string
	hydroSectionsExpand  bool
	hydroSectionsCSV     string
	hydroSectionsAreas   string
	hydroSectionsAt      float64
	hydroSectionsDiagram bool
	hydroSectionsOutput  string
)

var hydroSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Per-station cross-section table and diagrams",
	Long: `Tabulate the submerged cross-section at each evaluation station:
area, centroid, waterline beam and draft.

With --diagram or --output one station is also drawn with its
waterline and submerged area, as ASCII art or an image file. The
station defaults to mid-length and is set with --at.

Examples:
  gohull hydro sections --file tern.json --height 0.15
  gohull hydro sections -f tern.json -w 0.15 --csv sections.csv
  gohull hydro sections -f tern.json -w 0.15 --at 2.4 --diagram
  gohull hydro sections -f tern.json -w 0.15 --at 2.4 -o section.png`,
	Run: runHydroSections,
}

func init() {
	hydroCmd.AddCommand(hydroSectionsCmd)

	hydroSectionsCmd.Flags().StringVarP(&hydroSectionsFile, "file", "f", "", "Path to hull JSON file [required]")
	hydroSectionsCmd.MarkFlagRequired("file")

	hydroSectionsCmd.Flags().Float64VarP(&hydroSectionsHeight, "height", "w", 0, "Waterline height (m) [required]")
	hydroSectionsCmd.MarkFlagRequired("height")

	hydroSectionsCmd.Flags().Float64Var(&hydroSectionsHeel, "heel", 0, "Heel angle (deg), positive to starboard")
	hydroSectionsCmd.Flags().Float64Var(&hydroSectionsTrim, "trim", 0, "Trim angle (deg), positive bow down")
	hydroSectionsCmd.Flags().IntVarP(&hydroSectionsCount, "stations", "n", hydro.DefaultStations, "Evaluation stations (0 uses the stored stations)")
	hydroSectionsCmd.Flags().StringVar(&hydroSectionsInterp, "interp", "linear", "Section interpolation: linear or cubic")
	hydroSectionsCmd.Flags().BoolVar(&hydroSectionsExpand, "expand", false, "Close bow and stern with taper profiles first")

	hydroSectionsCmd.Flags().StringVar(&hydroSectionsCSV, "csv", "", "Export the section table to a CSV file")
	hydroSectionsCmd.Flags().StringVar(&hydroSectionsAreas, "areas", "", "Export the sectional area curve image (png, svg, pdf)")
	hydroSectionsCmd.Flags().Float64Var(&hydroSectionsAt, "at", 0, "Station for --diagram/--output (default: mid-length)")
	hydroSectionsCmd.Flags().BoolVar(&hydroSectionsDiagram, "diagram", false, "Draw the section at --at as ASCII art")
	hydroSectionsCmd.Flags().StringVarP(&hydroSectionsOutput, "output", "o", "", "Export the section at --at to an image file (png, svg, pdf)")
}

func runHydroSections(cmd *cobra.Command, args []string) {
	def, h, err := loadHull(hydroSectionsFile, hydroSectionsExpand)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	wl := waterline.New(hydroSectionsHeight, hydroSectionsHeel, hydroSectionsTrim)
	opts := hydro.Options{Stations: hydroSectionsCount, Interp: hydroSectionsInterp}

	secs, err := hydro.Sections(h, wl, opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CROSS-SECTIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Hull: %s\n", def.Name)
	fmt.Printf("  Waterline: %.3f m, heel %.1f deg, trim %.1f deg\n",
		hydroSectionsHeight, hydroSectionsHeel, hydroSectionsTrim)
	fmt.Println()

	fmt.Print(report.SectionsText(secs))
	fmt.Println()

	wet := 0
	maxArea, maxAt := 0.0, 0.0
	for _, s := range secs {
		if !s.Valid() {
			continue
		}
		wet++
		if s.Area > maxArea {
			maxArea, maxAt = s.Area, s.Station
		}
	}
	fmt.Printf("  %d of %d stations submerged, max area %.4f m^2 at %.3f m\n",
		wet, len(secs), maxArea, maxAt)
	fmt.Println()

	if hydroSectionsCSV != "" {
		f, err := os.Create(hydroSectionsCSV)
		if err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		err = report.WriteSectionsCSV(f, secs)
		f.Close()
		if err != nil {
			fmt.Printf("Error writing CSV: %v\n", err)
			return
		}
		fmt.Printf("Section table exported to: %s\n", hydroSectionsCSV)
	}

	if hydroSectionsAreas != "" {
		if err := diagram.ExportAreaCurve(secs, hydroSectionsAreas); err != nil {
			fmt.Printf("Error exporting area curve: %v\n", err)
			return
		}
		fmt.Printf("Area curve exported to: %s\n", hydroSectionsAreas)
	}

	if hydroSectionsDiagram || hydroSectionsOutput != "" {
		stations := h.Stations()
		at := (stations[0] + stations[len(stations)-1]) / 2
		if cmd.Flags().Changed("at") {
			at = hydroSectionsAt
		}
		p, err := h.ProfileAt(at, hydroSectionsInterp)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if hydroSectionsDiagram {
			fmt.Println(diagram.DrawSectionASCII(p, wl))
		}
		if hydroSectionsOutput != "" {
			if err := diagram.ExportSectionDiagram(p, wl, hydroSectionsOutput); err != nil {
				fmt.Printf("Error exporting diagram: %v\n", err)
				return
			}
			fmt.Printf("Section diagram exported to: %s\n", hydroSectionsOutput)
		}
	}
}
