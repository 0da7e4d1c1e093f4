package cmd

import (
	"github.com/paddlecraft/gohull/internal/hull"
	"github.com/paddlecraft/gohull/internal/hullio"
	"github.com/paddlecraft/gohull/internal/water"
	"github.com/spf13/cobra"
)

var hydroCmd = &cobra.Command{
	Use:   "hydro",
	Short: "Hydrostatics at a given waterline",
	Long: `Compute hydrostatic properties of a hull floating at a given
waterline.

The waterline plane is set by --height and the optional --heel and
--trim angles. Heights are measured in the hull's z coordinate,
heel is positive to starboard and trim is positive bow down.

Subcommands:
  displacement - Displaced volume, mass and center of buoyancy
  sections     - Per-station cross-section table and diagrams`,
}

func init() {
	rootCmd.AddCommand(hydroCmd)
}

// loadHull loads a definition file and optionally closes the ends
// with taper profiles.
func loadHull(path string, expand bool) (*hullio.Definition, *hull.Hull, error) {
	def, err := hullio.Load(path)
	if err != nil {
		return nil, nil, err
	}
	h := def.Hull
	if expand {
		h, err = def.ExpandedHull(0)
		if err != nil {
			return nil, nil, err
		}
	}
	return def, h, nil
}

// resolveDensity picks the water density from the flag value, falling
// back to the definition file. The flag accepts "fresh", "sea" or a
// number in kg/m^3.
func resolveDensity(spec string, def *hullio.Definition) (float64, error) {
	if spec == "" {
		return def.Density, nil
	}
	return water.Density(spec)
}
