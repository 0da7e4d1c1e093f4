package cmd

import (
	"github.com/spf13/cobra"
)

var hullCmd = &cobra.Command{
	Use:   "hull",
	Short: "Hull geometry inspection and validation",
	Long: `Inspect and validate hull definition files.

A hull is defined in a JSON file as a series of transverse station
profiles. Each profile lists boundary points (y, z) in order from
one sheer down around the keel and up to the other sheer. Optional
bow and stern entries close the ends of the hull.

Subcommands:
  info      - Print dimensions and the station table
  validate  - Check profile consistency and symmetry

Example JSON file structure:
{
  "name": "tern",
  "units": "m",
  "water_density": 1025,
  "profiles": [
    {
      "station": 1.5,
      "points": [
        {"y": -0.28, "z": 0.30},
        {"y": 0.0, "z": 0.0},
        {"y": 0.28, "z": 0.30}
      ]
    }
  ],
  "bow": [{"x": 4.2, "z": 0.32}],
  "stern": [{"x": -0.5, "z": 0.30}]
}`,
}

func init() {
	rootCmd.AddCommand(hullCmd)
}
