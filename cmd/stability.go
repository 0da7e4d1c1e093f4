package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/spf13/cobra"
)

var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Righting arm and stability analysis",
	Long: `Analyze the transverse stability of a hull for a given loading
condition.

The loading condition is either a single point mass (--mass with
--lcg/--tcg/--vcg) or a set of components given with repeated
--load flags. Each --load takes "name:mass:x:y:z" with mass in kg
and coordinates in meters.

The hull heels about its longitudinal axis while the waterline
stays level. GZ is the transverse lever between the center of
gravity and the center of buoyancy, measured in the earth frame.
Positive GZ rights the hull.

Subcommands:
  gz     - Righting arm at a single heel angle
  curve  - Righting arm curve with stability metrics`,
}

func init() {
	rootCmd.AddCommand(stabilityCmd)
}

// resolveCG builds the center of gravity from a single point mass or
// from repeated --load components.
func resolveCG(loads []string, mass, lcg, tcg, vcg float64) (stability.CenterOfGravity, error) {
	if len(loads) > 0 {
		comps := make([]stability.MassComponent, 0, len(loads))
		for _, spec := range loads {
			c, err := parseLoad(spec)
			if err != nil {
				return stability.CenterOfGravity{}, err
			}
			comps = append(comps, c)
		}
		cg, err := stability.Aggregate(comps)
		if err != nil {
			return stability.CenterOfGravity{}, err
		}
		return *cg, nil
	}
	if mass <= 0 {
		return stability.CenterOfGravity{}, fmt.Errorf("provide --mass or at least one --load")
	}
	return stability.CenterOfGravity{TotalMass: mass, LCG: lcg, TCG: tcg, VCG: vcg}, nil
}

// parseLoad parses one "name:mass:x:y:z" component.
func parseLoad(spec string) (stability.MassComponent, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 5 {
		return stability.MassComponent{}, fmt.Errorf("load %q: want name:mass:x:y:z", spec)
	}
	vals := make([]float64, 4)
	for i, s := range parts[1:] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return stability.MassComponent{}, fmt.Errorf("load %q: bad number %q", spec, s)
		}
		vals[i] = v
	}
	return stability.MassComponent{
		Name: parts[0],
		Mass: vals[0],
		X:    vals[1],
		Y:    vals[2],
		Z:    vals[3],
	}, nil
}
