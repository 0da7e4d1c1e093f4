// Package hullio reads and writes hull definition files. The format
// is JSON: a list of station profiles traced as transverse boundary
// points, optional bow and stern end points for closing the hull, and
// the water the hull floats in.
package hullio

import (
	"fmt"
	"math"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// centerlineTolerance is how far off y=0 an untagged bow or stern
// point may sit before it is rejected.
const centerlineTolerance = 1e-6

// HullFile is the on-disk hull definition.
type HullFile struct {
	Name         string        `json:"name"`
	Units        string        `json:"units,omitempty"`         // "m" (default), "cm", "mm"
	WaterDensity float64       `json:"water_density,omitempty"` // kg/m^3
	Profiles     []ProfileDef  `json:"profiles"`
	Bow          []EndPointDef `json:"bow,omitempty"`
	Stern        []EndPointDef `json:"stern,omitempty"`
}

// ProfileDef is one transverse section. Points are kept in the order
// written, tracing the section boundary from sheer to sheer.
type ProfileDef struct {
	Station float64    `json:"station"`
	Points  []PointDef `json:"points"`
}

// PointDef is one section point. Level optionally names the
// longitudinal line the point belongs to (sheer, chine, keel).
type PointDef struct {
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Level string  `json:"level,omitempty"`
}

// EndPointDef is a bow or stern end point. Untagged end points must
// sit on the centerline; tagged ones may carry any transverse
// position.
type EndPointDef struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y,omitempty"`
	Z     float64 `json:"z"`
	Level string  `json:"level,omitempty"`
}

// unitScale maps a units field to meters per unit.
func unitScale(units string) (float64, error) {
	switch units {
	case "", "m":
		return 1, nil
	case "cm":
		return 0.01, nil
	case "mm":
		return 0.001, nil
	default:
		return 0, fmt.Errorf("hullio: unknown units %q (use m, cm or mm)", units)
	}
}

// Validate checks the definition before it is turned into hull
// geometry.
func (f *HullFile) Validate() error {
	if len(f.Profiles) < 2 {
		return fmt.Errorf("hullio: need at least 2 profiles, got %d", len(f.Profiles))
	}
	if _, err := unitScale(f.Units); err != nil {
		return err
	}
	if f.WaterDensity < 0 {
		return fmt.Errorf("hullio: water density cannot be negative, got %.3f", f.WaterDensity)
	}

	for i, p := range f.Profiles {
		if len(p.Points) < geometry.MinProfilePoints {
			return fmt.Errorf("hullio: profile %d (station %.3f) has %d points, need at least %d",
				i, p.Station, len(p.Points), geometry.MinProfilePoints)
		}
		if i > 0 && p.Station <= f.Profiles[i-1].Station {
			return fmt.Errorf("hullio: stations must be strictly ascending, got %.3f after %.3f",
				p.Station, f.Profiles[i-1].Station)
		}
		if err := checkLevelUsage(p.Points, fmt.Sprintf("profile %d (station %.3f)", i, p.Station)); err != nil {
			return err
		}
	}

	if err := checkEndPoints(f.Bow, "bow"); err != nil {
		return err
	}
	return checkEndPoints(f.Stern, "stern")
}

// checkLevelUsage enforces all-or-none level tagging within one point
// list.
func checkLevelUsage(points []PointDef, where string) error {
	tagged := 0
	for _, pt := range points {
		if pt.Level != "" {
			tagged++
		}
	}
	if tagged != 0 && tagged != len(points) {
		return fmt.Errorf("hullio: %s mixes tagged and untagged points (%d of %d tagged)",
			where, tagged, len(points))
	}
	return nil
}

// checkEndPoints enforces the single-apex and multi-point rules on a
// bow or stern array.
func checkEndPoints(ends []EndPointDef, where string) error {
	tagged := 0
	for _, e := range ends {
		if e.Level != "" {
			tagged++
		}
	}
	if tagged != 0 && tagged != len(ends) {
		return fmt.Errorf("hullio: %s mixes tagged and untagged end points", where)
	}
	if tagged == 0 {
		if len(ends) > 1 {
			return fmt.Errorf("hullio: %s has %d untagged end points, a single apex is required without level tags",
				where, len(ends))
		}
		for _, e := range ends {
			if math.Abs(e.Y) > centerlineTolerance {
				return fmt.Errorf("hullio: untagged %s point must sit on the centerline, got y=%.4f", where, e.Y)
			}
		}
	}
	return nil
}
