package hullio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/hull"
	"github.com/paddlecraft/gohull/internal/interp"
	"github.com/paddlecraft/gohull/internal/water"
)

// DefaultTaperProfiles is the number of intermediate profiles
// generated per hull end when a definition is expanded.
const DefaultTaperProfiles = 3

// Definition is a loaded hull with its environment: the station
// profiles as a hull, the bow and stern end points, and the water
// density. All lengths are in meters regardless of the file's units.
type Definition struct {
	Name    string
	Density float64 // kg/m^3
	Hull    *hull.Hull
	Bow     []interp.EndPoint
	Stern   []interp.EndPoint
}

// Load reads and parses a hull definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("hullio: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse builds a Definition from raw JSON, validating the file and
// scaling all lengths to meters.
func Parse(data []byte) (*Definition, error) {
	var f HullFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("hullio: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	scale, err := unitScale(f.Units)
	if err != nil {
		return nil, err
	}

	name := f.Name
	if name == "" {
		name = "hull"
	}
	def := &Definition{
		Name:    name,
		Density: f.WaterDensity,
		Hull:    hull.New(name),
		Bow:     endPoints(f.Bow, scale),
		Stern:   endPoints(f.Stern, scale),
	}
	if def.Density == 0 {
		def.Density = water.FreshDensity
	}

	for i, pd := range f.Profiles {
		station := pd.Station * scale
		pts := make([]geometry.Point3D, len(pd.Points))
		var levels []string
		for j, pt := range pd.Points {
			pts[j] = geometry.Point3D{X: station, Y: pt.Y * scale, Z: pt.Z * scale}
			if pt.Level != "" {
				levels = append(levels, pt.Level)
			}
		}
		p, err := geometry.NewProfile(station, pts)
		if err != nil {
			return nil, fmt.Errorf("hullio: profile %d: %w", i, err)
		}
		if levels != nil {
			if err := p.SetLevels(levels); err != nil {
				return nil, fmt.Errorf("hullio: profile %d: %w", i, err)
			}
		}
		if err := def.Hull.AddProfile(p); err != nil {
			return nil, fmt.Errorf("hullio: profile %d: %w", i, err)
		}
	}
	return def, nil
}

func endPoints(defs []EndPointDef, scale float64) []interp.EndPoint {
	if len(defs) == 0 {
		return nil
	}
	out := make([]interp.EndPoint, len(defs))
	for i, e := range defs {
		out[i] = interp.EndPoint{
			Point: geometry.Point3D{X: e.X * scale, Y: e.Y * scale, Z: e.Z * scale},
			Level: e.Level,
		}
	}
	return out
}

// Marshal renders a Definition back to the file format, always in
// meters.
func Marshal(def *Definition) ([]byte, error) {
	f := HullFile{
		Name:         def.Name,
		Units:        "m",
		WaterDensity: def.Density,
		Bow:          endPointDefs(def.Bow),
		Stern:        endPointDefs(def.Stern),
	}
	for _, p := range def.Hull.Profiles() {
		pd := ProfileDef{Station: p.Station(), Points: make([]PointDef, p.Count())}
		levels := p.Levels()
		for i, pt := range p.Points() {
			pd.Points[i] = PointDef{Y: pt.Y, Z: pt.Z}
			if levels != nil {
				pd.Points[i].Level = levels[i]
			}
		}
		f.Profiles = append(f.Profiles, pd)
	}

	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("hullio: marshal: %w", err)
	}
	return append(data, '\n'), nil
}

func endPointDefs(ends []interp.EndPoint) []EndPointDef {
	if len(ends) == 0 {
		return nil
	}
	out := make([]EndPointDef, len(ends))
	for i, e := range ends {
		out[i] = EndPointDef{X: e.Point.X, Y: e.Point.Y, Z: e.Point.Z, Level: e.Level}
	}
	return out
}

// Save writes a Definition to a file.
func Save(path string, def *Definition) error {
	data, err := Marshal(def)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("hullio: write %s: %w", path, err)
	}
	return nil
}

// ExpandedHull returns a copy of the hull with the bow and stern
// closed by tapered profiles, n per end (0 selects the default). The
// stored hull is left untouched. End points must lie beyond the
// hull's end stations.
func (def *Definition) ExpandedHull(n int) (*hull.Hull, error) {
	if n <= 0 {
		n = DefaultTaperProfiles
	}
	h := def.Hull.Copy()
	stations := h.Stations()
	if len(stations) == 0 {
		return nil, fmt.Errorf("hullio: definition has no profiles")
	}

	if len(def.Bow) > 0 {
		if err := closeEnd(h, stations[len(stations)-1], def.Bow, n, "bow", func(x, end float64) bool {
			return x <= end
		}); err != nil {
			return nil, err
		}
	}
	if len(def.Stern) > 0 {
		if err := closeEnd(h, stations[0], def.Stern, n, "stern", func(x, end float64) bool {
			return x >= end
		}); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// closeEnd generates taper profiles from the outermost stored profile
// toward the given end points and adds them to the hull.
func closeEnd(h *hull.Hull, endStation float64, ends []interp.EndPoint, n int, where string, inside func(x, end float64) bool) error {
	for _, e := range ends {
		if inside(e.Point.X, endStation) {
			return fmt.Errorf("hullio: %s point at x=%.3f does not lie beyond the %s station %.3f",
				where, e.Point.X, where, endStation)
		}
	}
	end, err := h.Profile(endStation)
	if err != nil {
		return err
	}

	var profiles []*geometry.Profile
	if len(ends) == 1 && ends[0].Level == "" {
		profiles, err = interp.TaperToApex(end, ends[0].Point, n)
	} else {
		profiles, err = interp.TaperMultiPoint(end, ends, n, interp.MultiPointOptions{})
	}
	if err != nil {
		return fmt.Errorf("hullio: close %s: %w", where, err)
	}
	for _, p := range profiles {
		if err := h.AddProfile(p); err != nil {
			return fmt.Errorf("hullio: close %s: %w", where, err)
		}
	}
	return nil
}
