package geometry

import (
	"fmt"
	"math"
	"sort"
)

// MinProfilePoints is the minimum number of points for a valid closed
// cross-section.
const MinProfilePoints = 3

// Profile is one transverse cross-section of the hull: an ordered
// sequence of points that all share the same longitudinal station.
// The boundary is closed implicitly from the last point back to the
// first (the deck line for a typical open section).
//
// A Profile is a mutable container owned by its caller; every mutation
// re-checks the station invariant.
type Profile struct {
	station float64
	points  []Point3D

	// levels optionally names the vertical "level" each point belongs
	// to (keel, chine, gunwale, ...). Either empty, or parallel to
	// points with every entry non-empty.
	levels []string
}

// NewProfile creates a profile at the given station. Every point's X
// must match the station within DefaultTolerance, and at least
// MinProfilePoints points are required.
func NewProfile(station float64, points []Point3D) (*Profile, error) {
	if len(points) < MinProfilePoints {
		return nil, fmt.Errorf("profile at station %.3f: need at least %d points, got %d",
			station, MinProfilePoints, len(points))
	}
	for i, pt := range points {
		if math.Abs(pt.X-station) > DefaultTolerance {
			return nil, fmt.Errorf("profile at station %.3f: point %d has x=%.6f", station, i, pt.X)
		}
	}
	pts := make([]Point3D, len(points))
	copy(pts, points)
	return &Profile{station: station, points: pts}, nil
}

// MustProfile is NewProfile that panics on error. Intended for fixed
// geometry in tests and examples.
func MustProfile(station float64, points []Point3D) *Profile {
	p, err := NewProfile(station, points)
	if err != nil {
		panic(err)
	}
	return p
}

// Station returns the longitudinal position of the section.
func (p *Profile) Station() float64 { return p.station }

// Count returns the number of boundary points.
func (p *Profile) Count() int { return len(p.points) }

// Points returns a copy of the boundary points in order.
func (p *Profile) Points() []Point3D {
	pts := make([]Point3D, len(p.points))
	copy(pts, p.points)
	return pts
}

// Point returns the i-th boundary point.
func (p *Profile) Point(i int) Point3D { return p.points[i] }

// AddPoint appends a point to the boundary. The point's X must match
// the profile station, and the profile must be untagged (tagged
// profiles grow through AddLevelPoint).
func (p *Profile) AddPoint(pt Point3D) error {
	if math.Abs(pt.X-p.station) > DefaultTolerance {
		return fmt.Errorf("profile at station %.3f: cannot add point with x=%.6f", p.station, pt.X)
	}
	if p.levels != nil {
		return fmt.Errorf("profile at station %.3f: level-tagged profile requires AddLevelPoint", p.station)
	}
	p.points = append(p.points, pt)
	return nil
}

// AddLevelPoint appends a point with its level tag to a tagged profile.
func (p *Profile) AddLevelPoint(pt Point3D, level string) error {
	if math.Abs(pt.X-p.station) > DefaultTolerance {
		return fmt.Errorf("profile at station %.3f: cannot add point with x=%.6f", p.station, pt.X)
	}
	if p.levels == nil {
		return fmt.Errorf("profile at station %.3f: profile is not level-tagged", p.station)
	}
	if level == "" {
		return fmt.Errorf("profile at station %.3f: empty level tag", p.station)
	}
	p.points = append(p.points, pt)
	p.levels = append(p.levels, level)
	return nil
}

// SetLevels assigns a level name to every point. The slice must be
// parallel to the points and every entry non-empty; passing nil clears
// the tags.
func (p *Profile) SetLevels(levels []string) error {
	if levels == nil {
		p.levels = nil
		return nil
	}
	if len(levels) != len(p.points) {
		return fmt.Errorf("profile at station %.3f: %d level tags for %d points",
			p.station, len(levels), len(p.points))
	}
	for i, lv := range levels {
		if lv == "" {
			return fmt.Errorf("profile at station %.3f: empty level tag at point %d", p.station, i)
		}
	}
	tags := make([]string, len(levels))
	copy(tags, levels)
	p.levels = tags
	return nil
}

// Levels returns a copy of the per-point level tags, or nil when the
// profile is untagged.
func (p *Profile) Levels() []string {
	if p.levels == nil {
		return nil
	}
	tags := make([]string, len(p.levels))
	copy(tags, p.levels)
	return tags
}

// Tagged reports whether every point carries a level tag.
func (p *Profile) Tagged() bool { return p.levels != nil }

// YRange returns the minimum and maximum transverse coordinates.
func (p *Profile) YRange() (min, max float64) {
	min, max = p.points[0].Y, p.points[0].Y
	for _, pt := range p.points[1:] {
		min = math.Min(min, pt.Y)
		max = math.Max(max, pt.Y)
	}
	return min, max
}

// ZRange returns the minimum and maximum vertical coordinates.
func (p *Profile) ZRange() (min, max float64) {
	min, max = p.points[0].Z, p.points[0].Z
	for _, pt := range p.points[1:] {
		min = math.Min(min, pt.Z)
		max = math.Max(max, pt.Z)
	}
	return min, max
}

// Beam returns the section width (y_max − y_min).
func (p *Profile) Beam() float64 {
	min, max := p.YRange()
	return max - min
}

// Depth returns the section height (z_max − z_min).
func (p *Profile) Depth() float64 {
	min, max := p.ZRange()
	return max - min
}

// SortByY reorders the points by ascending transverse coordinate,
// carrying level tags along. Used to prepare a section for
// single-valued z(y) interpolation.
func (p *Profile) SortByY() {
	idx := make([]int, len(p.points))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.points[idx[a]].Y < p.points[idx[b]].Y
	})
	pts := make([]Point3D, len(p.points))
	for i, j := range idx {
		pts[i] = p.points[j]
	}
	p.points = pts
	if p.levels != nil {
		tags := make([]string, len(p.levels))
		for i, j := range idx {
			tags[i] = p.levels[j]
		}
		p.levels = tags
	}
}

// Translate returns a copy of the profile shifted by (dx, dy, dz).
// A longitudinal shift moves the station with the points, preserving
// the x-tagging invariant.
func (p *Profile) Translate(dx, dy, dz float64) *Profile {
	out := p.Copy()
	out.station += dx
	for i := range out.points {
		out.points[i] = out.points[i].Translate(dx, dy, dz)
	}
	return out
}

// RotateX returns a copy of the profile heeled by deg degrees about a
// longitudinal axis through (y0, z0). The station is unchanged.
func (p *Profile) RotateX(deg, y0, z0 float64) *Profile {
	out := p.Copy()
	for i, pt := range out.points {
		shifted := Point3D{X: pt.X, Y: pt.Y - y0, Z: pt.Z - z0}
		r := shifted.RotateX(deg)
		out.points[i] = Point3D{X: r.X, Y: r.Y + y0, Z: r.Z + z0}
	}
	return out
}

// Copy returns a deep copy of the profile.
func (p *Profile) Copy() *Profile {
	out := &Profile{station: p.station}
	out.points = make([]Point3D, len(p.points))
	copy(out.points, p.points)
	if p.levels != nil {
		out.levels = make([]string, len(p.levels))
		copy(out.levels, p.levels)
	}
	return out
}

// LevelGroups returns the point indices grouped by level tag. Returns
// nil when the profile is untagged.
func (p *Profile) LevelGroups() map[string][]int {
	if p.levels == nil {
		return nil
	}
	groups := make(map[string][]int)
	for i, lv := range p.levels {
		groups[lv] = append(groups[lv], i)
	}
	return groups
}
