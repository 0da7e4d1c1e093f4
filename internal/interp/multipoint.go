package interp

import (
	"fmt"
	"math"
	"sort"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// DefaultZTolerance groups section points into height bands when
// matching them to end points by position. It suits hulls defined in
// meters; override it through MultiPointOptions for other scales.
const DefaultZTolerance = 0.15

// EndPoint is one terminal point of a multi-point taper, such as the
// stem head or the keel forefoot. Level associates the end point with
// a tagged level of the profile; it is ignored when either side lacks
// tags and matching falls back to z position.
type EndPoint struct {
	Point geometry.Point3D
	Level string
}

// MultiPointOptions tunes multi-point tapering.
type MultiPointOptions struct {
	// ZTolerance is the height band within which section points are
	// grouped when matching by position. Zero selects the default.
	ZTolerance float64
}

// taperSource pairs one section point with the end point it converges
// to. The slice order of sources preserves the section boundary order.
type taperSource struct {
	pt  geometry.Point3D
	end EndPoint
}

// TaperMultiPoint generates n intermediate profiles between an end
// profile and several end points with distinct longitudinal reaches,
// such as a raked stem where the sheer ends further forward than the
// keel. Each section point converges toward its matched end point;
// the taper fraction is computed against that end point's own station
// and clamped to [0, 1], so shorter runs collapse onto their end point
// and hold while longer runs keep converging.
//
// Matching is by level tag when the profile is tagged and every end
// point names a level, and by z position otherwise. The intermediate
// stations divide the span up to the furthest end point evenly,
// excluding both the profile and that end point.
func TaperMultiPoint(end *geometry.Profile, ends []EndPoint, n int, opts MultiPointOptions) ([]*geometry.Profile, error) {
	if end == nil {
		return nil, fmt.Errorf("taper: nil profile")
	}
	if len(ends) == 0 {
		return nil, fmt.Errorf("taper: no end points given")
	}
	if n < 1 {
		return nil, fmt.Errorf("taper: need at least 1 intermediate profile, got %d", n)
	}
	if opts.ZTolerance <= 0 {
		opts.ZTolerance = DefaultZTolerance
	}

	s := end.Station()
	dir := 0.0
	far := s
	for _, e := range ends {
		d := e.Point.X - s
		if math.Abs(d) <= geometry.DefaultTolerance {
			return nil, fmt.Errorf("taper: end point station %.3f coincides with profile station %.3f", e.Point.X, s)
		}
		sign := 1.0
		if d < 0 {
			sign = -1
		}
		if dir == 0 {
			dir = sign
		} else if dir != sign {
			return nil, fmt.Errorf("taper: end points straddle the profile station %.3f", s)
		}
		if math.Abs(d) > math.Abs(far-s) {
			far = e.Point.X
		}
	}

	var sources []taperSource
	if levelMode(end, ends) {
		sources = matchByLevel(end, ends)
	} else {
		sources = matchByPosition(end, ends, opts.ZTolerance)
	}

	out := make([]*geometry.Profile, 0, n)
	for i := 1; i <= n; i++ {
		station := s + (far-s)*float64(i)/float64(n+1)

		pts := make([]geometry.Point3D, 0, len(sources))
		for _, src := range sources {
			t := (station - s) / (src.end.Point.X - s)
			if t > 1 {
				t = 1
			}
			pts = append(pts, geometry.Point3D{
				X: station,
				Y: src.pt.Y*(1-t) + src.end.Point.Y*t,
				Z: src.pt.Z*(1-t) + src.end.Point.Z*t,
			})
		}
		pts = dropCollapsedRuns(pts)

		p, err := geometry.NewProfile(station, pts)
		if err != nil {
			return nil, fmt.Errorf("taper at station %.3f: %w", station, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// levelMode reports whether matching can use level tags: the profile
// must be tagged and every end point must name a level.
func levelMode(end *geometry.Profile, ends []EndPoint) bool {
	if !end.Tagged() {
		return false
	}
	for _, e := range ends {
		if e.Level == "" {
			return false
		}
	}
	return true
}

// matchByLevel pairs each tagged section point with the end point of
// its level. Levels present only on one side are reconciled: a section
// level with no end point falls back to the nearest end point in z,
// and an end point whose level is absent from the section is seeded
// from the section's nearest representative point.
func matchByLevel(end *geometry.Profile, ends []EndPoint) []taperSource {
	byLevel := make(map[string][]EndPoint)
	for _, e := range ends {
		byLevel[e.Level] = append(byLevel[e.Level], e)
	}

	pts := end.Points()
	levels := end.Levels()
	sources := make([]taperSource, len(pts))
	for i, pt := range pts {
		cands := byLevel[levels[i]]
		if len(cands) == 0 {
			cands = ends
		}
		sources[i] = taperSource{pt: pt, end: pickEnd(cands, pt)}
	}

	// Seed levels that exist only in the end points from the nearest
	// section point so they still produce a converging trace.
	seen := make(map[string]bool, len(levels))
	for _, lv := range levels {
		seen[lv] = true
	}
	for _, e := range ends {
		if seen[e.Level] {
			continue
		}
		seen[e.Level] = true
		ri := representativeIndex(pts, e)
		src := taperSource{pt: pts[ri], end: e}
		sources = append(sources[:ri+1], append([]taperSource{src}, sources[ri+1:]...)...)
		pts = append(pts[:ri+1], append([]geometry.Point3D{pts[ri]}, pts[ri+1:]...)...)
	}
	return sources
}

// matchByPosition groups section points into height bands and pairs
// each band with the end point nearest the band's mean height. Side
// breaks ties within a band so paired port and starboard end points at
// the same height each claim their own side.
func matchByPosition(end *geometry.Profile, ends []EndPoint, zTol float64) []taperSource {
	pts := end.Points()
	order := make([]int, len(pts))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return pts[order[a]].Z < pts[order[b]].Z })

	sources := make([]taperSource, len(pts))
	for start := 0; start < len(order); {
		stop := start + 1
		sum := pts[order[start]].Z
		for stop < len(order) && pts[order[stop]].Z-pts[order[start]].Z <= zTol {
			sum += pts[order[stop]].Z
			stop++
		}
		cands := nearestByZ(ends, sum/float64(stop-start))
		for _, idx := range order[start:stop] {
			sources[idx] = taperSource{pt: pts[idx], end: pickEnd(cands, pts[idx])}
		}
		start = stop
	}
	return sources
}

// nearestByZ returns every end point whose height is closest to z,
// keeping ties so paired port and starboard ends both survive.
func nearestByZ(ends []EndPoint, z float64) []EndPoint {
	best := math.Inf(1)
	for _, e := range ends {
		if d := math.Abs(e.Point.Z - z); d < best {
			best = d
		}
	}
	out := make([]EndPoint, 0, 2)
	for _, e := range ends {
		if math.Abs(e.Point.Z-z)-best <= geometry.DefaultTolerance {
			out = append(out, e)
		}
	}
	return out
}

// pickEnd selects the end point nearest the section point in z,
// breaking ties by matching side and then by transverse distance.
func pickEnd(cands []EndPoint, pt geometry.Point3D) EndPoint {
	best := cands[0]
	for _, e := range cands[1:] {
		dz, bdz := math.Abs(e.Point.Z-pt.Z), math.Abs(best.Point.Z-pt.Z)
		switch {
		case dz < bdz-geometry.DefaultTolerance:
			best = e
		case dz > bdz+geometry.DefaultTolerance:
		case sideMatches(e.Point.Y, pt.Y) && !sideMatches(best.Point.Y, pt.Y):
			best = e
		case sideMatches(e.Point.Y, pt.Y) == sideMatches(best.Point.Y, pt.Y) &&
			math.Abs(e.Point.Y-pt.Y) < math.Abs(best.Point.Y-pt.Y):
			best = e
		}
	}
	return best
}

// sideMatches reports whether two transverse positions lie on the same
// side of the centerline. A centerline position matches either side.
func sideMatches(a, b float64) bool {
	if math.Abs(a) <= geometry.DefaultTolerance || math.Abs(b) <= geometry.DefaultTolerance {
		return true
	}
	return (a > 0) == (b > 0)
}

// representativeIndex finds the section point that best stands in for
// an end point with no level of its own: nearest in z, side preferred.
func representativeIndex(pts []geometry.Point3D, e EndPoint) int {
	best := 0
	for i := 1; i < len(pts); i++ {
		dz, bdz := math.Abs(pts[i].Z-e.Point.Z), math.Abs(pts[best].Z-e.Point.Z)
		switch {
		case dz < bdz-geometry.DefaultTolerance:
			best = i
		case dz > bdz+geometry.DefaultTolerance:
		case sideMatches(pts[i].Y, e.Point.Y) && !sideMatches(pts[best].Y, e.Point.Y):
			best = i
		}
	}
	return best
}

// dropCollapsedRuns removes consecutive duplicate points produced by
// levels that have fully collapsed onto a shared end point, keeping
// at least the profile minimum.
func dropCollapsedRuns(pts []geometry.Point3D) []geometry.Point3D {
	if len(pts) <= geometry.MinProfilePoints {
		return pts
	}
	out := pts[:1]
	for _, pt := range pts[1:] {
		last := out[len(out)-1]
		if math.Abs(pt.Y-last.Y) <= geometry.DefaultTolerance && math.Abs(pt.Z-last.Z) <= geometry.DefaultTolerance {
			continue
		}
		out = append(out, pt)
	}
	if len(out) < geometry.MinProfilePoints {
		return pts
	}
	return out
}
