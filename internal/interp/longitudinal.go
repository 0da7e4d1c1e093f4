package interp

import (
	"fmt"
	"log"
	"math"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// minBlendPoints is the floor on the point count of a blended profile.
const minBlendPoints = 10

// Longitudinal builds the cross-section at target station t by
// blending the two bracketing profiles. Both profiles are resampled
// onto a common transverse domain and z is mixed linearly with the
// station fraction alpha = (t - s1) / (s2 - s1). The profiles are
// ordered by station automatically; t must lie within [s1, s2].
//
// The common domain is the intersection of the two y ranges. If the
// ranges do not overlap at all (an unusual hull), the union is used
// instead and a warning is logged, with each profile clamped to its
// own edge values outside its range.
func Longitudinal(p1, p2 *geometry.Profile, t float64, method string) (*geometry.Profile, error) {
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("longitudinal: nil profile")
	}
	a, b := p1, p2
	if a.Station() > b.Station() {
		a, b = b, a
	}
	s1, s2 := a.Station(), b.Station()
	if math.Abs(s2-s1) <= geometry.DefaultTolerance {
		return nil, fmt.Errorf("longitudinal: profiles share station %.3f", s1)
	}
	if t < s1-geometry.DefaultTolerance || t > s2+geometry.DefaultTolerance {
		return nil, fmt.Errorf("longitudinal: target station %.3f outside [%.3f, %.3f]", t, s1, s2)
	}
	alpha := (t - s1) / (s2 - s1)
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}

	y1a, z1 := sectionCurve(a.Points())
	y2a, z2 := sectionCurve(b.Points())
	if len(y1a) < 2 || len(y2a) < 2 {
		return nil, fmt.Errorf("longitudinal: degenerate section between stations %.3f and %.3f", s1, s2)
	}

	lo := math.Max(y1a[0], y2a[0])
	hi := math.Min(y1a[len(y1a)-1], y2a[len(y2a)-1])
	if lo >= hi {
		lo = math.Min(y1a[0], y2a[0])
		hi = math.Max(y1a[len(y1a)-1], y2a[len(y2a)-1])
		log.Printf("interp: sections at %.3f and %.3f share no transverse overlap, blending over union [%.3f, %.3f]",
			s1, s2, lo, hi)
	}

	ev1, err := newEvaluator(y1a, z1, method)
	if err != nil {
		return nil, err
	}
	ev2, err := newEvaluator(y2a, z2, method)
	if err != nil {
		return nil, err
	}

	count := (a.Count() + b.Count() + 1) / 2
	if count < minBlendPoints {
		count = minBlendPoints
	}

	pts := make([]geometry.Point3D, count)
	for i := range pts {
		y := lo + (hi-lo)*float64(i)/float64(count-1)
		z := (1-alpha)*ev1.eval(y) + alpha*ev2.eval(y)
		pts[i] = geometry.Point3D{X: t, Y: y, Z: z}
	}
	return geometry.NewProfile(t, pts)
}
