// Package interp turns the discrete hull definition into continuous
// geometry: transverse resampling within one cross-section,
// longitudinal blending between two cross-sections, and bow/stern
// tapering toward one or several apex points.
//
// Interpolation and spacing methods are selected by name so that
// callers (and input files) can carry them as plain strings; unknown
// names are reported as errors.
package interp

import (
	"fmt"
	"math"
	"sort"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// Interpolation methods for resampling z over y.
const (
	MethodLinear = "linear"
	MethodCubic  = "cubic"
)

// Spacing modes for distributing resampled points.
const (
	SpacingUniform   = "uniform"
	SpacingArcLength = "arclength"
)

// ResampleSection redistributes a set of section points onto n points.
// The input points must all share one station and may be unordered;
// they are sorted by y first. Spacing selects how the new y positions
// are distributed (uniform in y, or uniform in arc length along the
// section curve) and method selects how z is interpolated (linear or
// natural cubic spline). The section is treated as a single-valued
// curve z(y); points closer than the default tolerance in y are merged
// by averaging their z.
func ResampleSection(points []geometry.Point3D, n int, method, spacing string) ([]geometry.Point3D, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("resample: need at least 2 points, got %d", len(points))
	}
	if n < 2 {
		return nil, fmt.Errorf("resample: need at least 2 output points, got %d", n)
	}
	if method != MethodLinear && method != MethodCubic {
		return nil, fmt.Errorf("resample: unknown interpolation method %q", method)
	}
	if spacing != SpacingUniform && spacing != SpacingArcLength {
		return nil, fmt.Errorf("resample: unknown spacing mode %q", spacing)
	}

	station := points[0].X
	for i, pt := range points[1:] {
		if math.Abs(pt.X-station) > geometry.DefaultTolerance {
			return nil, fmt.Errorf("resample: point %d has x=%.6f, expected station %.6f", i+1, pt.X, station)
		}
	}

	ys, zs := sectionCurve(points)
	if len(ys) < 2 {
		return nil, fmt.Errorf("resample: section collapses to a single transverse position")
	}

	ev, err := newEvaluator(ys, zs, method)
	if err != nil {
		return nil, err
	}

	targets := make([]float64, n)
	switch spacing {
	case SpacingUniform:
		lo, hi := ys[0], ys[len(ys)-1]
		for i := range targets {
			targets[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		}
	case SpacingArcLength:
		targets = arcLengthTargets(ys, zs, n)
	}

	out := make([]geometry.Point3D, n)
	for i, y := range targets {
		out[i] = geometry.Point3D{X: station, Y: y, Z: ev.eval(y)}
	}
	return out, nil
}

// ResampleProfile is ResampleSection applied to a profile, returning a
// new profile at the same station. Level tags do not survive
// resampling.
func ResampleProfile(p *geometry.Profile, n int, method, spacing string) (*geometry.Profile, error) {
	pts, err := ResampleSection(p.Points(), n, method, spacing)
	if err != nil {
		return nil, fmt.Errorf("resample profile at station %.3f: %w", p.Station(), err)
	}
	if len(pts) < geometry.MinProfilePoints {
		return nil, fmt.Errorf("resample profile at station %.3f: %d points is below the profile minimum",
			p.Station(), len(pts))
	}
	return geometry.NewProfile(p.Station(), pts)
}

// sectionCurve sorts points by y and merges near-duplicate y values,
// returning the single-valued (y, z) curve.
func sectionCurve(points []geometry.Point3D) (ys, zs []float64) {
	sorted := make([]geometry.Point3D, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Y < sorted[b].Y })

	for _, pt := range sorted {
		k := len(ys)
		if k > 0 && math.Abs(pt.Y-ys[k-1]) <= geometry.DefaultTolerance {
			zs[k-1] = (zs[k-1] + pt.Z) / 2
			continue
		}
		ys = append(ys, pt.Y)
		zs = append(zs, pt.Z)
	}
	return ys, zs
}

// arcLengthTargets distributes n y positions so that they are evenly
// spaced along the (y, z) polyline rather than along the y axis.
func arcLengthTargets(ys, zs []float64, n int) []float64 {
	cum := make([]float64, len(ys))
	for i := 1; i < len(ys); i++ {
		cum[i] = cum[i-1] + math.Hypot(ys[i]-ys[i-1], zs[i]-zs[i-1])
	}
	total := cum[len(cum)-1]
	if total == 0 {
		// Degenerate flat section; fall back to uniform y.
		targets := make([]float64, n)
		lo, hi := ys[0], ys[len(ys)-1]
		for i := range targets {
			targets[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		return targets
	}

	targets := make([]float64, n)
	seg := 1
	for i := range targets {
		s := total * float64(i) / float64(n-1)
		for seg < len(cum)-1 && cum[seg] < s {
			seg++
		}
		span := cum[seg] - cum[seg-1]
		frac := 0.0
		if span > 0 {
			frac = (s - cum[seg-1]) / span
		}
		targets[i] = ys[seg-1] + frac*(ys[seg]-ys[seg-1])
	}
	return targets
}

// evaluator interpolates z over y for a sorted, strictly increasing
// set of knots. Evaluation outside the knot range clamps to the end
// values.
type evaluator struct {
	ys, zs []float64
	// m holds second derivatives for the cubic spline; nil for linear.
	m []float64
}

func newEvaluator(ys, zs []float64, method string) (*evaluator, error) {
	ev := &evaluator{ys: ys, zs: zs}
	switch method {
	case MethodLinear:
	case MethodCubic:
		if len(ys) >= 3 {
			ev.m = naturalSplineMoments(ys, zs)
		}
	default:
		return nil, fmt.Errorf("unknown interpolation method %q", method)
	}
	return ev, nil
}

func (ev *evaluator) eval(y float64) float64 {
	n := len(ev.ys)
	if y <= ev.ys[0] {
		return ev.zs[0]
	}
	if y >= ev.ys[n-1] {
		return ev.zs[n-1]
	}
	// Binary search for the segment with ys[i] <= y < ys[i+1].
	i := sort.SearchFloat64s(ev.ys, y)
	if i > 0 {
		i--
	}
	h := ev.ys[i+1] - ev.ys[i]
	if ev.m == nil {
		t := (y - ev.ys[i]) / h
		return ev.zs[i] + t*(ev.zs[i+1]-ev.zs[i])
	}
	// Cubic spline segment evaluation from the second derivatives.
	a := (ev.ys[i+1] - y) / h
	b := (y - ev.ys[i]) / h
	return a*ev.zs[i] + b*ev.zs[i+1] +
		((a*a*a-a)*ev.m[i]+(b*b*b-b)*ev.m[i+1])*h*h/6
}

// naturalSplineMoments solves the tridiagonal system for the second
// derivatives of a natural cubic spline (zero curvature at both ends).
func naturalSplineMoments(xs, ys []float64) []float64 {
	n := len(xs)
	m := make([]float64, n)
	if n < 3 {
		return m
	}

	// Thomas algorithm on the interior moments.
	c := make([]float64, n) // scratch superdiagonal
	for i := 1; i < n-1; i++ {
		h0 := xs[i] - xs[i-1]
		h1 := xs[i+1] - xs[i]
		mu := h0 / (h0 + h1)
		lambda := 1 - mu
		d := 6 * ((ys[i+1]-ys[i])/h1 - (ys[i]-ys[i-1])/h0) / (h0 + h1)

		den := 2 - mu*c[i-1]
		c[i] = lambda / den
		m[i] = (d - mu*m[i-1]) / den
	}
	for i := n - 2; i >= 1; i-- {
		m[i] -= c[i] * m[i+1]
	}
	return m
}
