package interp

import (
	"fmt"
	"math"
	"sort"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// centerlineScale is the taper scale below which an explicit
// centerline point is injected so narrow sections keep a keel vertex.
const centerlineScale = 0.1

// TaperToApex generates n intermediate profiles between an end profile
// and a single apex point (a bow or stern tip). The intermediate
// stations divide the gap evenly and exclude both the end profile and
// the apex itself. At taper fraction t each transverse position scales
// toward the centerline by (1 - t) and z blends linearly toward the
// apex z. Point counts shrink with the scale but never drop below the
// profile minimum, and once the scale falls below a small threshold an
// explicit centerline point is injected.
//
// The returned profiles are ordered from the end profile toward the
// apex. The apex must lie at a different station than the profile.
func TaperToApex(end *geometry.Profile, apex geometry.Point3D, n int) ([]*geometry.Profile, error) {
	if end == nil {
		return nil, fmt.Errorf("taper: nil profile")
	}
	if n < 1 {
		return nil, fmt.Errorf("taper: need at least 1 intermediate profile, got %d", n)
	}
	s := end.Station()
	if math.Abs(apex.X-s) <= geometry.DefaultTolerance {
		return nil, fmt.Errorf("taper: apex station %.3f coincides with profile station %.3f", apex.X, s)
	}

	ys, zs := sectionCurve(end.Points())
	if len(ys) < 2 {
		return nil, fmt.Errorf("taper: degenerate profile at station %.3f", s)
	}
	ev, err := newEvaluator(ys, zs, MethodLinear)
	if err != nil {
		return nil, err
	}

	out := make([]*geometry.Profile, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n+1)
		scale := 1 - t
		station := s + (apex.X-s)*t

		count := int(math.Round(float64(end.Count()) * scale))
		if count < geometry.MinProfilePoints {
			count = geometry.MinProfilePoints
		}

		pts := make([]geometry.Point3D, 0, count+1)
		for j := 0; j < count; j++ {
			y := ys[0] + (ys[len(ys)-1]-ys[0])*float64(j)/float64(count-1)
			pts = append(pts, geometry.Point3D{
				X: station,
				Y: y * scale,
				Z: ev.eval(y)*(1-t) + apex.Z*t,
			})
		}
		if scale < centerlineScale {
			pts = injectCenterline(pts, station, ev.eval(0)*(1-t)+apex.Z*t)
		}

		p, err := geometry.NewProfile(station, pts)
		if err != nil {
			return nil, fmt.Errorf("taper at station %.3f: %w", station, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// injectCenterline inserts a y=0 point in sorted position unless one
// is already present.
func injectCenterline(pts []geometry.Point3D, station, z float64) []geometry.Point3D {
	for _, pt := range pts {
		if math.Abs(pt.Y) <= geometry.DefaultTolerance {
			return pts
		}
	}
	pts = append(pts, geometry.Point3D{X: station, Y: 0, Z: z})
	sort.SliceStable(pts, func(a, b int) bool { return pts[a].Y < pts[b].Y })
	return pts
}
