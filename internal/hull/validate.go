package hull

import (
	"fmt"
	"math"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// MinProfiles is the smallest number of stations a hull needs before
// longitudinal quantities can be computed.
const MinProfiles = 2

// Validate checks that the hull has enough stations to describe a
// closed body.
func (h *Hull) Validate() error {
	if len(h.profiles) < MinProfiles {
		return fmt.Errorf("hull %q has %d profiles, need at least %d", h.name, len(h.profiles), MinProfiles)
	}
	return nil
}

// ValidateSymmetry checks that every profile is mirror-symmetric about
// the centerline plane: each point off the centerline must have a
// partner at the opposite transverse position and the same height,
// within tol. A non-positive tol selects the shared geometric
// tolerance.
func (h *Hull) ValidateSymmetry(tol float64) error {
	if tol <= 0 {
		tol = geometry.DefaultTolerance
	}
	for _, p := range h.profiles {
		if err := profileSymmetry(p, tol); err != nil {
			return err
		}
	}
	return nil
}

func profileSymmetry(p *geometry.Profile, tol float64) error {
	pts := p.Points()
	for _, pt := range pts {
		if math.Abs(pt.Y) <= tol {
			continue
		}
		if !hasMirror(pts, pt, tol) {
			return fmt.Errorf("profile at station %.3f is asymmetric: no partner for point at y=%.4f, z=%.4f",
				p.Station(), pt.Y, pt.Z)
		}
	}
	return nil
}

func hasMirror(pts []geometry.Point3D, pt geometry.Point3D, tol float64) bool {
	for _, q := range pts {
		if math.Abs(q.Y+pt.Y) <= tol && math.Abs(q.Z-pt.Z) <= tol {
			return true
		}
	}
	return false
}
