// Package stability evaluates transverse static stability: center of
// gravity aggregation, righting arms across heel angles, and the
// summary metrics read off a righting arm curve.
//
// Heel is applied by rotating the hull geometry about the origin and
// keeping the water surface level, so the buoyancy center comes out in
// earth coordinates and arbitrary heel angles work, 90 degrees
// included.
package stability

import (
	"fmt"
	"math"

	"github.com/paddlecraft/gohull/internal/hull"
	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/waterline"
)

// MassComponent is one item of the loading condition: the hull shell,
// a paddler, cargo. Coordinates are in hull frame meters.
type MassComponent struct {
	Name string
	Mass float64 // kg
	X    float64 // m
	Y    float64 // m
	Z    float64 // m
}

// CenterOfGravity is the mass-weighted center of all components.
type CenterOfGravity struct {
	TotalMass float64 // kg
	LCG       float64 // m, longitudinal
	TCG       float64 // m, transverse
	VCG       float64 // m, vertical
}

// Aggregate combines mass components into one center of gravity.
// The total mass must come out positive.
func Aggregate(components []MassComponent) (*CenterOfGravity, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("stability: no mass components")
	}
	var m, mx, my, mz float64
	for _, c := range components {
		if c.Mass < 0 {
			return nil, fmt.Errorf("stability: component %q has negative mass %.3f", c.Name, c.Mass)
		}
		m += c.Mass
		mx += c.Mass * c.X
		my += c.Mass * c.Y
		mz += c.Mass * c.Z
	}
	if m <= 0 {
		return nil, fmt.Errorf("stability: total mass must be positive, got %.3f", m)
	}
	return &CenterOfGravity{TotalMass: m, LCG: mx / m, TCG: my / m, VCG: mz / m}, nil
}

// RightingArm is the stability result at one heel angle.
type RightingArm struct {
	HeelAngle float64 // deg, positive heels starboard down
	GZ        float64 // m, positive rights the hull

	// CB is the buoyancy center of the heeled hull in earth frame.
	CB hydro.CenterOfBuoyancy

	Stable bool // GZ >= 0
}

// GZ computes the righting arm at one heel angle. The waterline gives
// the water height (and optional trim); its heel must be zero because
// heel is taken from the heelDeg argument by rotating the hull.
//
// The heeled sections are the hull's own stations; opts.Stations is
// ignored because rotated sections cannot be resampled as transverse
// curves.
func GZ(h *hull.Hull, cg CenterOfGravity, w waterline.Waterline, heelDeg float64, opts hydro.Options) (*RightingArm, error) {
	if w.Heel != 0 {
		return nil, fmt.Errorf("stability: waterline heel must be zero, pass the heel angle instead")
	}
	opts.Stations = 0

	cb, err := hydro.Buoyancy(heeledHull(h, heelDeg), waterline.New(w.Height, 0, w.Trim), opts)
	if err != nil {
		return nil, fmt.Errorf("stability: heel %.1f deg: %w", heelDeg, err)
	}
	cb.HeelAngle = heelDeg

	phi := heelDeg * math.Pi / 180
	tcgEarth := cg.TCG*math.Cos(phi) + cg.VCG*math.Sin(phi)
	gz := cb.TCB - tcgEarth

	return &RightingArm{
		HeelAngle: heelDeg,
		GZ:        gz,
		CB:        *cb,
		Stable:    gz >= 0,
	}, nil
}

// heeledHull rotates every profile about the longitudinal axis through
// the origin. Positive heel puts the starboard side down, which in
// the shared rotation convention is a rotation by the negative angle.
func heeledHull(h *hull.Hull, heelDeg float64) *hull.Hull {
	if heelDeg == 0 {
		return h
	}
	out := hull.New(h.Name())
	for _, p := range h.Profiles() {
		// Stations are unique in the source, so AddProfile cannot fail.
		_ = out.AddProfile(p.RotateX(-heelDeg, 0, 0))
	}
	return out
}
