package stability

import (
	"fmt"

	"github.com/paddlecraft/gohull/internal/hull"
	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/waterline"
)

// GZCurve is a righting arm curve sampled over ascending heel angles.
// Water and CG record the inputs the curve was evaluated for.
type GZCurve struct {
	Angles []float64 // deg
	Values []float64 // m
	Arms   []*RightingArm

	Water waterline.Waterline
	CG    CenterOfGravity
}

// DefaultAngles returns the standard sweep: 0 to 90 degrees in steps
// of 5.
func DefaultAngles() []float64 {
	angles := make([]float64, 0, 19)
	for a := 0.0; a <= 90; a += 5 {
		angles = append(angles, a)
	}
	return angles
}

// Curve evaluates the righting arm at each heel angle. Angles must be
// strictly ascending; nil selects the default sweep.
func Curve(h *hull.Hull, cg CenterOfGravity, w waterline.Waterline, angles []float64, opts hydro.Options) (*GZCurve, error) {
	if angles == nil {
		angles = DefaultAngles()
	}
	if len(angles) == 0 {
		return nil, fmt.Errorf("stability: no heel angles")
	}
	for i := 1; i < len(angles); i++ {
		if angles[i] <= angles[i-1] {
			return nil, fmt.Errorf("stability: heel angles must be strictly ascending, got %.1f after %.1f",
				angles[i], angles[i-1])
		}
	}

	c := &GZCurve{
		Angles: make([]float64, len(angles)),
		Values: make([]float64, len(angles)),
		Arms:   make([]*RightingArm, len(angles)),
		Water:  w,
		CG:     cg,
	}
	for i, a := range angles {
		arm, err := GZ(h, cg, w, a, opts)
		if err != nil {
			return nil, err
		}
		c.Angles[i] = a
		c.Values[i] = arm.GZ
		c.Arms[i] = arm
	}
	return c, nil
}
