package stability

import (
	"fmt"
	"math"

	"github.com/paddlecraft/gohull/internal/waterline"
)

// gmWindowDeg bounds the heel angles considered small enough for the
// metacentric height estimate.
const gmWindowDeg = 15.0

// Metrics are the headline figures read off a righting arm curve.
type Metrics struct {
	MaxGZ      float64 // m
	MaxGZAngle float64 // deg

	// VanishingAngle is the heel where the curve first returns to
	// zero after its maximum, linearly interpolated between samples.
	// HasVanishing is false when the curve stays positive to the end
	// of the sweep.
	VanishingAngle float64 // deg
	HasVanishing   bool

	// PositiveRange spans from the first non-negative sample to the
	// vanishing angle (or the end of the sweep). Both ends are NaN
	// when the curve never reaches zero or above.
	PositiveRange [2]float64 // deg

	// GM estimates the metacentric height from the initial slope of
	// the curve over heel in radians. It needs two samples within the
	// small-angle window; HasGM is false otherwise.
	GM    float64 // m
	HasGM bool

	// DynamicStability is the area under the positive part of the
	// curve from the first sample to the vanishing angle, with heel
	// in radians.
	DynamicStability float64 // m*rad

	// Water and CG echo the inputs the curve was evaluated for.
	Water waterline.Waterline
	CG    CenterOfGravity
}

// Analyze reduces a righting arm curve to its stability metrics.
func Analyze(c *GZCurve) (*Metrics, error) {
	if c == nil || len(c.Angles) < 2 {
		return nil, fmt.Errorf("stability: curve needs at least 2 samples")
	}
	if len(c.Angles) != len(c.Values) {
		return nil, fmt.Errorf("stability: curve has %d angles but %d values", len(c.Angles), len(c.Values))
	}

	m := &Metrics{Water: c.Water, CG: c.CG}
	maxIdx := 0
	for i, v := range c.Values {
		if v > c.Values[maxIdx] {
			maxIdx = i
		}
	}
	m.MaxGZ = c.Values[maxIdx]
	m.MaxGZAngle = c.Angles[maxIdx]

	m.VanishingAngle, m.HasVanishing = vanishing(c, maxIdx)

	m.PositiveRange = [2]float64{math.NaN(), math.NaN()}
	for i, v := range c.Values {
		if v >= 0 {
			m.PositiveRange[0] = c.Angles[i]
			break
		}
	}
	if !math.IsNaN(m.PositiveRange[0]) {
		if m.HasVanishing {
			m.PositiveRange[1] = m.VanishingAngle
		} else {
			m.PositiveRange[1] = c.Angles[len(c.Angles)-1]
		}
	}

	m.GM, m.HasGM = initialSlope(c)
	m.DynamicStability = dynamicStability(c, m)
	return m, nil
}

// vanishing finds the first positive to non-positive crossing at or
// after the curve maximum.
func vanishing(c *GZCurve, maxIdx int) (float64, bool) {
	for i := maxIdx; i+1 < len(c.Values); i++ {
		v0, v1 := c.Values[i], c.Values[i+1]
		if v0 > 0 && v1 <= 0 {
			t := v0 / (v0 - v1)
			return c.Angles[i] + t*(c.Angles[i+1]-c.Angles[i]), true
		}
	}
	return 0, false
}

// initialSlope estimates GM from the first two samples inside the
// small-angle window.
func initialSlope(c *GZCurve) (float64, bool) {
	idx := make([]int, 0, 2)
	for i, a := range c.Angles {
		if a <= gmWindowDeg {
			idx = append(idx, i)
		}
		if len(idx) == 2 {
			break
		}
	}
	if len(idx) < 2 {
		return 0, false
	}
	da := (c.Angles[idx[1]] - c.Angles[idx[0]]) * math.Pi / 180
	return (c.Values[idx[1]] - c.Values[idx[0]]) / da, true
}

// dynamicStability integrates the curve by trapezoids up to the
// vanishing angle, or over the whole sweep when the curve never
// returns to zero.
func dynamicStability(c *GZCurve, m *Metrics) float64 {
	end := c.Angles[len(c.Angles)-1]
	if m.HasVanishing {
		end = m.VanishingAngle
	}

	var sum float64
	for i := 1; i < len(c.Angles); i++ {
		if c.Angles[i] <= end {
			sum += (c.Angles[i] - c.Angles[i-1]) * math.Pi / 180 * (c.Values[i] + c.Values[i-1]) / 2
			continue
		}
		// Partial interval up to the interpolated zero crossing.
		if c.Angles[i-1] < end {
			sum += (end - c.Angles[i-1]) * math.Pi / 180 * c.Values[i-1] / 2
		}
		break
	}
	return sum
}
