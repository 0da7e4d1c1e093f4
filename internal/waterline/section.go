package waterline

import (
	"math"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// onSurfaceTolerance decides whether a clipped vertex counts as lying
// on the water surface when measuring the waterline beam.
const onSurfaceTolerance = 1e-9

// CrossSectionProperties holds the submerged geometry of one
// transverse section. The waterline fields echo the surface the
// section was clipped against.
type CrossSectionProperties struct {
	Station   float64 // m
	Area      float64 // m^2, submerged section area
	CentroidY float64 // m, transverse centroid of the submerged area
	CentroidZ float64 // m, vertical centroid of the submerged area
	Beam      float64 // m, section width at the water surface
	Draft     float64 // m, deepest point below the surface

	WaterlineHeight float64 // m
	HeelAngle       float64 // deg
	TrimAngle       float64 // deg
}

// Valid reports whether the section contributes displaced volume: a
// positive area with its centroid at or below the local water surface.
func (c CrossSectionProperties) Valid() bool {
	if c.Area <= 0 {
		return false
	}
	w := New(c.WaterlineHeight, c.HeelAngle, c.TrimAngle)
	return w.SignedDistance(c.Centroid()) <= onSurfaceTolerance
}

// Centroid returns the submerged centroid as a point at the station.
func (c CrossSectionProperties) Centroid() geometry.Point3D {
	return geometry.Point3D{X: c.Station, Y: c.CentroidY, Z: c.CentroidZ}
}

// CrossSection clips one profile against the waterline and measures
// the submerged part. The profile's points must trace the section
// boundary in order; the section is closed across the top from the
// last point back to the first. A section fully above the surface
// returns zero area with NaN centroid coordinates.
func CrossSection(p *geometry.Profile, w Waterline) CrossSectionProperties {
	clipped := w.ClipBelow(p.Points())
	props := CrossSectionProperties{
		Station:         p.Station(),
		WaterlineHeight: w.Height,
		HeelAngle:       w.Heel,
		TrimAngle:       w.Trim,
	}
	if len(clipped) < 3 {
		props.CentroidY = math.NaN()
		props.CentroidZ = math.NaN()
		return props
	}

	props.Area = PolygonArea(clipped)
	props.CentroidY, props.CentroidZ = PolygonCentroid(clipped)

	surfMin, surfMax := math.Inf(1), math.Inf(-1)
	for _, pt := range clipped {
		d := w.SignedDistance(pt)
		if -d > props.Draft {
			props.Draft = -d
		}
		if math.Abs(d) <= onSurfaceTolerance {
			surfMin = math.Min(surfMin, pt.Y)
			surfMax = math.Max(surfMax, pt.Y)
		}
	}
	if surfMax > surfMin {
		props.Beam = surfMax - surfMin
	}
	return props
}
