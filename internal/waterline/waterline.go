// Package waterline models the free water surface as a plane in hull
// coordinates and clips transverse sections against it. Heel and trim
// tilt the plane instead of rotating the hull, so all section geometry
// stays in the hull frame.
package waterline

import (
	"math"

	"github.com/paddlecraft/gohull/internal/geometry"
)

// Waterline is a flat water surface in hull coordinates. Height is
// the surface z at the origin. Heel tilts the surface about the
// longitudinal axis (degrees, positive puts the starboard side
// deeper) and Trim tilts it about the transverse axis (degrees,
// positive puts the bow deeper, with the bow at increasing x).
type Waterline struct {
	Height float64 // m
	Heel   float64 // deg
	Trim   float64 // deg
}

// New returns a waterline at the given height with the given heel and
// trim angles in degrees.
func New(height, heel, trim float64) Waterline {
	return Waterline{Height: height, Heel: heel, Trim: trim}
}

// Level returns an upright waterline at the given height.
func Level(height float64) Waterline {
	return Waterline{Height: height}
}

// ZAt returns the surface height above the horizontal position (x, y).
func (w Waterline) ZAt(x, y float64) float64 {
	return w.Height + y*math.Tan(w.Heel*math.Pi/180) + x*math.Tan(w.Trim*math.Pi/180)
}

// SignedDistance returns how far the point sits above the surface,
// measured along z. Negative values are under water.
func (w Waterline) SignedDistance(p geometry.Point3D) float64 {
	return p.Z - w.ZAt(p.X, p.Y)
}

// Submerged reports whether the point lies on or below the surface.
func (w Waterline) Submerged(p geometry.Point3D) bool {
	return w.SignedDistance(p) <= 0
}

// EdgeIntersection returns the point where the segment pq pierces the
// surface, given the signed distances of its ends. An edge lying in
// the surface has no single crossing; its midpoint is returned.
func EdgeIntersection(p, q geometry.Point3D, dp, dq float64) geometry.Point3D {
	if dp == dq {
		return geometry.Point3D{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Z: (p.Z + q.Z) / 2}
	}
	t := dp / (dp - dq)
	return geometry.Point3D{
		X: p.X + t*(q.X-p.X),
		Y: p.Y + t*(q.Y-p.Y),
		Z: p.Z + t*(q.Z-p.Z),
	}
}

// ClipPolygon cuts a closed polygon against the zero level set of an
// arbitrary signed-distance function and returns the part at
// non-positive distance. The input vertices must be in boundary order;
// the closing edge from the last vertex back to the first is implied.
// Vertices exactly on the boundary are kept. The result is empty when
// the polygon lies fully on the positive side.
func ClipPolygon(pts []geometry.Point3D, dist func(geometry.Point3D) float64) []geometry.Point3D {
	if len(pts) == 0 {
		return nil
	}
	out := make([]geometry.Point3D, 0, len(pts)+2)
	for i, cur := range pts {
		next := pts[(i+1)%len(pts)]
		dc := dist(cur)
		dn := dist(next)

		if dc <= 0 {
			out = append(out, cur)
		}
		if (dc < 0 && dn > 0) || (dc > 0 && dn < 0) {
			out = append(out, EdgeIntersection(cur, next, dc, dn))
		}
	}
	return out
}

// ClipBelow returns the submerged part of a closed polygon, clipping
// it against the water surface.
func (w Waterline) ClipBelow(pts []geometry.Point3D) []geometry.Point3D {
	return ClipPolygon(pts, w.SignedDistance)
}

// PolygonArea returns the unsigned area of a closed polygon in the
// transverse plane, using the (y, z) coordinates of its vertices.
func PolygonArea(pts []geometry.Point3D) float64 {
	return math.Abs(signedArea(pts))
}

// PolygonCentroid returns the centroid of a closed polygon in the
// transverse plane. A degenerate polygon with zero area yields NaN
// coordinates.
func PolygonCentroid(pts []geometry.Point3D) (cy, cz float64) {
	a := signedArea(pts)
	if a == 0 {
		return math.NaN(), math.NaN()
	}
	var sy, sz float64
	for i, cur := range pts {
		next := pts[(i+1)%len(pts)]
		cross := cur.Y*next.Z - next.Y*cur.Z
		sy += (cur.Y + next.Y) * cross
		sz += (cur.Z + next.Z) * cross
	}
	return sy / (6 * a), sz / (6 * a)
}

func signedArea(pts []geometry.Point3D) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, cur := range pts {
		next := pts[(i+1)%len(pts)]
		sum += cur.Y*next.Z - next.Y*cur.Z
	}
	return sum / 2
}
