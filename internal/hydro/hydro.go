// Package hydro integrates submerged cross-sections along the hull
// into volumes, buoyancy centers, and displacement figures.
package hydro

import (
	"fmt"
	"math"

	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/hull"
	"github.com/paddlecraft/gohull/internal/interp"
	"github.com/paddlecraft/gohull/internal/water"
	"github.com/paddlecraft/gohull/internal/waterline"
)

// DefaultStations is the evaluation station count used when options
// ask for resampling without giving a count.
const DefaultStations = 21

// Options selects how the hull is sampled and integrated.
type Options struct {
	// Stations is the number of evenly spaced evaluation stations.
	// Zero uses the hull's own stations unchanged.
	Stations int
	// Method is the longitudinal integration method, "simpson" or
	// "trapezoid". Empty selects Simpson.
	Method string
	// Interp is the section interpolation method used between stored
	// stations, "linear" or "cubic". Empty selects linear.
	Interp string
}

func (o Options) withDefaults() Options {
	if o.Method == "" {
		o.Method = MethodSimpson
	}
	if o.Interp == "" {
		o.Interp = interp.MethodLinear
	}
	return o
}

// CenterOfBuoyancy locates the centroid of the displaced volume.
type CenterOfBuoyancy struct {
	Volume float64 // m^3
	LCB    float64 // m, longitudinal center of buoyancy
	TCB    float64 // m, transverse center of buoyancy
	VCB    float64 // m, vertical center of buoyancy

	WaterlineHeight float64 // m
	HeelAngle       float64 // deg
	TrimAngle       float64 // deg
	StationCount    int
}

// Center returns the buoyancy center as a point.
func (cb *CenterOfBuoyancy) Center() geometry.Point3D {
	return geometry.Point3D{X: cb.LCB, Y: cb.TCB, Z: cb.VCB}
}

// DisplacementProperties summarizes the hydrostatics of a hull at a
// waterline, with per-station diagnostics for reporting.
type DisplacementProperties struct {
	Volume  float64 // m^3
	Density float64 // kg/m^3
	Mass    float64 // kg
	Tonnes  float64 // t
	Weight  float64 // N

	Buoyancy CenterOfBuoyancy

	Stations []float64 // m, evaluation stations
	Areas    []float64 // m^2, submerged area per station
}

// Sections evaluates the submerged cross-section at each evaluation
// station. With opts.Stations > 0 the hull is resampled onto that many
// evenly spaced stations; otherwise the stored stations are used
// directly.
func Sections(h *hull.Hull, w waterline.Waterline, opts Options) ([]waterline.CrossSectionProperties, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := checkAttitude(w); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	stations := h.Stations()
	if opts.Stations > 0 {
		if opts.Stations < 2 {
			return nil, fmt.Errorf("hydro: need at least 2 evaluation stations, got %d", opts.Stations)
		}
		first, last := stations[0], stations[len(stations)-1]
		stations = make([]float64, opts.Stations)
		for i := range stations {
			stations[i] = first + (last-first)*float64(i)/float64(opts.Stations-1)
		}
	}

	out := make([]waterline.CrossSectionProperties, len(stations))
	for i, s := range stations {
		p, err := h.ProfileAt(s, opts.Interp)
		if err != nil {
			return nil, err
		}
		out[i] = waterline.CrossSection(p, w)
	}
	return out, nil
}

// Volume returns the displaced volume at the waterline. A hull that
// does not reach the water is an error, not a zero result.
func Volume(h *hull.Hull, w waterline.Waterline, opts Options) (float64, error) {
	cb, err := Buoyancy(h, w, opts)
	if err != nil {
		return 0, err
	}
	return cb.Volume, nil
}

// Buoyancy integrates the sectional areas and their first moments into
// the displaced volume and its centroid.
func Buoyancy(h *hull.Hull, w waterline.Waterline, opts Options) (*CenterOfBuoyancy, error) {
	secs, err := Sections(h, w, opts)
	if err != nil {
		return nil, err
	}
	return buoyancyOf(secs, w, opts.withDefaults())
}

func buoyancyOf(secs []waterline.CrossSectionProperties, w waterline.Waterline, opts Options) (*CenterOfBuoyancy, error) {
	xs := make([]float64, len(secs))
	areas := make([]float64, len(secs))
	mx := make([]float64, len(secs))
	my := make([]float64, len(secs))
	mz := make([]float64, len(secs))
	for i, s := range secs {
		xs[i] = s.Station
		areas[i] = s.Area
		if s.Valid() {
			mx[i] = s.Area * s.Station
			my[i] = s.Area * s.CentroidY
			mz[i] = s.Area * s.CentroidZ
		}
	}

	vol, err := integrate(xs, areas, opts.Method)
	if err != nil {
		return nil, err
	}
	if vol <= 0 {
		return nil, fmt.Errorf("hydro: waterline at z=%.3f does not submerge the hull", w.Height)
	}

	momX, err := integrate(xs, mx, opts.Method)
	if err != nil {
		return nil, err
	}
	momY, err := integrate(xs, my, opts.Method)
	if err != nil {
		return nil, err
	}
	momZ, err := integrate(xs, mz, opts.Method)
	if err != nil {
		return nil, err
	}

	return &CenterOfBuoyancy{
		Volume:          vol,
		LCB:             momX / vol,
		TCB:             momY / vol,
		VCB:             momZ / vol,
		WaterlineHeight: w.Height,
		HeelAngle:       w.Heel,
		TrimAngle:       w.Trim,
		StationCount:    len(secs),
	}, nil
}

// Displacement computes the full displacement summary for a fluid of
// the given density in kg/m^3.
func Displacement(h *hull.Hull, w waterline.Waterline, density float64, opts Options) (*DisplacementProperties, error) {
	if density <= 0 {
		return nil, fmt.Errorf("hydro: density must be positive, got %.3f", density)
	}
	secs, err := Sections(h, w, opts)
	if err != nil {
		return nil, err
	}
	cb, err := buoyancyOf(secs, w, opts.withDefaults())
	if err != nil {
		return nil, err
	}

	d := &DisplacementProperties{
		Volume:   cb.Volume,
		Density:  density,
		Mass:     water.Mass(cb.Volume, density),
		Weight:   water.Weight(cb.Volume, density),
		Buoyancy: *cb,
		Stations: make([]float64, len(secs)),
		Areas:    make([]float64, len(secs)),
	}
	d.Tonnes = d.Mass / 1000
	for i, s := range secs {
		d.Stations[i] = s.Station
		d.Areas[i] = s.Area
	}
	return d, nil
}

// checkAttitude rejects waterline angles the planar surface model
// cannot represent.
func checkAttitude(w waterline.Waterline) error {
	if math.Abs(w.Heel) >= 90 {
		return fmt.Errorf("hydro: waterline heel %.1f deg out of range (-90, 90); heel the hull instead", w.Heel)
	}
	if math.Abs(w.Trim) >= 90 {
		return fmt.Errorf("hydro: waterline trim %.1f deg out of range (-90, 90)", w.Trim)
	}
	return nil
}
