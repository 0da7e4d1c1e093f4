// Package hull maintains an ordered collection of transverse profiles
// and answers geometric queries about the hull they describe. Profiles
// are kept sorted by station so that lookups and interpolation can
// bracket any longitudinal position by binary search.
//
// A Hull is not safe for concurrent mutation; build it first, then
// share it read-only across goroutines.
package hull

import (
	"fmt"
	"math"
	"sort"

	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/interp"
)

// Hull is a named set of transverse profiles ordered by station.
type Hull struct {
	name     string
	profiles []*geometry.Profile

	// stations caches the sorted station values; dirty marks the
	// cache stale after a mutation.
	stations []float64
	dirty    bool
}

// New creates an empty hull with the given name.
func New(name string) *Hull {
	return &Hull{name: name}
}

// Name returns the hull name.
func (h *Hull) Name() string { return h.name }

// SetName renames the hull.
func (h *Hull) SetName(name string) { h.name = name }

// Count returns the number of stored profiles.
func (h *Hull) Count() int { return len(h.profiles) }

// AddProfile inserts a profile keeping station order. Adding a second
// profile at an existing station is an error; use UpdateProfile to
// replace one.
func (h *Hull) AddProfile(p *geometry.Profile) error {
	if p == nil {
		return fmt.Errorf("hull: nil profile")
	}
	i := h.searchStation(p.Station())
	if i < len(h.profiles) && sameStation(h.profiles[i].Station(), p.Station()) {
		return fmt.Errorf("hull: profile already exists at station %.3f", p.Station())
	}
	h.profiles = append(h.profiles, nil)
	copy(h.profiles[i+1:], h.profiles[i:])
	h.profiles[i] = p
	h.dirty = true
	return nil
}

// UpdateProfile replaces the profile at the same station.
func (h *Hull) UpdateProfile(p *geometry.Profile) error {
	if p == nil {
		return fmt.Errorf("hull: nil profile")
	}
	i := h.searchStation(p.Station())
	if i >= len(h.profiles) || !sameStation(h.profiles[i].Station(), p.Station()) {
		return fmt.Errorf("hull: no profile at station %.3f", p.Station())
	}
	h.profiles[i] = p
	return nil
}

// RemoveProfile deletes the profile at the given station.
func (h *Hull) RemoveProfile(station float64) error {
	i := h.searchStation(station)
	if i >= len(h.profiles) || !sameStation(h.profiles[i].Station(), station) {
		return fmt.Errorf("hull: no profile at station %.3f", station)
	}
	h.profiles = append(h.profiles[:i], h.profiles[i+1:]...)
	h.dirty = true
	return nil
}

// Profile returns the stored profile at exactly the given station.
func (h *Hull) Profile(station float64) (*geometry.Profile, error) {
	i := h.searchStation(station)
	if i >= len(h.profiles) || !sameStation(h.profiles[i].Station(), station) {
		return nil, fmt.Errorf("hull: no profile at station %.3f", station)
	}
	return h.profiles[i], nil
}

// ProfileAt returns the cross-section at any station within the hull.
// An exact station hit returns the stored profile; anything between
// two stations is interpolated with the given method. Stations outside
// the hull are an error.
func (h *Hull) ProfileAt(station float64, method string) (*geometry.Profile, error) {
	if len(h.profiles) == 0 {
		return nil, fmt.Errorf("hull: no profiles")
	}
	first := h.profiles[0].Station()
	last := h.profiles[len(h.profiles)-1].Station()
	if station < first-geometry.DefaultTolerance || station > last+geometry.DefaultTolerance {
		return nil, fmt.Errorf("hull: station %.3f outside hull range [%.3f, %.3f]", station, first, last)
	}

	i := h.searchStation(station)
	if i < len(h.profiles) && sameStation(h.profiles[i].Station(), station) {
		return h.profiles[i], nil
	}
	if i == 0 || i >= len(h.profiles) {
		// Within tolerance of an end station.
		if i == 0 {
			return h.profiles[0], nil
		}
		return h.profiles[len(h.profiles)-1], nil
	}
	return interp.Longitudinal(h.profiles[i-1], h.profiles[i], station, method)
}

// Profiles returns the stored profiles in station order. The slice is
// a copy; the profiles are shared.
func (h *Hull) Profiles() []*geometry.Profile {
	out := make([]*geometry.Profile, len(h.profiles))
	copy(out, h.profiles)
	return out
}

// Stations returns the sorted station positions. The result is cached
// between mutations.
func (h *Hull) Stations() []float64 {
	if h.dirty || h.stations == nil {
		h.stations = make([]float64, len(h.profiles))
		for i, p := range h.profiles {
			h.stations[i] = p.Station()
		}
		h.dirty = false
	}
	out := make([]float64, len(h.stations))
	copy(out, h.stations)
	return out
}

// Length returns the distance between the first and last station.
func (h *Hull) Length() float64 {
	if len(h.profiles) < 2 {
		return 0
	}
	return h.profiles[len(h.profiles)-1].Station() - h.profiles[0].Station()
}

// MaxBeam returns the widest transverse extent over all profiles.
func (h *Hull) MaxBeam() float64 {
	beam := 0.0
	for _, p := range h.profiles {
		if b := p.Beam(); b > beam {
			beam = b
		}
	}
	return beam
}

// Bounds returns the axis-aligned bounding box over every profile
// point. Calling Bounds on an empty hull returns two zero points.
func (h *Hull) Bounds() (geometry.Point3D, geometry.Point3D) {
	if len(h.profiles) == 0 {
		return geometry.Point3D{}, geometry.Point3D{}
	}
	min := geometry.Point3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := geometry.Point3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, p := range h.profiles {
		for _, pt := range p.Points() {
			min.X = math.Min(min.X, pt.X)
			min.Y = math.Min(min.Y, pt.Y)
			min.Z = math.Min(min.Z, pt.Z)
			max.X = math.Max(max.X, pt.X)
			max.Y = math.Max(max.Y, pt.Y)
			max.Z = math.Max(max.Z, pt.Z)
		}
	}
	return min, max
}

// Copy returns a deep copy of the hull.
func (h *Hull) Copy() *Hull {
	out := &Hull{name: h.name, profiles: make([]*geometry.Profile, len(h.profiles))}
	for i, p := range h.profiles {
		out.profiles[i] = p.Copy()
	}
	return out
}

// searchStation returns the index of the first profile whose station
// is not below the given one, honoring the shared tolerance.
func (h *Hull) searchStation(station float64) int {
	return sort.Search(len(h.profiles), func(i int) bool {
		return h.profiles[i].Station() >= station-geometry.DefaultTolerance
	})
}

func sameStation(a, b float64) bool {
	return math.Abs(a-b) <= geometry.DefaultTolerance
}
