// Package water holds the physical constants of the fluid the hull
// floats in.
package water

import (
	"fmt"
	"strconv"
	"strings"
)

// Densities in kg/m^3.
const (
	FreshDensity = 1000.0
	SeaDensity   = 1025.0
)

// Gravity is standard gravitational acceleration in m/s^2.
const Gravity = 9.80665

// Density resolves a fluid density from a name or a literal value.
// Recognized names are "fresh" and "sea" (case-insensitive); anything
// else must parse as a positive number in kg/m^3.
func Density(spec string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "fresh", "freshwater":
		return FreshDensity, nil
	case "sea", "seawater", "salt":
		return SeaDensity, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(spec), 64)
	if err != nil {
		return 0, fmt.Errorf("unknown water type %q (use fresh, sea, or a density in kg/m^3)", spec)
	}
	if v <= 0 {
		return 0, fmt.Errorf("density must be positive, got %.3f", v)
	}
	return v, nil
}

// Mass converts a displaced volume to mass for the given density.
func Mass(volume, density float64) float64 {
	return volume * density
}

// Weight converts a displaced volume to weight in newtons.
func Weight(volume, density float64) float64 {
	return volume * density * Gravity
}
