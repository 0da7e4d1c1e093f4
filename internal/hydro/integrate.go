package hydro

import "fmt"

// Longitudinal integration methods.
const (
	MethodSimpson   = "simpson"
	MethodTrapezoid = "trapezoid"
)

// integrate computes the integral of y over x for sorted sample
// positions. The method is selected by name.
func integrate(xs, ys []float64, method string) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("integrate: %d positions but %d values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("integrate: need at least 2 samples, got %d", len(xs))
	}
	switch method {
	case MethodSimpson:
		return simpson(xs, ys), nil
	case MethodTrapezoid:
		return trapezoid(xs, ys), nil
	default:
		return 0, fmt.Errorf("integrate: unknown integration method %q", method)
	}
}

func trapezoid(xs, ys []float64) float64 {
	var sum float64
	for i := 1; i < len(xs); i++ {
		sum += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return sum
}

// simpson integrates by fitting a quadratic over each pair of
// intervals, which stays exact for unequally spaced stations. An odd
// interval count leaves one interval over; it is closed with the
// trapezoid rule.
func simpson(xs, ys []float64) float64 {
	var sum float64
	i := 0
	for ; i+2 < len(xs); i += 2 {
		h0 := xs[i+1] - xs[i]
		h1 := xs[i+2] - xs[i+1]
		sum += (h0 + h1) / 6 * ((2-h1/h0)*ys[i] +
			(h0+h1)*(h0+h1)/(h0*h1)*ys[i+1] +
			(2-h0/h1)*ys[i+2])
	}
	if i+1 < len(xs) {
		sum += (xs[i+1] - xs[i]) * (ys[i+1] + ys[i]) / 2
	}
	return sum
}
