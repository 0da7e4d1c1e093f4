package hull

import (
	"math"
	"testing"

	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/interp"
)

const tol = 1e-9

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// vAt builds a V section at the given station with the given half beam.
func vAt(station, halfBeam float64) *geometry.Profile {
	return geometry.MustProfile(station, []geometry.Point3D{
		{X: station, Y: -halfBeam, Z: 0.2},
		{X: station, Y: 0, Z: -0.15},
		{X: station, Y: halfBeam, Z: 0.2},
	})
}

// flatAt builds a horizontal section at the given station and height.
func flatAt(station, z float64) *geometry.Profile {
	return geometry.MustProfile(station, []geometry.Point3D{
		{X: station, Y: -0.3, Z: z},
		{X: station, Y: 0, Z: z},
		{X: station, Y: 0.3, Z: z},
	})
}

func TestAddKeepsStationOrder(t *testing.T) {
	h := New("test")
	for _, s := range []float64{2, 0, 1} {
		if err := h.AddProfile(vAt(s, 0.3)); err != nil {
			t.Fatalf("add station %.1f: %v", s, err)
		}
	}

	want := []float64{0, 1, 2}
	got := h.Stations()
	if len(got) != len(want) {
		t.Fatalf("got %d stations, want %d", len(got), len(want))
	}
	for i := range want {
		if !approx(got[i], want[i], tol) {
			t.Errorf("station %d = %.3f, want %.3f", i, got[i], want[i])
		}
	}
}

func TestAddDuplicateStation(t *testing.T) {
	h := New("test")
	if err := h.AddProfile(vAt(1, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.AddProfile(vAt(1, 0.25)); err == nil {
		t.Error("expected error adding a second profile at station 1")
	}
}

func TestUpdateProfile(t *testing.T) {
	h := New("test")
	if err := h.AddProfile(vAt(1, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.UpdateProfile(vAt(1, 0.4)); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	p, err := h.Profile(1)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !approx(p.Beam(), 0.8, tol) {
		t.Errorf("beam after update = %.3f, want 0.8", p.Beam())
	}
	if err := h.UpdateProfile(vAt(5, 0.3)); err == nil {
		t.Error("expected error updating a missing station")
	}
}

func TestRemoveProfile(t *testing.T) {
	h := New("test")
	for _, s := range []float64{0, 1, 2} {
		if err := h.AddProfile(vAt(s, 0.3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if err := h.RemoveProfile(1); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if h.Count() != 2 {
		t.Fatalf("count after remove = %d, want 2", h.Count())
	}
	if _, err := h.Profile(1); err == nil {
		t.Error("expected lookup error after removal")
	}
	if err := h.RemoveProfile(7); err == nil {
		t.Error("expected error removing a missing station")
	}
}

func TestProfileAtExactHit(t *testing.T) {
	h := New("test")
	stored := vAt(1, 0.3)
	if err := h.AddProfile(flatAt(0, 0)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.AddProfile(stored); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, err := h.ProfileAt(1, interp.MethodLinear)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != stored {
		t.Error("exact station hit did not return the stored profile")
	}
}

func TestProfileAtInterpolates(t *testing.T) {
	h := New("test")
	if err := h.AddProfile(flatAt(0, 0)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.AddProfile(flatAt(2, -0.4)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	mid, err := h.ProfileAt(1, interp.MethodLinear)
	if err != nil {
		t.Fatalf("interpolation failed: %v", err)
	}
	if !approx(mid.Station(), 1, tol) {
		t.Errorf("station = %.3f, want 1", mid.Station())
	}
	for i, pt := range mid.Points() {
		if !approx(pt.Z, -0.2, tol) {
			t.Errorf("point %d: z=%.4f, want -0.2", i, pt.Z)
		}
	}

	if _, err := h.ProfileAt(3, interp.MethodLinear); err == nil {
		t.Error("expected error for station beyond the hull")
	}
	if _, err := h.ProfileAt(-1, interp.MethodLinear); err == nil {
		t.Error("expected error for station before the hull")
	}
}

func TestGeometricQueries(t *testing.T) {
	h := New("test")
	if err := h.AddProfile(vAt(0, 0.2)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.AddProfile(vAt(1.5, 0.35)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.AddProfile(vAt(4, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if !approx(h.Length(), 4, tol) {
		t.Errorf("length = %.3f, want 4", h.Length())
	}
	if !approx(h.MaxBeam(), 0.7, tol) {
		t.Errorf("max beam = %.3f, want 0.7", h.MaxBeam())
	}
	min, max := h.Bounds()
	if !approx(min.X, 0, tol) || !approx(max.X, 4, tol) {
		t.Errorf("x bounds [%.3f, %.3f], want [0, 4]", min.X, max.X)
	}
	if !approx(min.Y, -0.35, tol) || !approx(max.Y, 0.35, tol) {
		t.Errorf("y bounds [%.3f, %.3f], want [-0.35, 0.35]", min.Y, max.Y)
	}
	if !approx(min.Z, -0.15, tol) || !approx(max.Z, 0.2, tol) {
		t.Errorf("z bounds [%.3f, %.3f], want [-0.15, 0.2]", min.Z, max.Z)
	}
}

func TestCopyIsDeep(t *testing.T) {
	h := New("orig")
	if err := h.AddProfile(vAt(0, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.AddProfile(vAt(2, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	c := h.Copy()
	c.SetName("copy")
	if err := c.UpdateProfile(vAt(0, 0.5)); err != nil {
		t.Fatalf("update on copy failed: %v", err)
	}

	if h.Name() != "orig" {
		t.Errorf("rename leaked to the original: %q", h.Name())
	}
	p, err := h.Profile(0)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !approx(p.Beam(), 0.6, tol) {
		t.Errorf("original beam changed to %.3f", p.Beam())
	}
}

func TestValidate(t *testing.T) {
	h := New("test")
	if err := h.Validate(); err == nil {
		t.Error("expected error for an empty hull")
	}
	if err := h.AddProfile(vAt(0, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.Validate(); err == nil {
		t.Error("expected error for a single-profile hull")
	}
	if err := h.AddProfile(vAt(2, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.Validate(); err != nil {
		t.Errorf("two-profile hull rejected: %v", err)
	}
}

func TestValidateSymmetry(t *testing.T) {
	h := New("test")
	if err := h.AddProfile(vAt(0, 0.3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.ValidateSymmetry(0); err != nil {
		t.Errorf("symmetric hull rejected: %v", err)
	}

	skewed := geometry.MustProfile(1, []geometry.Point3D{
		{X: 1, Y: -0.3, Z: 0.2},
		{X: 1, Y: 0, Z: -0.15},
		{X: 1, Y: 0.305, Z: 0.2},
	})
	if err := h.AddProfile(skewed); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := h.ValidateSymmetry(1e-4); err == nil {
		t.Error("expected asymmetry error at tight tolerance")
	}
	if err := h.ValidateSymmetry(0.01); err != nil {
		t.Errorf("loose tolerance still rejected the hull: %v", err)
	}
}
