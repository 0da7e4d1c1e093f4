package geometry

import (
	"math"
	"testing"
)

const tol = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAddSubScale(t *testing.T) {
	p := NewPoint3D(1, 2, 3)
	q := NewPoint3D(-1, 0.5, 2)

	sum := p.Add(q)
	if !sum.AlmostEqual(Point3D{0, 2.5, 5}, tol) {
		t.Errorf("Add = %v", sum)
	}
	diff := p.Sub(q)
	if !diff.AlmostEqual(Point3D{2, 1.5, 1}, tol) {
		t.Errorf("Sub = %v", diff)
	}
	scaled := p.Scale(2)
	if !scaled.AlmostEqual(Point3D{2, 4, 6}, tol) {
		t.Errorf("Scale = %v", scaled)
	}
}

func TestDivByZero(t *testing.T) {
	p := NewPoint3D(1, 2, 3)
	if _, err := p.Div(0); err == nil {
		t.Fatal("expected error dividing by zero scalar")
	}
	half, err := p.Div(2)
	if err != nil {
		t.Fatalf("Div(2) failed: %v", err)
	}
	if !half.AlmostEqual(Point3D{0.5, 1, 1.5}, tol) {
		t.Errorf("Div(2) = %v", half)
	}
}

func TestDotCross(t *testing.T) {
	ex := NewPoint3D(1, 0, 0)
	ey := NewPoint3D(0, 1, 0)
	ez := NewPoint3D(0, 0, 1)

	if d := ex.Dot(ey); d != 0 {
		t.Errorf("ex·ey = %v, want 0", d)
	}
	if c := ex.Cross(ey); !c.AlmostEqual(ez, tol) {
		t.Errorf("ex×ey = %v, want %v", c, ez)
	}
	if c := ey.Cross(ex); !c.AlmostEqual(ez.Scale(-1), tol) {
		t.Errorf("ey×ex = %v, want -ez", c)
	}
}

func TestRotateXConvention(t *testing.T) {
	// Heel convention: starboard-down positive.
	// (y, z) -> (y·cosφ − z·sinφ, y·sinφ + z·cosφ)
	p := NewPoint3D(5, 1, 0)
	r := p.RotateX(90)
	if !r.AlmostEqual(Point3D{5, 0, 1}, 1e-12) {
		t.Errorf("RotateX(90) of (5,1,0) = %v, want (5,0,1)", r)
	}

	q := NewPoint3D(0, 0.5, -0.2)
	phi := 30 * math.Pi / 180
	want := Point3D{
		X: 0,
		Y: 0.5*math.Cos(phi) + 0.2*math.Sin(phi),
		Z: 0.5*math.Sin(phi) - 0.2*math.Cos(phi),
	}
	if r := q.RotateX(30); !r.AlmostEqual(want, 1e-12) {
		t.Errorf("RotateX(30) = %v, want %v", r, want)
	}
}

func TestRotationPreservesRadius(t *testing.T) {
	p := NewPoint3D(2, 0.7, -0.3)
	for _, deg := range []float64{-170, -45, 10, 33.3, 90, 250} {
		r := p.RotateX(deg)
		before := math.Hypot(p.Y, p.Z)
		after := math.Hypot(r.Y, r.Z)
		if !approx(before, after, 1e-12) {
			t.Errorf("RotateX(%v) changed radius: %v -> %v", deg, before, after)
		}
		if r.X != p.X {
			t.Errorf("RotateX(%v) changed X", deg)
		}
	}
}

func TestRotationComposition(t *testing.T) {
	p := NewPoint3D(1, 0.4, 0.9)
	ab := p.RotateX(25).RotateX(40)
	direct := p.RotateX(65)
	if !ab.AlmostEqual(direct, 1e-12) {
		t.Errorf("RotateX(25)+RotateX(40) = %v, RotateX(65) = %v", ab, direct)
	}
}

func TestFullTurnIsIdentity(t *testing.T) {
	p := NewPoint3D(1.5, -0.6, 0.2)
	for _, rot := range []func(Point3D) Point3D{
		func(q Point3D) Point3D { return q.RotateX(360) },
		func(q Point3D) Point3D { return q.RotateY(360) },
		func(q Point3D) Point3D { return q.RotateZ(360) },
	} {
		if r := rot(p); !r.AlmostEqual(p, 1e-12) {
			t.Errorf("360° rotation moved %v to %v", p, r)
		}
	}
}

func TestTranslateAndDistance(t *testing.T) {
	p := NewPoint3D(0, 0, 0)
	q := p.Translate(3, 4, 0)
	if d := p.Distance(q); !approx(d, 5, tol) {
		t.Errorf("Distance = %v, want 5", d)
	}
}
