package geometry

import (
	"testing"
)

// vSection builds a simple V-shaped section at the given station:
// gunwale port, keel, gunwale starboard.
func vSection(station float64) []Point3D {
	return []Point3D{
		{X: station, Y: -0.3, Z: 0.2},
		{X: station, Y: 0, Z: -0.15},
		{X: station, Y: 0.3, Z: 0.2},
	}
}

func TestNewProfileValidation(t *testing.T) {
	if _, err := NewProfile(1.0, vSection(1.0)[:2]); err == nil {
		t.Error("expected error for fewer than 3 points")
	}

	bad := vSection(1.0)
	bad[1].X = 1.5
	if _, err := NewProfile(1.0, bad); err == nil {
		t.Error("expected error for mismatched station tag")
	}

	p, err := NewProfile(1.0, vSection(1.0))
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}
	if p.Station() != 1.0 {
		t.Errorf("Station = %v", p.Station())
	}
	if p.Count() != 3 {
		t.Errorf("Count = %d", p.Count())
	}
}

func TestAddPoint(t *testing.T) {
	p := MustProfile(2.0, vSection(2.0))

	if err := p.AddPoint(Point3D{X: 2.0, Y: 0.15, Z: 0.0}); err != nil {
		t.Fatalf("AddPoint failed: %v", err)
	}
	if p.Count() != 4 {
		t.Errorf("Count = %d after AddPoint", p.Count())
	}

	if err := p.AddPoint(Point3D{X: 2.2, Y: 0, Z: 0}); err == nil {
		t.Error("expected error adding point off-station")
	}
}

func TestLevelTags(t *testing.T) {
	p := MustProfile(0, vSection(0))

	if p.Tagged() {
		t.Error("fresh profile should be untagged")
	}
	if err := p.SetLevels([]string{"gunwale", "keel"}); err == nil {
		t.Error("expected error for mismatched tag count")
	}
	if err := p.SetLevels([]string{"gunwale", "", "gunwale"}); err == nil {
		t.Error("expected error for empty tag")
	}
	if err := p.SetLevels([]string{"gunwale", "keel", "gunwale"}); err != nil {
		t.Fatalf("SetLevels failed: %v", err)
	}
	if !p.Tagged() {
		t.Error("profile should be tagged")
	}

	groups := p.LevelGroups()
	if len(groups["gunwale"]) != 2 || len(groups["keel"]) != 1 {
		t.Errorf("LevelGroups = %v", groups)
	}

	// Tagged profiles grow through AddLevelPoint only.
	if err := p.AddPoint(Point3D{Y: 0.1}); err == nil {
		t.Error("expected error: AddPoint on tagged profile")
	}
	if err := p.AddLevelPoint(Point3D{X: 0, Y: -0.15, Z: 0.05}, "chine"); err != nil {
		t.Fatalf("AddLevelPoint failed: %v", err)
	}
	if len(p.Levels()) != 4 {
		t.Errorf("Levels length = %d", len(p.Levels()))
	}
}

func TestRanges(t *testing.T) {
	p := MustProfile(0, vSection(0))
	if b := p.Beam(); !approx(b, 0.6, tol) {
		t.Errorf("Beam = %v, want 0.6", b)
	}
	if d := p.Depth(); !approx(d, 0.35, tol) {
		t.Errorf("Depth = %v, want 0.35", d)
	}
	zmin, zmax := p.ZRange()
	if !approx(zmin, -0.15, tol) || !approx(zmax, 0.2, tol) {
		t.Errorf("ZRange = (%v, %v)", zmin, zmax)
	}
}

func TestSortByYCarriesTags(t *testing.T) {
	pts := []Point3D{
		{X: 0, Y: 0.3, Z: 0.2},
		{X: 0, Y: -0.3, Z: 0.2},
		{X: 0, Y: 0, Z: -0.15},
	}
	p := MustProfile(0, pts)
	if err := p.SetLevels([]string{"stbd", "port", "keel"}); err != nil {
		t.Fatal(err)
	}
	p.SortByY()

	got := p.Points()
	if got[0].Y != -0.3 || got[1].Y != 0 || got[2].Y != 0.3 {
		t.Errorf("SortByY order = %v", got)
	}
	tags := p.Levels()
	if tags[0] != "port" || tags[1] != "keel" || tags[2] != "stbd" {
		t.Errorf("SortByY tags = %v", tags)
	}
}

func TestTranslateMovesStation(t *testing.T) {
	p := MustProfile(1, vSection(1))
	q := p.Translate(0.5, 0, -0.1)
	if !approx(q.Station(), 1.5, tol) {
		t.Errorf("translated station = %v", q.Station())
	}
	for _, pt := range q.Points() {
		if !approx(pt.X, 1.5, tol) {
			t.Errorf("translated point x = %v", pt.X)
		}
	}
	// Original untouched.
	if p.Station() != 1 {
		t.Error("Translate mutated the receiver")
	}
}

func TestProfileRotateX(t *testing.T) {
	p := MustProfile(0, vSection(0))
	r := p.RotateX(180, 0, 0)
	keel := r.Point(1)
	if !approx(keel.Z, 0.15, 1e-12) {
		t.Errorf("keel z after 180° heel = %v, want 0.15", keel.Z)
	}
	if !approx(r.Station(), 0, tol) {
		t.Errorf("rotation changed station to %v", r.Station())
	}
}

func TestCopyIsDeep(t *testing.T) {
	p := MustProfile(0, vSection(0))
	q := p.Copy()
	if err := q.AddPoint(Point3D{X: 0, Y: 0.5, Z: 0.3}); err != nil {
		t.Fatal(err)
	}
	if p.Count() == q.Count() {
		t.Error("Copy shares point storage with the original")
	}
}
