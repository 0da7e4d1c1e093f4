package hullio

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/water"
	"github.com/paddlecraft/gohull/internal/waterline"
)

const tol = 1e-9

// tern is a small three-station touring hull used across the tests.
const tern = `{
  "name": "tern",
  "water_density": 1025,
  "profiles": [
    {"station": 0.0, "points": [{"y": -0.2, "z": 0.30}, {"y": 0, "z": 0.05}, {"y": 0.2, "z": 0.30}]},
    {"station": 1.5, "points": [{"y": -0.3, "z": 0.28}, {"y": 0, "z": 0.0}, {"y": 0.3, "z": 0.28}]},
    {"station": 3.0, "points": [{"y": -0.22, "z": 0.30}, {"y": 0, "z": 0.06}, {"y": 0.22, "z": 0.30}]}
  ],
  "bow": [{"x": 3.8, "z": 0.32}],
  "stern": [{"x": -0.7, "z": 0.3}]
}`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(tern))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if def.Name != "tern" {
		t.Errorf("name = %q", def.Name)
	}
	if def.Density != 1025 {
		t.Errorf("density = %.1f, want 1025", def.Density)
	}
	if def.Hull.Count() != 3 {
		t.Fatalf("profile count = %d, want 3", def.Hull.Count())
	}
	if math.Abs(def.Hull.Length()-3) > tol {
		t.Errorf("length = %.3f, want 3", def.Hull.Length())
	}
	if math.Abs(def.Hull.MaxBeam()-0.6) > tol {
		t.Errorf("max beam = %.3f, want 0.6", def.Hull.MaxBeam())
	}
	if len(def.Bow) != 1 || len(def.Stern) != 1 {
		t.Errorf("end points: bow %d, stern %d, want 1 each", len(def.Bow), len(def.Stern))
	}
}

func TestParseDefaultDensity(t *testing.T) {
	stripped := strings.Replace(tern, `"water_density": 1025,`, "", 1)
	def, err := Parse([]byte(stripped))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if def.Density != water.FreshDensity {
		t.Errorf("default density = %.1f, want fresh water", def.Density)
	}
}

func TestParseUnits(t *testing.T) {
	cm := `{
  "name": "scaled", "units": "cm",
  "profiles": [
    {"station": 0, "points": [{"y": -20, "z": 30}, {"y": 0, "z": 5}, {"y": 20, "z": 30}]},
    {"station": 150, "points": [{"y": -30, "z": 28}, {"y": 0, "z": 0}, {"y": 30, "z": 28}]}
  ]
}`
	def, err := Parse([]byte(cm))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if math.Abs(def.Hull.Length()-1.5) > tol {
		t.Errorf("length = %.4f m, want 1.5", def.Hull.Length())
	}
	if math.Abs(def.Hull.MaxBeam()-0.6) > tol {
		t.Errorf("max beam = %.4f m, want 0.6", def.Hull.MaxBeam())
	}
}

func TestParseLevelTags(t *testing.T) {
	src := `{
  "name": "tagged",
  "profiles": [
    {"station": 0, "points": [{"y": -0.2, "z": 0.3, "level": "sheer"}, {"y": 0, "z": 0, "level": "keel"}, {"y": 0.2, "z": 0.3, "level": "sheer"}]},
    {"station": 2, "points": [{"y": -0.25, "z": 0.3, "level": "sheer"}, {"y": 0, "z": 0, "level": "keel"}, {"y": 0.25, "z": 0.3, "level": "sheer"}]}
  ],
  "bow": [{"x": 2.9, "z": 0.32, "level": "sheer"}, {"x": 2.5, "z": 0.05, "level": "keel"}]
}`
	def, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	p, err := def.Hull.Profile(0)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !p.Tagged() {
		t.Fatal("profile lost its level tags")
	}
	if levels := p.Levels(); levels[0] != "sheer" || levels[1] != "keel" {
		t.Errorf("levels = %v", levels)
	}
	if def.Bow[1].Level != "keel" {
		t.Errorf("bow levels = %v", def.Bow)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"one profile", `{"profiles": [{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}]}`},
		{"two points", `{"profiles": [
			{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 1, "z": 0}]},
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}]}`},
		{"descending stations", `{"profiles": [
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]},
			{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}]}`},
		{"mixed tags", `{"profiles": [
			{"station": 0, "points": [{"y": -1, "z": 0, "level": "sheer"}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]},
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}]}`},
		{"off-center bow", `{"profiles": [
			{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]},
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}],
			"bow": [{"x": 2, "y": 0.3, "z": 0}]}`},
		{"two untagged bow points", `{"profiles": [
			{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]},
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}],
			"bow": [{"x": 2, "z": 0}, {"x": 2.2, "z": 0.1}]}`},
		{"bad units", `{"units": "ft", "profiles": [
			{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]},
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}]}`},
		{"negative density", `{"water_density": -5, "profiles": [
			{"station": 0, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]},
			{"station": 1, "points": [{"y": -1, "z": 0}, {"y": 0, "z": -1}, {"y": 1, "z": 0}]}]}`},
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c.src)); err == nil {
			t.Errorf("%s: expected a validation error", c.name)
		}
	}
}

func TestRoundTripPreservesHydrostatics(t *testing.T) {
	def, err := Parse([]byte(tern))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	wl := waterline.Level(0.2)
	before, err := hydro.Buoyancy(def.Hull, wl, hydro.Options{})
	if err != nil {
		t.Fatalf("buoyancy failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "tern.json")
	if err := Save(path, def); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	after, err := hydro.Buoyancy(loaded.Hull, wl, hydro.Options{})
	if err != nil {
		t.Fatalf("buoyancy after round trip failed: %v", err)
	}

	if math.Abs(before.Volume-after.Volume) > 1e-3*before.Volume {
		t.Errorf("volume drifted: %.6f to %.6f", before.Volume, after.Volume)
	}
	if math.Abs(before.LCB-after.LCB) > 1e-3 {
		t.Errorf("LCB drifted: %.6f to %.6f", before.LCB, after.LCB)
	}
	if math.Abs(before.VCB-after.VCB) > 1e-3 {
		t.Errorf("VCB drifted: %.6f to %.6f", before.VCB, after.VCB)
	}
	if len(loaded.Bow) != 1 || len(loaded.Stern) != 1 {
		t.Errorf("end points lost in round trip")
	}
}

func TestExpandedHull(t *testing.T) {
	def, err := Parse([]byte(tern))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	h, err := def.ExpandedHull(2)
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if h.Count() != 3+2+2 {
		t.Errorf("expanded count = %d, want 7", h.Count())
	}
	if def.Hull.Count() != 3 {
		t.Errorf("expansion mutated the stored hull: %d profiles", def.Hull.Count())
	}

	// The tapered ends pull the hull out toward the end points.
	if h.Length() <= def.Hull.Length() {
		t.Errorf("expanded length %.3f not beyond original %.3f", h.Length(), def.Hull.Length())
	}

	// Volume grows once the tapered ends are part of the hull.
	wl := waterline.Level(0.2)
	base, err := hydro.Volume(def.Hull, wl, hydro.Options{})
	if err != nil {
		t.Fatalf("base volume failed: %v", err)
	}
	expanded, err := hydro.Volume(h, wl, hydro.Options{})
	if err != nil {
		t.Fatalf("expanded volume failed: %v", err)
	}
	if expanded <= base {
		t.Errorf("expanded volume %.6f not beyond base %.6f", expanded, base)
	}
}

func TestExpandedHullRejectsInsideEndPoint(t *testing.T) {
	src := strings.Replace(tern, `"bow": [{"x": 3.8, "z": 0.32}]`, `"bow": [{"x": 2.0, "z": 0.32}]`, 1)
	def, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := def.ExpandedHull(2); err == nil {
		t.Error("expected error for a bow point inside the hull")
	}
}
