package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
)

func sampleSections() []waterline.CrossSectionProperties {
	return []waterline.CrossSectionProperties{
		{Station: 0, Area: 0.02, CentroidY: 0, CentroidZ: -0.05, Beam: 0.4, Draft: 0.12},
		{Station: 1, Area: 0, CentroidY: math.NaN(), CentroidZ: math.NaN()},
	}
}

func TestWriteSectionsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSectionsCSV(&buf, sampleSections()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "station_m,area_m2,centroid_y_m,centroid_z_m,beam_m,draft_m" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.000000,0.020000,") {
		t.Errorf("first row = %q", lines[1])
	}
	// The dry station writes empty centroid fields, not NaN.
	if strings.Contains(lines[2], "NaN") {
		t.Errorf("dry row leaked NaN: %q", lines[2])
	}
	if !strings.Contains(lines[2], ",,") {
		t.Errorf("dry row should have empty centroid fields: %q", lines[2])
	}
}

func TestWriteGZCurveCSV(t *testing.T) {
	c := &stability.GZCurve{
		Angles: []float64{0, 10},
		Values: []float64{0, 0.05},
		Arms: []*stability.RightingArm{
			{HeelAngle: 0, GZ: 0, Stable: true},
			{HeelAngle: 10, GZ: 0.05, Stable: true},
		},
	}
	var buf bytes.Buffer
	if err := WriteGZCurveCSV(&buf, c); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "heel_deg,gz_m,tcb_m,vcb_m,stable" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "true") {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestHydrostaticsText(t *testing.T) {
	d := &hydro.DisplacementProperties{
		Volume:  0.123456,
		Density: 1025,
		Mass:    126.54,
		Tonnes:  0.12654,
		Weight:  1240.9,
		Buoyancy: hydro.CenterOfBuoyancy{
			Volume: 0.123456, LCB: 2.31, TCB: 0, VCB: -0.08,
			WaterlineHeight: 0.2, StationCount: 21,
		},
	}
	out := HydrostaticsText("tern", d)
	for _, want := range []string{"Hydrostatics - tern", "0.1235 m^3", "126.5 kg", "LCB", "2.3100 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSectionsTextMarksDryStations(t *testing.T) {
	out := SectionsText(sampleSections())
	if !strings.Contains(out, "-") {
		t.Errorf("dry station not marked:\n%s", out)
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("NaN leaked into the table:\n%s", out)
	}
}

func TestStabilityText(t *testing.T) {
	cg := stability.CenterOfGravity{TotalMass: 120, LCG: 2.4, VCG: 0.3}
	m := &stability.Metrics{
		MaxGZ: 0.21, MaxGZAngle: 35,
		VanishingAngle: 71.2, HasVanishing: true,
		PositiveRange: [2]float64{0, 71.2},
		GM:            0.52, HasGM: true,
		DynamicStability: 0.17,
	}
	out := StabilityText("tern", cg, m)
	for _, want := range []string{"120.0 kg", "0.5200 m", "0.2100 m at 35.0 deg", "71.2 deg", "0.1700 m*rad"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	m.HasGM = false
	m.HasVanishing = false
	m.PositiveRange = [2]float64{math.NaN(), math.NaN()}
	out = StabilityText("tern", cg, m)
	if !strings.Contains(out, "not available") || !strings.Contains(out, "beyond sweep") {
		t.Errorf("degenerate metrics not rendered:\n%s", out)
	}
}
