package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
)

func boxProfile(station, halfBeam, depth float64) *geometry.Profile {
	return geometry.MustProfile(station, []geometry.Point3D{
		{X: station, Y: -halfBeam, Z: 0},
		{X: station, Y: -halfBeam, Z: -depth},
		{X: station, Y: halfBeam, Z: -depth},
		{X: station, Y: halfBeam, Z: 0},
	})
}

func sampleCurve() *stability.GZCurve {
	return &stability.GZCurve{
		Angles: []float64{0, 15, 30, 45, 60},
		Values: []float64{0, 0.08, 0.12, 0.09, -0.02},
	}
}

func TestDrawSectionASCII(t *testing.T) {
	out := DrawSectionASCII(boxProfile(2, 1, 1), waterline.Level(-0.5))
	for _, want := range []string{
		"SECTION AT x = 2.000",
		"waterline z = -0.500",
		"#", "~", "░",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDrawSectionASCIIDryHull(t *testing.T) {
	out := DrawSectionASCII(boxProfile(0, 1, 1), waterline.Level(-3))
	// The legend always names the symbols, so inspect the frame only.
	body := strings.Split(out, "Legend:")[0]
	if strings.Contains(body, "░") {
		t.Errorf("dry section should have no shading:\n%s", out)
	}
	if strings.Contains(body, "~") {
		t.Errorf("waterline below frame should not be drawn:\n%s", out)
	}
}

func TestDrawSectionASCIIFlatProfile(t *testing.T) {
	flat := geometry.MustProfile(0, []geometry.Point3D{
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	})
	if out := DrawSectionASCII(flat, waterline.Level(-1)); out != "" {
		t.Errorf("flat profile should render nothing, got:\n%s", out)
	}
}

func TestDrawGZCurveASCII(t *testing.T) {
	out := DrawGZCurveASCII(sampleCurve(), 0)
	if out == "" {
		t.Fatal("empty plot for a valid curve")
	}
	if !strings.Contains(out, "GZ (m) over heel 0 to 60 deg") {
		t.Errorf("caption missing:\n%s", out)
	}
	if DrawGZCurveASCII(nil, 10) != "" {
		t.Error("nil curve should render nothing")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("HYDROSTATICS", []string{"Volume: 0.123 m^3", "LCB: 2.31 m"})
	for _, want := range []string{"╔", "╚", "HYDROSTATICS", "Volume: 0.123 m^3", "LCB: 2.31 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("box missing %q:\n%s", want, out)
		}
	}
}

func TestExportSectionDiagram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.png")
	if err := ExportSectionDiagram(boxProfile(1, 1, 0.8), waterline.Level(-0.3), path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty image file")
	}
}

func TestExportGZCurve(t *testing.T) {
	m := &stability.Metrics{
		MaxGZ: 0.12, MaxGZAngle: 30,
		VanishingAngle: 55, HasVanishing: true,
	}
	path := filepath.Join(t.TempDir(), "gz.svg")
	if err := ExportGZCurve(sampleCurve(), m, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}

	if err := ExportGZCurve(&stability.GZCurve{}, nil, path); err == nil {
		t.Error("empty curve should fail")
	}
}

func TestExportAreaCurveDefaultsToPNG(t *testing.T) {
	base := filepath.Join(t.TempDir(), "areas")
	secs := []waterline.CrossSectionProperties{
		{Station: 0, Area: 0.1},
		{Station: 1, Area: 0.3},
		{Station: 2, Area: 0.1},
	}
	if err := ExportAreaCurve(secs, base); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(base + ".png"); err != nil {
		t.Fatalf("default png not written: %v", err)
	}

	if err := ExportAreaCurve(secs[:1], base); err == nil {
		t.Error("single section should fail")
	}
}
