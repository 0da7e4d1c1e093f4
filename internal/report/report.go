// Package report renders analysis results as CSV tables and aligned
// text blocks for the CLI and for files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/paddlecraft/gohull/internal/hydro"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
)

// WriteSectionsCSV writes one row per cross-section. NaN centroids of
// dry sections become empty fields.
func WriteSectionsCSV(w io.Writer, secs []waterline.CrossSectionProperties) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"station_m", "area_m2", "centroid_y_m", "centroid_z_m", "beam_m", "draft_m"}); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for _, s := range secs {
		rec := []string{
			num(s.Station), num(s.Area),
			num(s.CentroidY), num(s.CentroidZ),
			num(s.Beam), num(s.Draft),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGZCurveCSV writes one row per heel angle of a righting arm
// curve.
func WriteGZCurveCSV(w io.Writer, c *stability.GZCurve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"heel_deg", "gz_m", "tcb_m", "vcb_m", "stable"}); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for i, a := range c.Angles {
		arm := c.Arms[i]
		rec := []string{
			num(a), num(arm.GZ),
			num(arm.CB.TCB), num(arm.CB.VCB),
			strconv.FormatBool(arm.Stable),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// HydrostaticsText renders a displacement summary as an aligned text
// block.
func HydrostaticsText(name string, d *hydro.DisplacementProperties) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hydrostatics - %s\n", name)
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Waterline height\t%.3f m\n", d.Buoyancy.WaterlineHeight)
	if d.Buoyancy.HeelAngle != 0 || d.Buoyancy.TrimAngle != 0 {
		fmt.Fprintf(tw, "Heel / trim\t%.1f / %.1f deg\n", d.Buoyancy.HeelAngle, d.Buoyancy.TrimAngle)
	}
	fmt.Fprintf(tw, "Displaced volume\t%.4f m^3\n", d.Volume)
	fmt.Fprintf(tw, "Water density\t%.1f kg/m^3\n", d.Density)
	fmt.Fprintf(tw, "Displacement\t%.1f kg (%.4f t)\n", d.Mass, d.Tonnes)
	fmt.Fprintf(tw, "Buoyant force\t%.1f N\n", d.Weight)
	fmt.Fprintf(tw, "LCB\t%.4f m\n", d.Buoyancy.LCB)
	fmt.Fprintf(tw, "TCB\t%.4f m\n", d.Buoyancy.TCB)
	fmt.Fprintf(tw, "VCB\t%.4f m\n", d.Buoyancy.VCB)
	fmt.Fprintf(tw, "Stations\t%d\n", d.Buoyancy.StationCount)
	tw.Flush()
	return b.String()
}

// SectionsText renders the per-station section table.
func SectionsText(secs []waterline.CrossSectionProperties) string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Station (m)\tArea (m^2)\tCy (m)\tCz (m)\tBeam (m)\tDraft (m)")
	for _, s := range secs {
		fmt.Fprintf(tw, "%.3f\t%.4f\t%s\t%s\t%.3f\t%.3f\n",
			s.Station, s.Area, txt(s.CentroidY), txt(s.CentroidZ), s.Beam, s.Draft)
	}
	tw.Flush()
	return b.String()
}

// StabilityText renders the stability metrics of a curve analysis.
func StabilityText(name string, cg stability.CenterOfGravity, m *stability.Metrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stability - %s\n", name)
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total mass\t%.1f kg\n", cg.TotalMass)
	fmt.Fprintf(tw, "CG (x, y, z)\t%.3f, %.3f, %.3f m\n", cg.LCG, cg.TCG, cg.VCG)
	if m.HasGM {
		fmt.Fprintf(tw, "GM (initial)\t%.4f m\n", m.GM)
	} else {
		fmt.Fprintf(tw, "GM (initial)\tnot available\n")
	}
	fmt.Fprintf(tw, "Max GZ\t%.4f m at %.1f deg\n", m.MaxGZ, m.MaxGZAngle)
	if m.HasVanishing {
		fmt.Fprintf(tw, "Vanishing angle\t%.1f deg\n", m.VanishingAngle)
	} else {
		fmt.Fprintf(tw, "Vanishing angle\tbeyond sweep\n")
	}
	if !math.IsNaN(m.PositiveRange[0]) {
		fmt.Fprintf(tw, "Positive range\t%.1f to %.1f deg\n", m.PositiveRange[0], m.PositiveRange[1])
	}
	fmt.Fprintf(tw, "Dynamic stability\t%.4f m*rad\n", m.DynamicStability)
	tw.Flush()
	return b.String()
}

// num formats a CSV number, mapping NaN to an empty field.
func num(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// txt formats a table number, mapping NaN to a dash.
func txt(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
