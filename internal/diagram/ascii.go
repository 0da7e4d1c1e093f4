package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/paddlecraft/gohull/internal/geometry"
	"github.com/paddlecraft/gohull/internal/stability"
	"github.com/paddlecraft/gohull/internal/waterline"
)

// Character grid for section rendering. An odd column count keeps the
// centerline on a column.
const (
	sectionCols = 57
	sectionRows = 19
)

// DrawSectionASCII renders one station cross-section as a character
// grid with the waterline and the submerged area marked.
func DrawSectionASCII(p *geometry.Profile, w waterline.Waterline) string {
	pts := p.Points()
	if len(pts) < 2 {
		return ""
	}

	yMin, yMax := p.YRange()
	zMin, zMax := p.ZRange()
	if wl := w.ZAt(p.Station(), 0); wl > zMax {
		zMax = wl
	}
	if yMax-yMin <= 0 || zMax-zMin <= 0 {
		return ""
	}
	// Margin so outline points do not sit on the frame.
	yPad := 0.05 * (yMax - yMin)
	zPad := 0.05 * (zMax - zMin)
	yMin, yMax = yMin-yPad, yMax+yPad
	zMin, zMax = zMin-zPad, zMax+zPad

	grid := make([][]rune, sectionRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", sectionCols))
	}

	yAt := func(c int) float64 {
		return yMin + (yMax-yMin)*float64(c)/float64(sectionCols-1)
	}
	zAt := func(r int) float64 {
		return zMax - (zMax-zMin)*float64(r)/float64(sectionRows-1)
	}
	colOf := func(y float64) int {
		return int(math.Round((y - yMin) / (yMax - yMin) * float64(sectionCols-1)))
	}
	rowOf := func(z float64) int {
		return int(math.Round((zMax - z) / (zMax - zMin) * float64(sectionRows-1)))
	}

	// Shade the submerged interior cell by cell.
	for r := 0; r < sectionRows; r++ {
		for c := 0; c < sectionCols; c++ {
			y, z := yAt(c), zAt(r)
			if z > w.ZAt(p.Station(), y) {
				continue
			}
			if insideSection(pts, y, z) {
				grid[r][c] = '░'
			}
		}
	}

	// Waterline across the full frame width.
	for c := 0; c < sectionCols; c++ {
		setCell(grid, rowOf(w.ZAt(p.Station(), yAt(c))), c, '~')
	}

	// Outline last so the hull overprints shading and waterline.
	for i := 0; i+1 < len(pts); i++ {
		drawSegment(grid,
			colOf(pts[i].Y), rowOf(pts[i].Z),
			colOf(pts[i+1].Y), rowOf(pts[i+1].Z))
	}

	wlRow := rowOf(w.ZAt(p.Station(), 0))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  SECTION AT x = %.3f m\n", p.Station()))
	border := strings.Repeat("─", sectionCols)
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", border))
	for r := 0; r < sectionRows; r++ {
		sb.WriteString(fmt.Sprintf("  │%s│", string(grid[r])))
		if r == wlRow {
			sb.WriteString(fmt.Sprintf(" ◄─ waterline z = %.3f m", w.ZAt(p.Station(), 0)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", border))
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ### = hull surface\n")
	sb.WriteString("  ░░░ = submerged area\n")
	sb.WriteString("  ~~~ = waterline\n")
	return sb.String()
}

// DrawGZCurveASCII plots a righting arm curve in the terminal.
func DrawGZCurveASCII(c *stability.GZCurve, height int) string {
	if c == nil || len(c.Values) == 0 {
		return ""
	}
	if height <= 0 {
		height = 12
	}
	caption := fmt.Sprintf("GZ (m) over heel %.0f to %.0f deg",
		c.Angles[0], c.Angles[len(c.Angles)-1])
	return asciigraph.Plot(c.Values,
		asciigraph.Height(height),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// insideSection reports whether (y, z) lies inside the section
// polygon. The outline closes from its last point back to the first.
func insideSection(pts []geometry.Point3D, y, z float64) bool {
	inside := false
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		if (a.Z > z) != (b.Z > z) {
			yc := a.Y + (z-a.Z)/(b.Z-a.Z)*(b.Y-a.Y)
			if y < yc {
				inside = !inside
			}
		}
	}
	return inside
}

func drawSegment(grid [][]rune, c0, r0, c1, r1 int) {
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		setCell(grid, r0, c0, '#')
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		c := int(math.Round(float64(c0) + t*float64(c1-c0)))
		r := int(math.Round(float64(r0) + t*float64(r1-r0)))
		setCell(grid, r, c, '#')
	}
}

func setCell(grid [][]rune, r, c int, ch rune) {
	if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
		return
	}
	grid[r][c] = ch
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
