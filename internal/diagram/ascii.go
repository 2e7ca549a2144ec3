package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Terminal chart size used by Render when no size is given
const (
	DefaultHeight = 12
	DefaultWidth  = 60
)

// Render draws a diagram as a terminal line chart. Inverted diagrams are
// drawn with their sign flipped so that downward deflection hangs below
// the zero line.
func Render(d Diagram, height, width int) string {
	if height <= 0 {
		height = DefaultHeight
	}
	if width <= 0 {
		width = DefaultWidth
	}

	pts := d.Scaled()
	if len(pts) == 0 {
		return ""
	}
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
		if d.Inverted {
			ys[i] = -p.Y
		}
	}

	caption := d.Y.Title()
	if d.Inverted {
		caption += ", downward shown below axis"
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(d.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(d.Title))))
	sb.WriteString(asciigraph.Plot(ys,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s: %.4g → %.4g\n", d.X.Title(), pts[0].X, pts[len(pts)-1].X))
	if m, ok := d.ScaledMarker(); ok {
		sb.WriteString(fmt.Sprintf("  Load at %.4g %s: %.4f %s\n", m.X, d.X.Unit, m.Y, d.Y.Unit))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes; %-*s counts bytes
func pad(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
