// Package report formats analysis results for the console.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/ssbeam/internal/beam"
	"github.com/alexiusacademia/ssbeam/internal/input"
	"github.com/alexiusacademia/ssbeam/internal/serviceability"
	"github.com/alexiusacademia/ssbeam/internal/units"
)

const (
	rule   = "═══════════════════════════════════════════════════════════════"
	hrule  = "───────────────────────────────────────────────────────────────"
	indent = "  "
)

// Check runs the serviceability check on a problem's reported deflection
func Check(p input.Problem) serviceability.Result {
	mm := units.Millimetre
	return serviceability.Check(mm.FromSI(p.Case.MaxDeflection()), mm.FromSI(p.Beam().Length))
}

// Write prints the full analysis of p to w
func Write(w io.Writer, p input.Problem, check serviceability.Result) {
	c := p.Case
	spec := c.Beam()
	lu := p.DisplayLength
	pos := func(x float64) string {
		return fmt.Sprintf("%.4g %s", lu.FromSI(x), lu)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "     SIMPLY SUPPORTED BEAM ANALYSIS - %s\n", strings.ToUpper(c.Name()))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	if p.Name != "" {
		fmt.Fprintf(w, "%sProblem: %s\n\n", indent, p.Name)
	}

	// Input summary
	section(w, "INPUT DATA:")
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%sSpan (L):\t%s (%.3f m)\n", indent, pos(spec.Length), spec.Length)
	modulus := fmt.Sprintf("%.2f GPa", units.Gigapascal.FromSI(spec.Modulus))
	if p.Material != "" {
		modulus += " [" + p.Material + "]"
	}
	fmt.Fprintf(tw, "%sYoung's Modulus (E):\t%s\n", indent, modulus)
	fmt.Fprintf(tw, "%sMoment of Inertia (I):\t%.4e mm⁴ (%.4e m⁴)\n", indent, units.Millimetre4.FromSI(spec.Inertia), spec.Inertia)
	if p.Section != nil {
		fmt.Fprintf(tw, "%sSection:\t%.0f x %.0f mm, A = %.0f mm²\n", indent, p.Section.Width, p.Section.Height, p.Section.Area)
	}
	fmt.Fprintf(tw, "%sFlexural Rigidity (EI):\t%.4e N·m²\n", indent, spec.Rigidity())
	switch lc := c.(type) {
	case beam.PointCase:
		dir := "downward"
		if lc.Load.Magnitude < 0 {
			dir = "upward"
		}
		fmt.Fprintf(tw, "%sPoint Load (P):\t%.3f N %s\n", indent, lc.Load.Magnitude, dir)
		fmt.Fprintf(tw, "%sLoad Position (a):\t%s from left support\n", indent, pos(lc.Load.Position))
	case beam.UDLCase:
		fmt.Fprintf(tw, "%sLoad Intensity (w):\t%.3f N/m over full span\n", indent, lc.Load.Intensity)
	}
	tw.Flush()
	fmt.Fprintln(w)

	// Reactions
	r := c.Reactions()
	section(w, "REACTION FORCES:")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "%sLeft Reaction (R1):\t%.3f N\n", indent, r.Left)
	fmt.Fprintf(tw, "%sRight Reaction (R2):\t%.3f N\n", indent, r.Right)
	fmt.Fprintf(tw, "%sTotal Applied Load:\t%.3f N\n", indent, c.TotalLoad())
	tw.Flush()
	fmt.Fprintln(w)

	section(w, "INTERNAL FORCES:")
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "%sMaximum Shear |V|:\t%.3f N\n", indent, c.MaxShear())
	fmt.Fprintf(tw, "%sMaximum Moment (M):\t%.3f Nm at x = %s\n", indent, c.MaxMoment(), pos(c.MaxMomentAt()))
	tw.Flush()
	fmt.Fprintln(w)

	// Deflection
	delta := c.MaxDeflection()
	section(w, "RESULT:")
	fmt.Fprintf(w, "%sMaximum Deflection :\n", indent)
	fmt.Fprintf(w, "%s %.6f m\n", indent, delta)
	fmt.Fprintf(w, "%s %.3f mm\n", indent, units.Millimetre.FromSI(delta))
	fmt.Fprintln(w)
	tw = newTabWriter(w)
	fmt.Fprintf(tw, "%sLocation:\tx = %s\n", indent, pos(c.MaxDeflectionAt()))
	fmt.Fprintf(tw, "%sAllowable (L/%.0f):\t%.3f mm\n", indent, serviceability.LimitRatio, check.LimitMM)
	fmt.Fprintf(tw, "%sUtilization:\t%.1f %%\n", indent, check.Utilization()*100)
	tw.Flush()

	if pc, ok := c.(beam.PointCase); ok {
		x, y := pc.PeakDeflection()
		if math.Abs(y-delta) > 1e-9*math.Max(math.Abs(y), 1e-12) {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%sNote: the deflection above is taken under the load. The elastic\n", indent)
			fmt.Fprintf(w, "%scurve peaks at %.3f mm at x = %s.\n", indent, units.Millimetre.FromSI(y), pos(x))
		}
	}
	fmt.Fprintln(w)

	// Status
	section(w, "STATUS:")
	for _, warning := range p.Warnings {
		fmt.Fprintf(w, "%sWARNING: %s\n", indent, warning)
	}
	switch {
	case check.Message != "":
		fmt.Fprintf(w, "%s%s\n", indent, check.Message)
	default:
		fmt.Fprintf(w, "%sDeflection within serviceability limit (L/%.0f) ✓\n", indent, serviceability.LimitRatio)
	}
	fmt.Fprintln(w)
}

// WriteCheck prints a standalone serviceability check
func WriteCheck(w io.Writer, check serviceability.Result, spanMM float64) {
	fmt.Fprintln(w)
	section(w, "SERVICEABILITY CHECK (L/250):")
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "%sSpan:\t%.3f mm\n", indent, spanMM)
	fmt.Fprintf(tw, "%sDeflection:\t%.3f mm\n", indent, check.DeflectionMM)
	fmt.Fprintf(tw, "%sAllowable:\t%.3f mm\n", indent, check.LimitMM)
	fmt.Fprintf(tw, "%sStatus:\t%s\n", indent, check.Status)
	tw.Flush()
	if check.Message != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s%s\n", indent, check.Message)
	}
	fmt.Fprintln(w)
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, hrule)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
