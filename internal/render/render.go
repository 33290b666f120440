// Package render prints calculator results for the terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexshd/bridgecalc"
	"github.com/alexshd/bridgecalc/internal/session"
)

// Printer writes styled results to w. Colors are dropped when w is not a
// terminal.
type Printer struct {
	w io.Writer
	s styles
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, s: newStyles(lipgloss.NewRenderer(w))}
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *Printer) field(label, value string) string {
	return p.s.label.Render(label) + " " + p.s.value.Render(value)
}

func (p *Printer) classification(c bridgecalc.Classification) string {
	if c == bridgecalc.Stable {
		return p.s.stable.Render(c.Verdict())
	}
	return p.s.unknown.Render(c.Verdict())
}

// Radius prints a bridge-orbit result.
func (p *Printer) Radius(r session.RadiusResponse) {
	p.println(p.field("Radius", fmt.Sprintf("%.3e m", r.Radius)))
	p.println(p.field("QC", fmt.Sprintf("%.6f", r.QuantumCorrection)))
}

// Mass prints a mass result.
func (p *Printer) Mass(r session.MassResponse) {
	p.println(p.field("Mass", fmt.Sprintf("%.3e kg", r.Mass)))
	p.println(p.field("QC", fmt.Sprintf("%.6f", r.QuantumCorrection)))
}

// Index prints a solved index.
func (p *Printer) Index(r session.IndexResponse) {
	p.println(p.field("n", fmt.Sprintf("%.3f", r.Index)))
}

// Comparison prints an error percent and its verdict.
func (p *Printer) Comparison(r session.ErrorResponse) {
	p.println(p.field("Error", fmt.Sprintf("%.3f%%", r.ErrorPercent)))
	p.println(p.classification(r.Classification))
}

// Approximation prints one particle in a panel.
func (p *Printer) Approximation(r session.ApproxResponse) {
	body := strings.Join([]string{
		p.s.title.Render(r.Particle.Name),
		p.field("n", strconv.FormatFloat(r.Particle.Index, 'f', -1, 64)),
		p.field("Mass", fmt.Sprintf("%.3e kg", r.Mass)),
		p.field("Known", fmt.Sprintf("%.3e kg", r.Particle.Mass)),
		p.field("Error", fmt.Sprintf("%.3f%%", r.ErrorPercent)),
		p.classification(r.Classification),
	}, "\n")
	p.println(p.s.panel.Render(body))
}

// Approximations prints several particles as one table.
func (p *Printer) Approximations(rs []session.ApproxResponse) {
	rows := make([][]string, len(rs))
	for i, r := range rs {
		rows[i] = []string{
			r.Particle.Name,
			strconv.FormatFloat(r.Particle.Index, 'f', -1, 64),
			fmt.Sprintf("%.3e", r.Mass),
			fmt.Sprintf("%.3e", r.Particle.Mass),
			fmt.Sprintf("%.3f%%", r.ErrorPercent),
			string(r.Classification),
		}
	}
	p.table([]string{"Particle", "n", "Mass (kg)", "Known (kg)", "Error", "Class"}, rows, func(row, col int) lipgloss.Style {
		if col == 5 && row >= 0 && row < len(rs) && rs[row].Classification == bridgecalc.Stable {
			return p.s.cell.Inherit(p.s.stable)
		}
		return p.s.cell
	})
}

// Particles prints the reference table.
func (p *Printer) Particles(t bridgecalc.ReferenceTable) {
	ps := t.Particles()
	rows := make([][]string, len(ps))
	for i, kp := range ps {
		rows[i] = []string{kp.Name, strconv.FormatFloat(kp.Index, 'f', -1, 64), fmt.Sprintf("%.6e", kp.Mass)}
	}
	p.table([]string{"Particle", "n", "Mass (kg)"}, rows, nil)
}

// Sweep prints sweep points, one row per index.
func (p *Printer) Sweep(q bridgecalc.Quantity, points []bridgecalc.SweepPoint) {
	unit := "kg"
	if q == bridgecalc.Radius {
		unit = "m"
	}
	rows := make([][]string, len(points))
	for i, pt := range points {
		rows[i] = []string{strconv.FormatFloat(pt.Index, 'g', -1, 64), fmt.Sprintf("%.6e", pt.Value)}
	}
	p.table([]string{"n", fmt.Sprintf("%s (%s)", q, unit)}, rows, nil)
}

// Log prints session log lines.
func (p *Printer) Log(lines []string) {
	for _, line := range lines {
		p.println(p.s.muted.Render(line))
	}
}

// Error prints err. User-facing messages are shown as they are.
func (p *Printer) Error(err error) {
	var ue *session.UserError
	if errors.As(err, &ue) {
		p.println(p.s.unknown.Render(ue.Message))
		return
	}
	p.println(p.s.err.Render("Error: " + err.Error()))
}

func (p *Printer) table(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.s.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.s.header
			}
			if cell != nil {
				return cell(row, col)
			}
			return p.s.cell
		})
	p.println(t.Render())
}
