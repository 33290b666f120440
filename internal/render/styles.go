package render

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// styles are bound to one renderer so color output follows the destination
// writer rather than stdout.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	stable  lipgloss.Style
	unknown lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
	panel   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true),
		label: r.NewStyle().
			Foreground(ColorMuted).
			Width(8),
		value: r.NewStyle().
			Bold(true),
		stable: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		unknown: r.NewStyle().
			Foreground(ColorWarning),
		err: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
		muted: r.NewStyle().
			Foreground(ColorMuted),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),
		header: r.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1),
		cell: r.NewStyle().
			Padding(0, 1),
		border: r.NewStyle().
			Foreground(ColorMuted),
	}
}
