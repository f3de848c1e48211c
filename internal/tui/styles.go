package tui

import "github.com/charmbracelet/lipgloss"

// Layout defaults used before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minHeight     = 5
	borderPadding = 2

	// chromeHeight is the rows used by a list screen's header and help line.
	chromeHeight = 5
)

// Palette.
var (
	ColorHeader  = lipgloss.Color("39")  //nolint:gochecknoglobals // Shared palette.
	ColorLabel   = lipgloss.Color("245") //nolint:gochecknoglobals // Shared palette.
	ColorValue   = lipgloss.Color("252") //nolint:gochecknoglobals // Shared palette.
	ColorMuted   = lipgloss.Color("241") //nolint:gochecknoglobals // Shared palette.
	ColorSpinner = lipgloss.Color("205") //nolint:gochecknoglobals // Shared palette.
	ColorError   = lipgloss.Color("196") //nolint:gochecknoglobals // Shared palette.
	ColorDemon   = lipgloss.Color("160") //nolint:gochecknoglobals // Shared palette.
	ColorHuman   = lipgloss.Color("63")  //nolint:gochecknoglobals // Shared palette.
	ColorAge     = lipgloss.Color("167") //nolint:gochecknoglobals // Shared palette.
)

// Styles shared by every screen.
//
//nolint:gochecknoglobals // Styles are immutable values reused across renders.
var (
	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel).Bold(true)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorHeader).Italic(true)
	SpinnerStyle  = lipgloss.NewStyle().Foreground(ColorSpinner)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	QuoteStyle    = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("233")).
			Italic(true).
			Bold(true).
			Padding(0, 1)
	PillStyle = lipgloss.NewStyle().Background(lipgloss.Color("236")).Padding(0, 1)
)
