package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - labels, focus
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - results
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - blended kinds
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			Width(8)

	LabelFocusedStyle = LabelStyle.
				Foreground(ColorAccent)
)

// Result styles
var (
	ResultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2).
			Margin(1, 0)

	BannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	WordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Background(ColorBgAlt).
			Padding(0, 2)

	KindBlendedStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	KindFallbackStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TraceStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// History styles
var (
	HistoryHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				MarginTop(1)

	HistoryItemStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	HistoryResultStyle = lipgloss.NewStyle().
				Foreground(ColorAccent)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// ContentStyle pads the whole view.
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)
