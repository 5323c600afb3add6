package cli

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber     = lipgloss.Color("#E5A00D")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
	Pink      = lipgloss.Color("#EC4899")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true).
			MarginBottom(1)
)

// Raw badge characters (unstyled)
const (
	WatchlistChar = "+"
	WatchedChar   = "✓"
	FavoriteChar  = "♥"
	StarChar      = "★"
)

// Badge styles
var (
	WatchlistBadge = lipgloss.NewStyle().Foreground(Amber).Render(WatchlistChar)
	WatchedBadge   = lipgloss.NewStyle().Foreground(Green).Render(WatchedChar)
	FavoriteBadge  = lipgloss.NewStyle().Foreground(Pink).Render(FavoriteChar)
	SaleStyle      = lipgloss.NewStyle().Foreground(Red).Bold(true)
	OutOfStock     = DimStyle.Render("rupture")
)
