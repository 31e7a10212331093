package model1

import "github.com/derailed/tcell/v2"

var (
	// AddColor row added color
	AddColor tcell.Color = tcell.ColorDodgerBlue

	// ModColor row modified color
	ModColor tcell.Color = tcell.ColorYellow

	// StdColor row default color
	StdColor tcell.Color = tcell.ColorWhite

	// HighlightColor row highlight color
	HighlightColor tcell.Color = tcell.ColorAqua

	// PendingColor row pending color
	PendingColor tcell.Color = tcell.ColorDarkCyan

	// ErrColor row error color
	ErrColor tcell.Color = tcell.ColorOrangeRed

	// KillColor row inactive color
	KillColor tcell.Color = tcell.ColorGray

	// CompletedColor row settled color
	CompletedColor tcell.Color = tcell.ColorGreen
)

// ColorerFunc returns the text color of a row.
type ColorerFunc[R any] func(Row[R]) tcell.Color

// DefaultColorer paints every row with the standard color.
func DefaultColorer[R any](Row[R]) tcell.Color {
	return StdColor
}
