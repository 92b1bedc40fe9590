package output

import (
	"time"

	"github.com/fatih/color"
)

// Theme is the palette and display time zone passed to every human
// rendering. With colors disabled each Sprint returns its input unchanged.
type Theme struct {
	Location *time.Location

	Bold   *color.Color
	Dim    *color.Color
	Green  *color.Color
	Red    *color.Color
	Yellow *color.Color
	Cyan   *color.Color
}

// NewTheme builds a palette with colors forced on or off.
func NewTheme(colored bool, loc *time.Location) *Theme {
	if loc == nil {
		loc = time.UTC
	}
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return &Theme{
		Location: loc,
		Bold:     mk(color.Bold),
		Dim:      mk(color.Faint),
		Green:    mk(color.FgGreen),
		Red:      mk(color.FgRed),
		Yellow:   mk(color.FgYellow),
		Cyan:     mk(color.FgCyan),
	}
}
