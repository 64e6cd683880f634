package core

import "fmt"

// Color is a 24-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// RGB constructs a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Palette used across the trainer.
var (
	ColorWhite   = RGB(255, 255, 255)
	ColorBlack   = RGB(0, 0, 0)
	ColorRed     = RGB(255, 0, 0)
	ColorGray    = RGB(70, 70, 70)
	ColorLightBG = RGB(240, 240, 240)
	ColorDarkBG  = RGB(30, 30, 30)
)

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsDark reports whether the mean channel value is below the midpoint.
func (c Color) IsDark() bool {
	return (int(c.R)+int(c.G)+int(c.B))/3 < 128
}

// ForegroundFor picks a readable text colour for the given background:
// white on dark backgrounds, black on light ones.
func ForegroundFor(bg Color) Color {
	if bg.IsDark() {
		return ColorWhite
	}
	return ColorBlack
}

// Theme is the light/dark display state. It is owned by the root menu and
// passed by value to everything that renders.
type Theme struct {
	Dark bool
}

// DefaultTheme is the theme the trainer starts with.
func DefaultTheme() Theme {
	return Theme{Dark: true}
}

// ParseTheme converts "dark" or "light" into a Theme.
func ParseTheme(name string) (Theme, error) {
	switch name {
	case "dark", "":
		return Theme{Dark: true}, nil
	case "light":
		return Theme{Dark: false}, nil
	}
	return Theme{}, fmt.Errorf("%w: unknown theme %q", ErrInvalidConfiguration, name)
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	return Theme{Dark: !t.Dark}
}

// Name returns "Dark" or "Light".
func (t Theme) Name() string {
	if t.Dark {
		return "Dark"
	}
	return "Light"
}

// Background returns the background colour for this theme.
func (t Theme) Background() Color {
	if t.Dark {
		return ColorDarkBG
	}
	return ColorLightBG
}

// Foreground returns the text colour derived from the background.
func (t Theme) Foreground() Color {
	return ForegroundFor(t.Background())
}
