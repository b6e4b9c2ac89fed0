package core

import (
	"fmt"
	"strings"
)

// Color represents a ball color. The zero value is not a valid color.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorBlack
	ColorBlue
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
)

// Palette is the fixed set of ball colors in allocation order.
var Palette = [...]Color{
	ColorRed,
	ColorBlack,
	ColorBlue,
	ColorGreen,
	ColorYellow,
	ColorCyan,
	ColorMagenta,
}

// EmptyChar is the character used for an empty cell in encoded state.
const EmptyChar = '0'

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlack:
		return "black"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorCyan:
		return "cyan"
	case ColorMagenta:
		return "magenta"
	default:
		return "none"
	}
}

// Char returns the single character used for this color in encoded state.
func (c Color) Char() byte {
	switch c {
	case ColorRed:
		return 'r'
	case ColorBlack:
		return 'b'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'g'
	case ColorYellow:
		return 'y'
	case ColorCyan:
		return 'c'
	case ColorMagenta:
		return 'm'
	default:
		return EmptyChar
	}
}

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	return c >= ColorRed && c <= ColorMagenta
}

// ColorFromChar converts an encoded color character to a Color.
// Returns ColorNone and false if the character is not a palette color.
// Note that the lookup is case-sensitive: 'b' is black, 'B' is blue.
func ColorFromChar(ch byte) (Color, bool) {
	switch ch {
	case 'r':
		return ColorRed, true
	case 'b':
		return ColorBlack, true
	case 'B':
		return ColorBlue, true
	case 'g':
		return ColorGreen, true
	case 'y':
		return ColorYellow, true
	case 'c':
		return ColorCyan, true
	case 'm':
		return ColorMagenta, true
	default:
		return ColorNone, false
	}
}

// ParseColor converts a color name or its encoded character to a Color.
func ParseColor(s string) (Color, bool) {
	if len(s) == 1 {
		return ColorFromChar(s[0])
	}
	switch strings.ToLower(s) {
	case "red":
		return ColorRed, true
	case "black":
		return ColorBlack, true
	case "blue":
		return ColorBlue, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "cyan":
		return ColorCyan, true
	case "magenta":
		return ColorMagenta, true
	default:
		return ColorNone, false
	}
}

// MarshalText implements encoding.TextMarshaler using the color name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts a name,
// an encoded character, or "none".
func (c *Color) UnmarshalText(text []byte) error {
	if string(text) == "none" {
		*c = ColorNone
		return nil
	}
	parsed, ok := ParseColor(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColor, text)
	}
	*c = parsed
	return nil
}
