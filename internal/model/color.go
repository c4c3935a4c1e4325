package model

import (
	"fmt"
	"strings"
)

// Color is the color of a ball. The zero value means no color has been assigned yet.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
)

var playableColors = []Color{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// Colors returns the playable colors in a fixed order
func Colors() []Color {
	result := make([]Color, len(playableColors))
	copy(result, playableColors)
	return result
}

// ColorCount returns the number of playable colors
func ColorCount() int {
	return len(playableColors)
}

// IsSet returns true if the color is one of the playable colors
func (c Color) IsSet() bool {
	return c >= ColorRed && c <= ColorYellow
}

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	default:
		return "none"
	}
}

// Letter returns the single-letter form used in board layouts
func (c Color) Letter() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	default:
		return '.'
	}
}

// ParseColor parses either the full name or the single letter of a color
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "r", "red":
		return ColorRed, nil
	case "b", "blue":
		return ColorBlue, nil
	case "g", "green":
		return ColorGreen, nil
	case "y", "yellow":
		return ColorYellow, nil
	case ".", "none", "":
		return ColorNone, nil
	default:
		return ColorNone, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
}

// MarshalText encodes the color by name
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name or letter
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
