package loom

import "fmt"

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseColor parses a CSS-style hex color literal: #rgb, #rrggbb or
// #rrggbbaa.
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color literal %q: must start with '#'", s)
	}
	hex := s[1:]
	nibble := func(c byte) (uint8, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	channels := make([]uint8, 0, 4)
	switch len(hex) {
	case 3:
		for i := 0; i < 3; i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return Color{}, fmt.Errorf("invalid color literal %q: bad hex digit", s)
			}
			channels = append(channels, n<<4|n)
		}
		channels = append(channels, 0xff)
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := nibble(hex[i])
			lo, ok2 := nibble(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("invalid color literal %q: bad hex digit", s)
			}
			channels = append(channels, hi<<4|lo)
		}
		if len(channels) == 3 {
			channels = append(channels, 0xff)
		}
	default:
		return Color{}, fmt.Errorf("invalid color literal %q: expected 3, 6 or 8 hex digits", s)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// String returns the color as a #rrggbbaa literal.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Brush describes how a shape is filled. The current engine supports solid
// color brushes; the type leaves room for gradients without changing the
// Value surface.
type Brush struct {
	color Color
}

// SolidColorBrush returns a brush that fills with the single color c.
func SolidColorBrush(c Color) Brush {
	return Brush{color: c}
}

// Color returns the brush color.
func (b Brush) Color() Color {
	return b.color
}

// String returns the brush color as a hex literal.
func (b Brush) String() string {
	return b.color.String()
}
