package style

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Color is a four-channel RGBA color with float channels in [0, 1]. HSL
// construction paths convert to RGB up front; there is no separate HSL
// representation.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color from red, green and blue channels.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color from all four channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HSL returns an opaque color from hue (degrees), saturation and lightness.
func HSL(h, s, l float32) Color {
	return HSLA(h, s, l, 1)
}

// HSLA returns a color from hue (degrees), saturation, lightness and alpha.
func HSLA(h, s, l, a float32) Color {
	r, g, b := hslToRGB(float64(h), float64(s), float64(l))
	return Color{R: r, G: g, B: b, A: a}
}

// hslToRGB implements the CSS HSL to RGB mapping, hue wrapped into [0, 360).
func hslToRGB(h, s, l float64) (float32, float32, float32) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return float32(r + m), float32(g + m), float32(b + m)
}

// Hex parses a hexadecimal color with exactly 8, 6 or 3 digits, with or
// without a leading #. The 8-digit form carries alpha; the shorter forms are
// opaque. In the 3-digit form every digit is duplicated (F -> FF).
func Hex(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 8:
		r, ok1 := hexByte(s[0:2])
		g, ok2 := hexByte(s[2:4])
		b, ok3 := hexByte(s[4:6])
		a, ok4 := hexByte(s[6:8])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return Color{}, false
		}
		return RGBA(r, g, b, a), true
	case 6:
		r, ok1 := hexByte(s[0:2])
		g, ok2 := hexByte(s[2:4])
		b, ok3 := hexByte(s[4:6])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return RGB(r, g, b), true
	case 3:
		r, ok1 := hexHalf(s[0])
		g, ok2 := hexHalf(s[1])
		b, ok3 := hexHalf(s[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return RGB(r, g, b), true
	}
	return Color{}, false
}

func hexByte(s string) (float32, bool) {
	hi, ok1 := hexDigit(s[0])
	lo, ok2 := hexDigit(s[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return float32(hi<<4|lo) / 255, true
}

// hexHalf expands a single digit into a byte by duplication.
func hexHalf(c byte) (float32, bool) {
	d, ok := hexDigit(c)
	if !ok {
		return 0, false
	}
	return float32(d*17) / 255, true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// parseColorFn matches name(a1, a2, ...) with exactly argc float arguments.
// Commas may carry whitespace on either side; no whitespace is allowed
// between the function name and the opening parenthesis.
func parseColorFn(s, name string, argc int) ([]float32, string, bool) {
	rest, ok := strings.CutPrefix(s, name)
	if !ok {
		return nil, s, false
	}
	if rest, ok = strings.CutPrefix(rest, "("); !ok {
		return nil, s, false
	}
	args := make([]float32, 0, argc)
	for i := 0; i < argc; i++ {
		if i > 0 {
			rest = skipSpace(rest)
			if rest, ok = strings.CutPrefix(rest, ","); !ok {
				return nil, s, false
			}
		}
		rest = skipSpace(rest)
		var v float32
		if v, rest, ok = scanFloat(rest); !ok {
			return nil, s, false
		}
		args = append(args, v)
	}
	rest = skipSpace(rest)
	if rest, ok = strings.CutPrefix(rest, ")"); !ok {
		return nil, s, false
	}
	return args, rest, true
}

// parseHexColor matches # followed by exactly 8, 6 or 3 hex digits. The
// longest form is tried first: the forms share the # prefix and an 8-digit
// color must not be consumed as a 6-digit one with leftovers.
func parseHexColor(s string) (Color, string, bool) {
	digits, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, s, false
	}
	n := 0
	for n < len(digits) && n < 8 && isHexDigit(digits[n]) {
		n++
	}
	for _, take := range []int{8, 6, 3} {
		if n < take {
			continue
		}
		if c, ok := Hex(digits[:take]); ok {
			return c, digits[take:], true
		}
	}
	return Color{}, s, false
}

// parseColor alternates over the color forms: the functional notations, hex
// notation, then a named-color lookup which consumes all remaining input.
func parseColor(s string) (Color, string, bool) {
	in := skipSpace(s)

	if args, rest, ok := parseColorFn(in, "rgb", 3); ok {
		return RGB(args[0], args[1], args[2]), skipSpace(rest), true
	}
	if args, rest, ok := parseColorFn(in, "rgba", 4); ok {
		return RGBA(args[0], args[1], args[2], args[3]), skipSpace(rest), true
	}
	if args, rest, ok := parseColorFn(in, "hsl", 3); ok {
		return HSL(args[0], args[1], args[2]), skipSpace(rest), true
	}
	if args, rest, ok := parseColorFn(in, "hsla", 4); ok {
		return HSLA(args[0], args[1], args[2], args[3]), skipSpace(rest), true
	}
	if c, rest, ok := parseHexColor(in); ok {
		return c, skipSpace(rest), true
	}
	if c, ok := lookupNamedColor(in); ok {
		return c, "", true
	}
	return Color{}, s, false
}

// ParseColor parses a color string: rgb()/rgba()/hsl()/hsla() functional
// notation with raw 0..1 float channels (hue in degrees), #-prefixed hex
// with 8, 6 or 3 digits, or a CSS color name.
func ParseColor(s string) (Color, bool) {
	c, rest, ok := parseColor(s)
	if !ok || skipSpace(rest) != "" {
		return Color{}, false
	}
	return c, true
}

// String renders the color in rgba() functional form, re-parsable by
// ParseColor.
func (c Color) String() string {
	return "rgba(" + formatFloat(c.R) + ", " + formatFloat(c.G) + ", " +
		formatFloat(c.B) + ", " + formatFloat(c.A) + ")"
}

// HexString renders the color as 8 hex digits with a leading '#'. Channels
// are clamped to [0, 1] before conversion.
func (c Color) HexString() string {
	b := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(math.Round(float64(v) * 255))
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", b(c.R), b(c.G), b(c.B), b(c.A))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ParseColor(string(text))
	if !ok {
		return errors.New("invalid color string")
	}
	*c = parsed
	return nil
}
