package style

import (
	"errors"
	"math"
	"strings"
)

// Angle is a rotation stored in radians.
type Angle float32

// Radians constructs an Angle from a radian value.
func Radians(v float32) Angle {
	return Angle(v)
}

// Degrees constructs an Angle from a degree value.
func Degrees(v float32) Angle {
	return Angle(v * (math.Pi / 180))
}

// Radians returns the angle in radians.
func (a Angle) Radians() float32 {
	return float32(a)
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float32 {
	return float32(a) * (180 / math.Pi)
}

// parseAngle recognizes a float literal with an optional deg or rad suffix.
// The suffixed alternatives are tried before the bare-float fallback so that
// "12.5deg" is never consumed as the float 12.5 with a leftover suffix.
func parseAngle(s string) (Angle, string, bool) {
	v, rest, ok := scanFloat(s)
	if !ok {
		return 0, s, false
	}
	if after, found := strings.CutPrefix(rest, "deg"); found {
		return Degrees(v), after, true
	}
	if after, found := strings.CutPrefix(rest, "rad"); found {
		return Radians(v), after, true
	}
	return Radians(v), rest, true
}

// ParseAngle parses an angle string: a float with a deg suffix (converted
// to radians), with a rad suffix, or without a suffix (taken as radians
// already). Boundary whitespace is ignored; any other unconsumed input makes
// the parse fail.
func ParseAngle(s string) (Angle, bool) {
	a, rest, ok := parseAngle(skipSpace(s))
	if !ok || skipSpace(rest) != "" {
		return 0, false
	}
	return a, true
}

// String renders the angle in a form ParseAngle accepts.
func (a Angle) String() string {
	return formatFloat(float32(a)) + "rad"
}

// MarshalText implements encoding.TextMarshaler.
func (a Angle) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Angle) UnmarshalText(text []byte) error {
	v, ok := ParseAngle(string(text))
	if !ok {
		return errors.New("invalid angle string")
	}
	*a = v
	return nil
}
