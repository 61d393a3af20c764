package style

import (
	"errors"
	"strconv"
	"strings"
)

// Unit tags the variants a Val can carry.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
	UnitVw
	UnitVh
	UnitVMin
	UnitVMax
)

// String returns the textual suffix of the unit ("auto" for UnitAuto).
func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPx:
		return "px"
	case UnitPercent:
		return "%"
	case UnitVw:
		return "vw"
	case UnitVh:
		return "vh"
	case UnitVMin:
		return "vmin"
	case UnitVMax:
		return "vmax"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// Val is a single dimension value: the auto keyword or a float amount tagged
// with its unit.
type Val struct {
	Unit   Unit
	Amount float32
}

// Auto returns the auto variant.
func Auto() Val {
	return Val{Unit: UnitAuto}
}

// Px returns a value in logical pixels.
func Px(v float32) Val {
	return Val{Unit: UnitPx, Amount: v}
}

// Percent returns a value relative to the parent dimension.
func Percent(v float32) Val {
	return Val{Unit: UnitPercent, Amount: v}
}

// Vw returns a value relative to the viewport width.
func Vw(v float32) Val {
	return Val{Unit: UnitVw, Amount: v}
}

// Vh returns a value relative to the viewport height.
func Vh(v float32) Val {
	return Val{Unit: UnitVh, Amount: v}
}

// VMin returns a value relative to the smaller viewport dimension.
func VMin(v float32) Val {
	return Val{Unit: UnitVMin, Amount: v}
}

// VMax returns a value relative to the larger viewport dimension.
func VMax(v float32) Val {
	return Val{Unit: UnitVMax, Amount: v}
}

// IsAuto reports whether the value is the auto keyword.
func (v Val) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Suffix alternatives in match order.
var valSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"px", UnitPx},
	{"%", UnitPercent},
	{"vw", UnitVw},
	{"vh", UnitVh},
	{"vmin", UnitVMin},
	{"vmax", UnitVMax},
}

// parseVal recognizes the auto keyword or a float literal with a mandatory
// unit suffix. A bare numeral is not a valid dimension. Whitespace around
// the value is consumed so element parses can be chained.
func parseVal(s string) (Val, string, bool) {
	in := skipSpace(s)
	if after, found := strings.CutPrefix(in, "auto"); found {
		return Auto(), skipSpace(after), true
	}
	v, rest, ok := scanFloat(in)
	if !ok {
		return Val{}, s, false
	}
	for _, alt := range valSuffixes {
		if after, found := strings.CutPrefix(rest, alt.suffix); found {
			return Val{Unit: alt.unit, Amount: v}, skipSpace(after), true
		}
	}
	return Val{}, s, false
}

// ParseVal parses a dimension string: the auto keyword or a float with a
// px, %, vw, vh, vmin or vmax suffix. Unlike angles there is no unit-less
// fallback, a bare numeral fails.
func ParseVal(s string) (Val, bool) {
	v, rest, ok := parseVal(s)
	if !ok || skipSpace(rest) != "" {
		return Val{}, false
	}
	return v, true
}

// String renders the value in a form ParseVal accepts.
func (v Val) String() string {
	if v.Unit == UnitAuto {
		return "auto"
	}
	return formatFloat(v.Amount) + v.Unit.String()
}

// MarshalText implements encoding.TextMarshaler.
func (v Val) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Val) UnmarshalText(text []byte) error {
	parsed, ok := ParseVal(string(text))
	if !ok {
		return errors.New("invalid val string")
	}
	*v = parsed
	return nil
}
