package style

import "errors"

// Rect is a four-sided box of dimension values.
type Rect struct {
	Top, Right, Bottom, Left Val
}

// RectAll returns a Rect with the same value on all four sides.
func RectAll(v Val) Rect {
	return Rect{Top: v, Right: v, Bottom: v, Left: v}
}

// parseRect parses consecutive whitespace-separated dimension values and
// expands them with the CSS box-shorthand rule. A fifth value is an arity
// violation and fails the whole parse, the input is never truncated to four.
func parseRect(s string) (Rect, string, bool) {
	var elems []Val
	rest := s
	for {
		v, r, ok := parseVal(rest)
		if !ok {
			break
		}
		elems = append(elems, v)
		rest = r
		if len(elems) > 4 {
			return Rect{}, s, false
		}
	}
	switch len(elems) {
	case 4:
		return Rect{Top: elems[0], Right: elems[1], Bottom: elems[2], Left: elems[3]}, rest, true
	case 3:
		return Rect{Top: elems[0], Right: elems[1], Bottom: elems[2], Left: elems[1]}, rest, true
	case 2:
		return Rect{Top: elems[0], Right: elems[1], Bottom: elems[0], Left: elems[1]}, rest, true
	case 1:
		return RectAll(elems[0]), rest, true
	}
	return Rect{}, s, false
}

// ParseRect parses a box shorthand of 1 to 4 dimension values: one value
// covers all sides, two cover top/bottom and left/right, three cover top,
// left/right and bottom, four are top, right, bottom and left in that order.
func ParseRect(s string) (Rect, bool) {
	r, rest, ok := parseRect(s)
	if !ok || skipSpace(rest) != "" {
		return Rect{}, false
	}
	return r, true
}

// String renders the four sides in top/right/bottom/left order, re-parsable
// by ParseRect.
func (r Rect) String() string {
	return r.Top.String() + " " + r.Right.String() + " " + r.Bottom.String() + " " + r.Left.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Rect) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rect) UnmarshalText(text []byte) error {
	parsed, ok := ParseRect(string(text))
	if !ok {
		return errors.New("invalid rect string")
	}
	*r = parsed
	return nil
}
