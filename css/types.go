package css

import (
	"fmt"
	"io"
	"strings"

	"cssval/common"
	"cssval/style"
)

// Declaration is a single property declaration from an inline style.
type Declaration struct {
	Property string // Property name, lowercased (e.g., "background-color")
	Value    string // Value text with whitespace collapsed (e.g., "rgb(1.0, 0, 0)")
}

// Style represents a parsed inline style declaration list.
type Style struct {
	Declarations []Declaration // All declarations in source order
	Warnings     []string      // Warnings for skipped or malformed input
}

// Get returns the raw value for a property. When the property is declared
// more than once the last declaration wins, as in a CSS cascade.
func (s *Style) Get(property string) (string, bool) {
	for i := len(s.Declarations) - 1; i >= 0; i-- {
		if s.Declarations[i].Property == property {
			return s.Declarations[i].Value, true
		}
	}
	return "", false
}

// Angle parses the property value as an angle.
func (s *Style) Angle(property string) (style.Angle, bool) {
	raw, ok := s.Get(property)
	if !ok {
		return 0, false
	}
	return style.ParseAngle(raw)
}

// Color parses the property value as a color.
func (s *Style) Color(property string) (style.Color, bool) {
	raw, ok := s.Get(property)
	if !ok {
		return style.Color{}, false
	}
	return style.ParseColor(raw)
}

// Val parses the property value as a dimension.
func (s *Style) Val(property string) (style.Val, bool) {
	raw, ok := s.Get(property)
	if !ok {
		return style.Val{}, false
	}
	return style.ParseVal(raw)
}

// Rect parses the property value as a rect shorthand.
func (s *Style) Rect(property string) (style.Rect, bool) {
	raw, ok := s.Get(property)
	if !ok {
		return style.Rect{}, false
	}
	return style.ParseRect(raw)
}

// TypedDeclaration is a declaration interpreted against a value kind.
// Exactly one of Angle, Color, Val, or Rect is non-nil, matching Kind.
type TypedDeclaration struct {
	Property string
	Kind     common.ValueKind
	Angle    *style.Angle
	Color    *style.Color
	Val      *style.Val
	Rect     *style.Rect
}

// ValueString returns the canonical string form of the parsed value.
func (d TypedDeclaration) ValueString() string {
	switch {
	case d.Angle != nil:
		return d.Angle.String()
	case d.Color != nil:
		return d.Color.String()
	case d.Val != nil:
		return d.Val.String()
	case d.Rect != nil:
		return d.Rect.String()
	}
	return ""
}

// Typed interprets every declaration against the property to kind map and
// returns the parsed values in source order. Declarations without a mapping
// are skipped; declarations that fail their assigned kind are reported as
// warnings.
func (s *Style) Typed(kinds map[string]common.ValueKind) ([]TypedDeclaration, []string) {
	var typed []TypedDeclaration
	var warnings []string

	for _, d := range s.Declarations {
		kind, ok := kinds[d.Property]
		if !ok {
			continue
		}

		td := TypedDeclaration{Property: d.Property, Kind: kind}
		switch kind {
		case common.ValueKindAngle:
			v, ok := style.ParseAngle(d.Value)
			if !ok {
				warnings = append(warnings, "invalid angle value for "+d.Property+": "+d.Value)
				continue
			}
			td.Angle = &v
		case common.ValueKindColor:
			v, ok := style.ParseColor(d.Value)
			if !ok {
				warnings = append(warnings, "invalid color value for "+d.Property+": "+d.Value)
				continue
			}
			td.Color = &v
		case common.ValueKindVal:
			v, ok := style.ParseVal(d.Value)
			if !ok {
				warnings = append(warnings, "invalid val value for "+d.Property+": "+d.Value)
				continue
			}
			td.Val = &v
		case common.ValueKindRect:
			v, ok := style.ParseRect(d.Value)
			if !ok {
				warnings = append(warnings, "invalid rect value for "+d.Property+": "+d.Value)
				continue
			}
			td.Rect = &v
		default:
			warnings = append(warnings, "unknown value kind for "+d.Property)
			continue
		}
		typed = append(typed, td)
	}
	return typed, warnings
}

// WriteTo writes the declarations to w in source order as inline style text,
// implementing io.WriterTo.
func (s *Style) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, d := range s.Declarations {
		sep := " "
		if i == 0 {
			sep = ""
		}
		n, err := fmt.Fprintf(w, "%s%s: %s;", sep, d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the inline style text of the declarations.
func (s *Style) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
