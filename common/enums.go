// The only reason this package exists is because configuration, the
// declaration parser and the command line surface all share the value kind
// vocabulary, and none of them should have to import the others for it.
package common

import "fmt"

// ValueKind identifies which value grammar a property or input is parsed with.
type ValueKind int

const (
	ValueKindAngle ValueKind = iota
	ValueKindColor
	ValueKindVal
	ValueKindRect
)

// ValueKindNames returns the names of all valid kinds.
func ValueKindNames() []string {
	return []string{"angle", "color", "val", "rect"}
}

// String returns the configuration name of the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueKindAngle:
		return "angle"
	case ValueKindColor:
		return "color"
	case ValueKindVal:
		return "val"
	case ValueKindRect:
		return "rect"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// IsValid reports whether the kind is one of the defined kinds.
func (k ValueKind) IsValid() bool {
	return k >= ValueKindAngle && k <= ValueKindRect
}

// ParseValueKind converts a kind name to a ValueKind.
func ParseValueKind(name string) (ValueKind, error) {
	switch name {
	case "angle":
		return ValueKindAngle, nil
	case "color":
		return ValueKindColor, nil
	case "val":
		return ValueKindVal, nil
	case "rect":
		return ValueKindRect, nil
	}
	return 0, fmt.Errorf("%q is not a valid value kind, expected one of %q", name, ValueKindNames())
}

// MarshalText implements encoding.TextMarshaler.
func (k ValueKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid value kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ValueKind) UnmarshalText(text []byte) error {
	parsed, err := ParseValueKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
