package style_test

import (
	"math"
	"testing"

	"cssval/style"
)

func TestParseAngle(t *testing.T) {
	literals := []struct {
		in   string
		want float32
	}{
		{"180", 180},
		{".1", 0.1},
		{"1.", 1},
		{"1.1", 1.1},
		{"42.42", 42.42},
		{"0", 0},
		{"0.0", 0},
		{".0", 0},
		{"0.", 0},
		{"-90", -90},
	}
	for _, tt := range literals {
		t.Run(tt.in, func(t *testing.T) {
			bare, ok := style.ParseAngle(tt.in)
			if !ok {
				t.Fatalf("ParseAngle(%q) failed", tt.in)
			}
			if bare != style.Radians(tt.want) {
				t.Errorf("ParseAngle(%q) = %v, want %v radians", tt.in, bare, tt.want)
			}

			// rad suffix is a no-op, the bare literal already is radians
			rad, ok := style.ParseAngle(tt.in + "rad")
			if !ok {
				t.Fatalf("ParseAngle(%q) failed", tt.in+"rad")
			}
			if rad != bare {
				t.Errorf("ParseAngle(%q) = %v, want %v", tt.in+"rad", rad, bare)
			}

			deg, ok := style.ParseAngle(tt.in + "deg")
			if !ok {
				t.Fatalf("ParseAngle(%q) failed", tt.in+"deg")
			}
			if deg != style.Degrees(tt.want) {
				t.Errorf("ParseAngle(%q) = %v, want %v", tt.in+"deg", deg, style.Degrees(tt.want))
			}
		})
	}
}

func TestParseAngle_DegreesToRadians(t *testing.T) {
	tests := []struct {
		in   string
		want float64 // radians
	}{
		{"180deg", math.Pi},
		{"90deg", math.Pi / 2},
		{"-180deg", -math.Pi},
		{"360deg", 2 * math.Pi},
		{"0deg", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := style.ParseAngle(tt.in)
			if !ok {
				t.Fatalf("ParseAngle(%q) failed", tt.in)
			}
			if diff := math.Abs(float64(got.Radians()) - tt.want); diff > 1e-6 {
				t.Errorf("ParseAngle(%q) = %v radians, want %v (diff %v)", tt.in, got.Radians(), tt.want, diff)
			}
		})
	}
}

func TestParseAngle_Whitespace(t *testing.T) {
	want, ok := style.ParseAngle("42.42deg")
	if !ok {
		t.Fatal("ParseAngle(\"42.42deg\") failed")
	}
	for _, in := range []string{"  42.42deg", "42.42deg  ", " 42.42deg ", "\t42.42deg\n"} {
		t.Run(in, func(t *testing.T) {
			got, ok := style.ParseAngle(in)
			if !ok {
				t.Fatalf("ParseAngle(%q) failed", in)
			}
			if got != want {
				t.Errorf("ParseAngle(%q) = %v, want %v", in, got, want)
			}
		})
	}
}

func TestParseAngle_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"deg",
		"rad",
		"one",
		".",
		"-",
		"12degx",
		"12 deg", // no whitespace allowed between literal and suffix
		"12,5",
		"1.5rad extra",
		"12grad",
		"0.5turn",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			if got, ok := style.ParseAngle(in); ok {
				t.Errorf("ParseAngle(%q) = %v, want failure", in, got)
			}
		})
	}
}

func TestAngle_Degrees(t *testing.T) {
	a := style.Degrees(90)
	if diff := math.Abs(float64(a.Degrees()) - 90); diff > 1e-4 {
		t.Errorf("Degrees(90).Degrees() = %v, want 90", a.Degrees())
	}
	if diff := math.Abs(float64(a.Radians()) - math.Pi/2); diff > 1e-6 {
		t.Errorf("Degrees(90).Radians() = %v, want %v", a.Radians(), math.Pi/2)
	}
}

func TestAngle_StringRoundTrip(t *testing.T) {
	for _, in := range []string{"180deg", "1.5rad", "-90deg", ".25", "42.42"} {
		t.Run(in, func(t *testing.T) {
			v, ok := style.ParseAngle(in)
			if !ok {
				t.Fatalf("ParseAngle(%q) failed", in)
			}
			back, ok := style.ParseAngle(v.String())
			if !ok {
				t.Fatalf("ParseAngle(%q) failed on own output %q", in, v.String())
			}
			if back != v {
				t.Errorf("round trip of %q through %q = %v, want %v", in, v.String(), back, v)
			}
		})
	}
}
