package style

import (
	"slices"
	"strings"
)

// The CSS named colors, https://drafts.csswg.org/css-color/#named-colors
var namedColors = map[string]Color{
	"aliceblue":            mustHex("F0F8FF"),
	"antiquewhite":         mustHex("FAEBD7"),
	"aqua":                 mustHex("00FFFF"),
	"aquamarine":           mustHex("7FFFD4"),
	"azure":                mustHex("F0FFFF"),
	"beige":                mustHex("F5F5DC"),
	"bisque":               mustHex("FFE4C4"),
	"black":                mustHex("000000"),
	"blanchedalmond":       mustHex("FFEBCD"),
	"blue":                 mustHex("0000FF"),
	"blueviolet":           mustHex("8A2BE2"),
	"brown":                mustHex("A52A2A"),
	"burlywood":            mustHex("DEB887"),
	"cadetblue":            mustHex("5F9EA0"),
	"chartreuse":           mustHex("7FFF00"),
	"chocolate":            mustHex("D2691E"),
	"coral":                mustHex("FF7F50"),
	"cornflowerblue":       mustHex("6495ED"),
	"cornsilk":             mustHex("FFF8DC"),
	"crimson":              mustHex("DC143C"),
	"cyan":                 mustHex("00FFFF"),
	"darkblue":             mustHex("00008B"),
	"darkcyan":             mustHex("008B8B"),
	"darkgoldenrod":        mustHex("B8860B"),
	"darkgray":             mustHex("A9A9A9"),
	"darkgreen":            mustHex("006400"),
	"darkgrey":             mustHex("A9A9A9"),
	"darkkhaki":            mustHex("BDB76B"),
	"darkmagenta":          mustHex("8B008B"),
	"darkolivegreen":       mustHex("556B2F"),
	"darkorange":           mustHex("FF8C00"),
	"darkorchid":           mustHex("9932CC"),
	"darkred":              mustHex("8B0000"),
	"darksalmon":           mustHex("E9967A"),
	"darkseagreen":         mustHex("8FBC8F"),
	"darkslateblue":        mustHex("483D8B"),
	"darkslategray":        mustHex("2F4F4F"),
	"darkslategrey":        mustHex("2F4F4F"),
	"darkturquoise":        mustHex("00CED1"),
	"darkviolet":           mustHex("9400D3"),
	"deeppink":             mustHex("FF1493"),
	"deepskyblue":          mustHex("00BFFF"),
	"dimgray":              mustHex("696969"),
	"dimgrey":              mustHex("696969"),
	"dodgerblue":           mustHex("1E90FF"),
	"firebrick":            mustHex("B22222"),
	"floralwhite":          mustHex("FFFAF0"),
	"forestgreen":          mustHex("228B22"),
	"fuchsia":              mustHex("FF00FF"),
	"gainsboro":            mustHex("DCDCDC"),
	"ghostwhite":           mustHex("F8F8FF"),
	"gold":                 mustHex("FFD700"),
	"goldenrod":            mustHex("DAA520"),
	"gray":                 mustHex("808080"),
	"green":                mustHex("008000"),
	"greenyellow":          mustHex("ADFF2F"),
	"grey":                 mustHex("808080"),
	"honeydew":             mustHex("F0FFF0"),
	"hotpink":              mustHex("FF69B4"),
	"indianred":            mustHex("CD5C5C"),
	"indigo":               mustHex("4B0082"),
	"ivory":                mustHex("FFFFF0"),
	"khaki":                mustHex("F0E68C"),
	"lavender":             mustHex("E6E6FA"),
	"lavenderblush":        mustHex("FFF0F5"),
	"lawngreen":            mustHex("7CFC00"),
	"lemonchiffon":         mustHex("FFFACD"),
	"lightblue":            mustHex("ADD8E6"),
	"lightcoral":           mustHex("F08080"),
	"lightcyan":            mustHex("E0FFFF"),
	"lightgoldenrodyellow": mustHex("FAFAD2"),
	"lightgray":            mustHex("D3D3D3"),
	"lightgreen":           mustHex("90EE90"),
	"lightgrey":            mustHex("D3D3D3"),
	"lightpink":            mustHex("FFB6C1"),
	"lightsalmon":          mustHex("FFA07A"),
	"lightseagreen":        mustHex("20B2AA"),
	"lightskyblue":         mustHex("87CEFA"),
	"lightslategray":       mustHex("778899"),
	"lightslategrey":       mustHex("778899"),
	"lightsteelblue":       mustHex("B0C4DE"),
	"lightyellow":          mustHex("FFFFE0"),
	"lime":                 mustHex("00FF00"),
	"limegreen":            mustHex("32CD32"),
	"linen":                mustHex("FAF0E6"),
	"magenta":              mustHex("FF00FF"),
	"maroon":               mustHex("800000"),
	"mediumaquamarine":     mustHex("66CDAA"),
	"mediumblue":           mustHex("0000CD"),
	"mediumorchid":         mustHex("BA55D3"),
	"mediumpurple":         mustHex("9370DB"),
	"mediumseagreen":       mustHex("3CB371"),
	"mediumslateblue":      mustHex("7B68EE"),
	"mediumspringgreen":    mustHex("00FA9A"),
	"mediumturquoise":      mustHex("48D1CC"),
	"mediumvioletred":      mustHex("C71585"),
	"midnightblue":         mustHex("191970"),
	"mintcream":            mustHex("F5FFFA"),
	"mistyrose":            mustHex("FFE4E1"),
	"moccasin":             mustHex("FFE4B5"),
	"navajowhite":          mustHex("FFDEAD"),
	"navy":                 mustHex("000080"),
	"oldlace":              mustHex("FDF5E6"),
	"olive":                mustHex("808000"),
	"olivedrab":            mustHex("6B8E23"),
	"orange":               mustHex("FFA500"),
	"orangered":            mustHex("FF4500"),
	"orchid":               mustHex("DA70D6"),
	"palegoldenrod":        mustHex("EEE8AA"),
	"palegreen":            mustHex("98FB98"),
	"paleturquoise":        mustHex("AFEEEE"),
	"palevioletred":        mustHex("DB7093"),
	"papayawhip":           mustHex("FFEFD5"),
	"peachpuff":            mustHex("FFDAB9"),
	"peru":                 mustHex("CD853F"),
	"pink":                 mustHex("FFC0CB"),
	"plum":                 mustHex("DDA0DD"),
	"powderblue":           mustHex("B0E0E6"),
	"purple":               mustHex("800080"),
	"rebeccapurple":        mustHex("663399"),
	"red":                  mustHex("FF0000"),
	"rosybrown":            mustHex("BC8F8F"),
	"royalblue":            mustHex("4169E1"),
	"saddlebrown":          mustHex("8B4513"),
	"salmon":               mustHex("FA8072"),
	"sandybrown":           mustHex("F4A460"),
	"seagreen":             mustHex("2E8B57"),
	"seashell":             mustHex("FFF5EE"),
	"sienna":               mustHex("A0522D"),
	"silver":               mustHex("C0C0C0"),
	"skyblue":              mustHex("87CEEB"),
	"slateblue":            mustHex("6A5ACD"),
	"slategray":            mustHex("708090"),
	"slategrey":            mustHex("708090"),
	"snow":                 mustHex("FFFAFA"),
	"springgreen":          mustHex("00FF7F"),
	"steelblue":            mustHex("4682B4"),
	"tan":                  mustHex("D2B48C"),
	"teal":                 mustHex("008080"),
	"thistle":              mustHex("D8BFD8"),
	"tomato":               mustHex("FF6347"),
	"turquoise":            mustHex("40E0D0"),
	"violet":               mustHex("EE82EE"),
	"wheat":                mustHex("F5DEB3"),
	"white":                mustHex("FFFFFF"),
	"whitesmoke":           mustHex("F5F5F5"),
	"yellow":               mustHex("FFFF00"),
	"yellowgreen":          mustHex("9ACD32"),
}

// mustHex guards the built-in table: a malformed entry is a programming
// error and fails at package initialization, never per parse.
func mustHex(s string) Color {
	c, ok := Hex(s)
	if !ok {
		panic("invalid named color entry: " + s)
	}
	return c
}

// lookupNamedColor resolves the whole remaining input as a CSS color name.
// The lookup is case-insensitive; table keys are lowercase.
func lookupNamedColor(s string) (Color, bool) {
	c, ok := namedColors[strings.ToLower(strings.TrimRight(s, spaceCutset))]
	return c, ok
}

// NamedColors returns the names of the built-in color table in sorted order.
func NamedColors() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
