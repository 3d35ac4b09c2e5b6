package colors

import "strings"

// presetHex maps OOXML preset color names (ST_PresetColorVal) to hex values.
// Keys are lowercased; the format's names are camelCase and lookups must not
// depend on the exporter's casing.
var presetHex = map[string]string{
	"aliceblue":            "F0F8FF",
	"antiquewhite":         "FAEBD7",
	"aqua":                 "00FFFF",
	"aquamarine":           "7FFFD4",
	"azure":                "F0FFFF",
	"beige":                "F5F5DC",
	"bisque":               "FFE4C4",
	"black":                "000000",
	"blanchedalmond":       "FFEBCD",
	"blue":                 "0000FF",
	"blueviolet":           "8A2BE2",
	"brown":                "A52A2A",
	"burlywood":            "DEB887",
	"cadetblue":            "5F9EA0",
	"chartreuse":           "7FFF00",
	"chocolate":            "D2691E",
	"coral":                "FF7F50",
	"cornflowerblue":       "6495ED",
	"cornsilk":             "FFF8DC",
	"crimson":              "DC143C",
	"cyan":                 "00FFFF",
	"deeppink":             "FF1493",
	"deepskyblue":          "00BFFF",
	"dimgray":              "696969",
	"dkblue":               "00008B",
	"dkcyan":               "008B8B",
	"dkgoldenrod":          "B8860B",
	"dkgray":               "A9A9A9",
	"dkgreen":              "006400",
	"dkkhaki":              "BDB76B",
	"dkmagenta":            "8B008B",
	"dkolivegreen":         "556B2F",
	"dkorange":             "FF8C00",
	"dkorchid":             "9932CC",
	"dkred":                "8B0000",
	"dksalmon":             "E9967A",
	"dkseagreen":           "8FBC8F",
	"dkslateblue":          "483D8B",
	"dkslategray":          "2F4F4F",
	"dkturquoise":          "00CED1",
	"dkviolet":             "9400D3",
	"dodgerblue":           "1E90FF",
	"firebrick":            "B22222",
	"floralwhite":          "FFFAF0",
	"forestgreen":          "228B22",
	"fuchsia":              "FF00FF",
	"gainsboro":            "DCDCDC",
	"ghostwhite":           "F8F8FF",
	"gold":                 "FFD700",
	"goldenrod":            "DAA520",
	"gray":                 "808080",
	"green":                "008000",
	"greenyellow":          "ADFF2F",
	"honeydew":             "F0FFF0",
	"hotpink":              "FF69B4",
	"indianred":            "CD5C5C",
	"indigo":               "4B0082",
	"ivory":                "FFFFF0",
	"khaki":                "F0E68C",
	"lavender":             "E6E6FA",
	"lavenderblush":        "FFF0F5",
	"lawngreen":            "7CFC00",
	"lemonchiffon":         "FFFACD",
	"lime":                 "00FF00",
	"limegreen":            "32CD32",
	"linen":                "FAF0E6",
	"ltblue":               "ADD8E6",
	"ltcoral":              "F08080",
	"ltcyan":               "E0FFFF",
	"ltgoldenrodyellow":    "FAFAD2",
	"ltgray":               "D3D3D3",
	"ltgreen":              "90EE90",
	"ltpink":               "FFB6C1",
	"ltsalmon":             "FFA07A",
	"ltseagreen":           "20B2AA",
	"ltskyblue":            "87CEFA",
	"ltslategray":          "778899",
	"ltsteelblue":          "B0C4DE",
	"ltyellow":             "FFFFE0",
	"magenta":              "FF00FF",
	"maroon":               "800000",
	"medaquamarine":        "66CDAA",
	"medblue":              "0000CD",
	"medorchid":            "BA55D3",
	"medpurple":            "9370DB",
	"medseagreen":          "3CB371",
	"medslateblue":         "7B68EE",
	"medspringgreen":       "00FA9A",
	"medturquoise":         "48D1CC",
	"medvioletred":         "C71585",
	"midnightblue":         "191970",
	"mintcream":            "F5FFFA",
	"mistyrose":            "FFE4E1",
	"moccasin":             "FFE4B5",
	"navajowhite":          "FFDEAD",
	"navy":                 "000080",
	"oldlace":              "FDF5E6",
	"olive":                "808000",
	"olivedrab":            "6B8E23",
	"orange":               "FFA500",
	"orangered":            "FF4500",
	"orchid":               "DA70D6",
	"palegoldenrod":        "EEE8AA",
	"palegreen":            "98FB98",
	"paleturquoise":        "AFEEEE",
	"palevioletred":        "DB7093",
	"papayawhip":           "FFEFD5",
	"peachpuff":            "FFDAB9",
	"peru":                 "CD853F",
	"pink":                 "FFC0CB",
	"plum":                 "DDA0DD",
	"powderblue":           "B0E0E6",
	"purple":               "800080",
	"red":                  "FF0000",
	"rosybrown":            "BC8F8F",
	"royalblue":            "4169E1",
	"saddlebrown":          "8B4513",
	"salmon":               "FA8072",
	"sandybrown":           "F4A460",
	"seagreen":             "2E8B57",
	"seashell":             "FFF5EE",
	"sienna":               "A0522D",
	"silver":               "C0C0C0",
	"skyblue":              "87CEEB",
	"slateblue":            "6A5ACD",
	"slategray":            "708090",
	"snow":                 "FFFAFA",
	"springgreen":          "00FF7F",
	"steelblue":            "4682B4",
	"tan":                  "D2B48C",
	"teal":                 "008080",
	"thistle":              "D8BFD8",
	"tomato":               "FF6347",
	"turquoise":            "40E0D0",
	"violet":               "EE82EE",
	"wheat":                "F5DEB3",
	"white":                "FFFFFF",
	"whitesmoke":           "F5F5F5",
	"yellow":               "FFFF00",
	"yellowgreen":          "9ACD32",
}

// PresetHex returns the hex value ("RRGGBB", no #) for an OOXML preset color
// name, and "" when the name is unknown. Lookup is case-insensitive.
func PresetHex(name string) string {
	return presetHex[strings.ToLower(strings.TrimSpace(name))]
}
