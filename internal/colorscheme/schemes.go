package colorscheme

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette hex values are reproduced verbatim from Paul Tol's colour schemes:
// https://personal.sron.nl/~pault/data/colourschemes.pdf
// Suffix letters follow the size-prefix order of human.c (K through Y), so a
// discrete palette's first bin corresponds to kibibyte-scale sizes.
//
//nolint:gochecknoglobals // Static palette data
var (
	// None is the sentinel scheme that emits no escape codes at all.
	None = Scheme{Name: "NONE", Kind: KindNone}

	// DiscreteRainbow is a qualitative rainbow, one bin per size prefix.
	DiscreteRainbow = discrete("DISCRETE_RAINBOW",
		"#882E72",
		"#1965B0",
		"#7BAFDE",
		"#4EB265",
		"#CAE0AB",
		"#F7F056",
		"#EE8026",
		"#DC050C",
	)

	// SmoothRainbow is the full smooth rainbow, interpolated continuously.
	SmoothRainbow = continuous("SMOOTH_RAINBOW",
		"#E8ECFB", "#DDD8EF", "#D1C1E1", "#C3A8D1", "#B58FC2",
		"#A778B4", "#9B62A7", "#8C4E99", "#6F4C9B", "#6059A9",
		"#5568B8", "#4E79C5", "#4D8AC6", "#4E96BC", "#549EB3",
		"#59A5A9", "#60AB9E", "#69B190", "#77B77D", "#8CBC68",
		"#A6BE54", "#BEBC48", "#D1B541", "#DDAA3C", "#E49C39",
		"#E78C35", "#E67932", "#E4632D", "#DF4828", "#DA2222",
		"#B8221E", "#95211B", "#721E17", "#521A13",
	)

	// Sunset is the full sunset diverging palette, blue through red.
	// Default scheme.
	Sunset = continuous("SUNSET",
		"#364B9A",
		"#4A7BB7",
		"#6EA6CD",
		"#98CAE1",
		"#C2E4EF",
		"#EAECCC",
		"#FEDA8B",
		"#FDB366",
		"#F67E4B",
		"#DD3D2D",
		"#A50026",
	)

	// YlOrBr is the yellow-orange-brown sequential palette.
	YlOrBr = discrete("YLORBR",
		"#FFF7BC",
		"#FEE391",
		"#FEC44F",
		"#FB9A29",
		"#EC7014",
		"#CC4C02",
		"#993404",
		"#662506",
	)

	// PartialSunset is the warm tail of Sunset; everything terabyte-scale
	// and beyond saturates at the final red.
	PartialSunset = discrete("PARTIAL_SUNSET",
		"#FEDA8B",
		"#FDB366",
		"#F67E4B",
		"#DD3D2D",
		"#A50026",
		"#A50026",
		"#A50026",
		"#A50026",
	)

	// Fallback is the neutral gray used when a palette cannot answer.
	Fallback = mustHex("#666666")
)

// discrete builds a binned scheme from a list of hex colors.
func discrete(name string, hexes ...string) Scheme {
	return build(name, KindDiscrete, hexes)
}

// continuous builds an interpolating scheme from a list of hex colors,
// with stops spaced evenly from 0.0 to 1.0.
func continuous(name string, hexes ...string) Scheme {
	return build(name, KindContinuous, hexes)
}

func build(name string, kind Kind, hexes []string) Scheme {
	stops := make([]ColorStop, len(hexes))

	last := len(hexes) - 1
	for i, h := range hexes {
		stops[i] = ColorStop{
			Pos:   float64(i) / float64(last),
			Color: mustHex(h),
		}
	}

	return Scheme{Name: name, Kind: kind, Stops: stops}
}

// mustHex parses a #RRGGBB literal. Panics on malformed palette data,
// which can only happen from a bad edit to the tables above.
func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic("colorscheme: bad palette entry " + h + ": " + err.Error())
	}

	return c
}
