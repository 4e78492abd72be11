package pixel

// NamedColor pairs a CLI color name with its value.
type NamedColor struct {
	Name  string
	Value Pixel
}

// Palette is the fixed set of named colors. Order is significant: the
// cycle pattern walks it front to back.
var Palette = []NamedColor{
	{"red", Pixel{R: 255}},
	{"green", Pixel{G: 255}},
	{"blue", Pixel{B: 255}},
	{"white", Pixel{R: 255, G: 255, B: 255}},
	{"yellow", Pixel{R: 255, G: 255}},
	{"cyan", Pixel{G: 255, B: 255}},
	{"magenta", Pixel{R: 255, B: 255}},
	{"orange", Pixel{R: 255, G: 165}},
}

// Pattern default colors.
var (
	ChaseColor    = Pixel{G: 255}
	GradientStart = Pixel{R: 255}
	GradientEnd   = Pixel{B: 255}
)

// Lookup resolves a palette color by name.
func Lookup(name string) (Pixel, bool) {
	for _, c := range Palette {
		if c.Name == name {
			return c.Value, true
		}
	}
	return Pixel{}, false
}

// Names lists the palette color names in declaration order.
func Names() []string {
	names := make([]string, 0, len(Palette))
	for _, c := range Palette {
		names = append(names, c.Name)
	}
	return names
}
