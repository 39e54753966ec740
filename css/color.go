package css

import "fmt"

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// String returns the color as #rrggbb, or #rrggbbaa when it is not opaque.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorConst is a named color keyword.
type ColorConst int

// Named colors known to the parser.
const (
	Red ColorConst = iota
	Green
	Blue
)

var colorConsts = map[string]ColorConst{
	"red":   Red,
	"green": Green,
	"blue":  Blue,
}

// LookupColorConst returns the named color for name. Matching is exact and
// case sensitive.
func LookupColorConst(name string) (ColorConst, bool) {
	cc, ok := colorConsts[name]
	return cc, ok
}

// Color resolves the named color. Unknown values resolve to opaque black.
func (cc ColorConst) Color() Color {
	switch cc {
	case Red:
		return Color{R: 255, A: 255}
	case Green:
		return Color{G: 255, A: 255}
	case Blue:
		return Color{B: 255, A: 255}
	}
	return Color{A: 255}
}

func (cc ColorConst) String() string {
	switch cc {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("ColorConst(%d)", int(cc))
}
