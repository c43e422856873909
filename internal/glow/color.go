package glow

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// DefaultRGB is used whenever a hex string cannot be parsed.
var DefaultRGB = RGB{R: 106, G: 111, B: 255}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend mixes c toward o by t in [0, 1].
func (c RGB) Blend(o RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	return fromColorful(c.colorful().BlendRgb(o.colorful(), t))
}

// ParseHex parses #rrggbb or #rgb (the leading # is optional). Anything
// else yields DefaultRGB.
func ParseHex(s string) RGB {
	c, ok := parseHex(s)
	if !ok {
		return DefaultRGB
	}
	return c
}

func parseHex(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, false
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return RGB{}, false
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, false
	}
	return fromColorful(c), true
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// ColorKind tags the Color variant.
type ColorKind uint8

const (
	Solid ColorKind = iota
	Gradient
)

func (k ColorKind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Gradient:
		return "gradient"
	}
	return "unknown"
}

// Color is either a single RGB value or an ordered list of gradient stops,
// innermost first.
type Color struct {
	kind  ColorKind
	stops []RGB
}

// SolidColor returns a single-stop color.
func SolidColor(c RGB) Color {
	return Color{kind: Solid, stops: []RGB{c}}
}

// GradientColor returns a multi-stop color. Fewer than two stops collapse
// to a solid color.
func GradientColor(stops ...RGB) Color {
	switch len(stops) {
	case 0:
		return SolidColor(DefaultRGB)
	case 1:
		return SolidColor(stops[0])
	}
	cp := make([]RGB, len(stops))
	copy(cp, stops)
	return Color{kind: Gradient, stops: cp}
}

// Hex is shorthand for SolidColor(ParseHex(s)).
func Hex(s string) Color {
	return SolidColor(ParseHex(s))
}

// HexGradient parses every stop with the ParseHex fallback.
func HexGradient(stops ...string) Color {
	rgb := make([]RGB, len(stops))
	for i, s := range stops {
		rgb[i] = ParseHex(s)
	}
	return GradientColor(rgb...)
}

// Kind reports the variant. The zero Color is a solid DefaultRGB.
func (c Color) Kind() ColorKind { return c.kind }

// Stops returns a copy of the color stops.
func (c Color) Stops() []RGB {
	if len(c.stops) == 0 {
		return []RGB{DefaultRGB}
	}
	cp := make([]RGB, len(c.stops))
	copy(cp, c.stops)
	return cp
}

// Primary returns the innermost stop.
func (c Color) Primary() RGB {
	if len(c.stops) == 0 {
		return DefaultRGB
	}
	return c.stops[0]
}

// At samples the color at t in [0, 1], where 0 is the glow center and 1 its
// edge. Stops are spaced evenly.
func (c Color) At(t float64) RGB {
	if c.kind != Gradient || len(c.stops) < 2 {
		return c.Primary()
	}
	if t <= 0 {
		return c.stops[0]
	}
	last := len(c.stops) - 1
	if t >= 1 {
		return c.stops[last]
	}
	pos := t * float64(last)
	i := int(math.Floor(pos))
	return c.stops[i].Blend(c.stops[i+1], pos-float64(i))
}

// Equal reports whether both colors have the same kind and stops.
func (c Color) Equal(o Color) bool {
	a, b := c.Stops(), o.Stops()
	if c.kind != o.kind || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
