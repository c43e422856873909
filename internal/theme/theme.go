// Package theme holds the color palettes of the hero grid.
package theme

import (
	"fmt"
	"sort"

	"github.com/olivier-w/glowgrid/internal/glow"
)

// Palette is one color scheme. All values are #rrggbb strings.
type Palette struct {
	Name            string
	Background      string
	GridCell        string
	GridBorder      string
	GlowPrimary     string
	GlowWaves       [3]string
	GlowCursor      string
	GlowFlash       string
	ButtonBorder    string
	ButtonText      string
	ButtonHoverText string
}

// Default is the palette used when none is configured.
const Default = "purple"

var palettes = map[string]Palette{
	"purple": {
		Background:      "#02040a",
		GridCell:        "#050812",
		GridBorder:      "#131a33",
		GlowPrimary:     "#6A6FFF",
		GlowWaves:       [3]string{"#6AFFFF", "#8B5CF6", "#6A6FFF"},
		GlowCursor:      "#6A6FFF",
		GlowFlash:       "#FFFFFF",
		ButtonBorder:    "#8B5CF6",
		ButtonText:      "#FFFFFF",
		ButtonHoverText: "#D8B4FE",
	},
	"emerald": {
		Background:      "#010805",
		GridCell:        "#020f0a",
		GridBorder:      "#0b2a1e",
		GlowPrimary:     "#10B981",
		GlowWaves:       [3]string{"#34D399", "#059669", "#10B981"},
		GlowCursor:      "#10B981",
		GlowFlash:       "#ECFDF5",
		ButtonBorder:    "#10B981",
		ButtonText:      "#FFFFFF",
		ButtonHoverText: "#6EE7B7",
	},
	"industrial": {
		Background:      "#0a0a0b",
		GridCell:        "#121214",
		GridBorder:      "#2a2a2e",
		GlowPrimary:     "#F97316",
		GlowWaves:       [3]string{"#FB923C", "#EA580C", "#F97316"},
		GlowCursor:      "#F97316",
		GlowFlash:       "#FFF7ED",
		ButtonBorder:    "#F97316",
		ButtonText:      "#FFFFFF",
		ButtonHoverText: "#FED7AA",
	},
	"oceanic": {
		Background:      "#020617",
		GridCell:        "#0f172a",
		GridBorder:      "#1e293b",
		GlowPrimary:     "#0EA5E9",
		GlowWaves:       [3]string{"#38BDF8", "#0284C7", "#0EA5E9"},
		GlowCursor:      "#0EA5E9",
		GlowFlash:       "#F0F9FF",
		ButtonBorder:    "#0EA5E9",
		ButtonText:      "#FFFFFF",
		ButtonHoverText: "#BAE6FD",
	},
	"outback": {
		Background:      "#0c0a09",
		GridCell:        "#1c1917",
		GridBorder:      "#292524",
		GlowPrimary:     "#D4D4D8",
		GlowWaves:       [3]string{"#A8A29E", "#78716C", "#D4D4D8"},
		GlowCursor:      "#F59E0B",
		GlowFlash:       "#FFD700",
		ButtonBorder:    "#F59E0B",
		ButtonText:      "#FFFFFF",
		ButtonHoverText: "#FCD34D",
	},
	"crimson": {
		Background:      "#0a0000",
		GridCell:        "#140505",
		GridBorder:      "#2d0a0a",
		GlowPrimary:     "#EF4444",
		GlowWaves:       [3]string{"#F87171", "#B91C1C", "#EF4444"},
		GlowCursor:      "#EF4444",
		GlowFlash:       "#FEF2F2",
		ButtonBorder:    "#EF4444",
		ButtonText:      "#FFFFFF",
		ButtonHoverText: "#FECACA",
	},
}

// Lookup returns the named palette.
func Lookup(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown theme %q (available: %v)", name, Names())
	}
	p.Name = name
	return p, nil
}

// Names returns all palette names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the palette after name, wrapping around. Unknown names
// start from the first palette.
func Next(name string) Palette {
	names := Names()
	next := names[0]
	for i, n := range names {
		if n == name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	p, _ := Lookup(next)
	return p
}

// Waves returns the wave colors.
func (p Palette) Waves() []glow.Color {
	out := make([]glow.Color, len(p.GlowWaves))
	for i, c := range p.GlowWaves {
		out[i] = glow.Hex(c)
	}
	return out
}
