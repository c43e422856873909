package anim

import (
	"fmt"
	"time"

	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/grid"
)

// Phase is the call-to-action glow state.
type Phase uint8

const (
	PhaseBreathing Phase = iota
	PhaseExploding
)

func (p Phase) String() string {
	switch p {
	case PhaseBreathing:
		return "breathing"
	case PhaseExploding:
		return "exploding"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// CTAColors colors the sources owned by a CTA.
type CTAColors struct {
	Primary glow.Color
	Flash   glow.Color
	Waves   []glow.Color
}

// CTAConfig holds the tunables of a CTA.
type CTAConfig struct {
	Breathing Breathing
	Burst     Burst
	Colors    CTAColors
}

// DefaultCTAConfig uses the purple palette.
func DefaultCTAConfig() CTAConfig {
	return CTAConfig{
		Breathing: DefaultBreathing(),
		Burst:     DefaultBurst(),
		Colors: CTAColors{
			Primary: glow.Hex("#6A6FFF"),
			Flash:   glow.Hex("#FFFFFF"),
			Waves:   []glow.Color{glow.Hex("#6AFFFF"), glow.Hex("#8B5CF6"), glow.Hex("#6A6FFF")},
		},
	}
}

// CTA drives the call-to-action glow: it breathes until triggered, then
// explodes for Burst.Duration seconds and breathes again. It owns one
// primary source, one source per wave and a flash source.
type CTA struct {
	reg    *glow.Registry
	cfg    CTAConfig
	ids    ctaIDs
	clock  Clock
	phase  Phase
	bounds grid.Bounds

	anchorX, anchorY float64
	anchored         bool
	mounted          bool
}

type ctaIDs struct {
	primary string
	flash   string
	waves   []string
}

// NewCTA creates a CTA whose source ids start with prefix.
func NewCTA(reg *glow.Registry, prefix string, cfg CTAConfig) (*CTA, error) {
	if reg == nil {
		return nil, glow.ErrNoRegistry
	}
	ids := ctaIDs{
		primary: prefix + "/primary",
		flash:   prefix + "/flash",
		waves:   make([]string, len(cfg.Burst.Waves)),
	}
	for i := range ids.waves {
		ids.waves[i] = fmt.Sprintf("%s/wave%d", prefix, i+1)
	}
	return &CTA{reg: reg, cfg: cfg, ids: ids}, nil
}

// Mount registers the owned sources.
func (c *CTA) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.reg.Register(c.ids.primary, glow.Source{
		X:         c.anchorX,
		Y:         c.anchorY,
		Color:     c.cfg.Colors.Primary,
		Radius:    c.cfg.Breathing.MinRadius,
		Intensity: 1,
	})
	for i, id := range c.ids.waves {
		c.reg.Register(id, glow.Source{X: c.anchorX, Y: c.anchorY, Color: c.waveColor(i)})
	}
	c.reg.Register(c.ids.flash, glow.Source{
		X:          c.anchorX,
		Y:          c.anchorY,
		Color:      c.cfg.Colors.Flash,
		FullScreen: true,
	})
}

// Unmount removes the owned sources. Later ticks write nothing.
func (c *CTA) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	for _, id := range c.IDs() {
		c.reg.Unregister(id)
	}
}

// IDs returns every source id the CTA owns.
func (c *CTA) IDs() []string {
	out := make([]string, 0, len(c.ids.waves)+2)
	out = append(out, c.ids.primary)
	out = append(out, c.ids.waves...)
	return append(out, c.ids.flash)
}

// PrimaryID returns the id of the breathing source.
func (c *CTA) PrimaryID() string { return c.ids.primary }

// WaveIDs returns the ids of the wave sources in burst order.
func (c *CTA) WaveIDs() []string {
	out := make([]string, len(c.ids.waves))
	copy(out, c.ids.waves)
	return out
}

// FlashID returns the id of the flash source.
func (c *CTA) FlashID() string { return c.ids.flash }

// SetAnchor sets the button center in grid-local coordinates.
func (c *CTA) SetAnchor(x, y float64) {
	c.anchorX, c.anchorY = x, y
	c.anchored = true
}

// ClearAnchor marks the button as unmeasured; ticks skip their writes.
func (c *CTA) ClearAnchor() {
	c.anchored = false
}

// SetBounds sets the grid bounds used to size explosion waves.
func (c *CTA) SetBounds(b grid.Bounds) {
	c.bounds = b
}

// SetColors recolors the owned sources.
func (c *CTA) SetColors(colors CTAColors) {
	c.cfg.Colors = colors
	if !c.mounted {
		return
	}
	c.reg.Update(c.ids.primary, glow.Patch{}.WithColor(colors.Primary))
	c.reg.Update(c.ids.flash, glow.Patch{}.WithColor(colors.Flash))
	for i, id := range c.ids.waves {
		c.reg.Update(id, glow.Patch{}.WithColor(c.waveColor(i)))
	}
}

// Trigger starts an explosion and resets the clock. Triggering while
// exploding restarts the burst.
func (c *CTA) Trigger() {
	c.phase = PhaseExploding
	c.clock.Reset()
}

// Phase returns the current state.
func (c *CTA) Phase() Phase { return c.phase }

// Elapsed returns seconds since the last phase change.
func (c *CTA) Elapsed() float64 { return c.clock.Elapsed }

// Tick advances the clock to now and writes the sources.
func (c *CTA) Tick(now time.Time) {
	c.clock.Advance(now)
	c.apply()
}

// Step advances the clock by dt seconds and writes the sources.
func (c *CTA) Step(dt float64) {
	c.clock.Step(dt)
	c.apply()
}

// apply writes the sources for the current clock. Phase bookkeeping runs
// on every tick; registry writes are skipped while unmounted or unanchored.
func (c *CTA) apply() {
	write := c.mounted && c.anchored
	x, y := c.anchorX, c.anchorY
	t := c.clock.Elapsed

	if c.phase == PhaseBreathing {
		if write {
			r, i := c.cfg.Breathing.At(t)
			c.reg.Update(c.ids.primary, glow.Patch{}.WithPos(x, y).WithRadius(r).WithIntensity(i))
		}
		return
	}

	if write {
		maxTravel := c.bounds.Diagonal()
		for i, w := range c.cfg.Burst.Waves {
			r, in, active := w.At(t, maxTravel)
			if !active {
				c.reg.Update(c.ids.waves[i], glow.Patch{}.WithIntensity(0))
				continue
			}
			c.reg.Update(c.ids.waves[i], glow.Patch{}.WithPos(x, y).WithRadius(r).WithIntensity(in))
		}
		if in, active := c.cfg.Burst.Flash.At(t); active {
			c.reg.Update(c.ids.flash, glow.Patch{}.WithPos(x, y).WithRadius(maxTravel).WithIntensity(in))
		} else {
			c.reg.Update(c.ids.flash, glow.Patch{}.WithIntensity(0))
		}
	}

	if t > c.cfg.Burst.Duration {
		c.phase = PhaseBreathing
		c.clock.Reset()
		if c.mounted {
			for _, id := range c.ids.waves {
				c.reg.Update(id, glow.Patch{}.WithIntensity(0))
			}
			c.reg.Update(c.ids.flash, glow.Patch{}.WithIntensity(0))
		}
	}
}

func (c *CTA) waveColor(i int) glow.Color {
	if len(c.cfg.Colors.Waves) == 0 {
		return c.cfg.Colors.Primary
	}
	return c.cfg.Colors.Waves[i%len(c.cfg.Colors.Waves)]
}
