package anim

import (
	"fmt"

	"github.com/olivier-w/glowgrid/internal/glow"
)

// FollowerConfig holds the tunables of a Follower.
type FollowerConfig struct {
	Lerp      float64
	Radius    float64
	Intensity float64
	Color     glow.Color
}

// Follower eases one glow source toward the pointer. The target jumps to
// every observed pointer position; the current position closes Lerp of the
// remaining distance each tick and never quite arrives.
type Follower struct {
	reg *glow.Registry
	id  string
	cfg FollowerConfig

	targetX, targetY   float64
	currentX, currentY float64
	hidden             bool
	mounted            bool
}

// NewFollower creates a follower owning id. Lerp must be in (0, 1).
func NewFollower(reg *glow.Registry, id string, cfg FollowerConfig) (*Follower, error) {
	if reg == nil {
		return nil, glow.ErrNoRegistry
	}
	if cfg.Lerp <= 0 || cfg.Lerp >= 1 {
		return nil, fmt.Errorf("follower %s: lerp factor %v outside (0, 1)", id, cfg.Lerp)
	}
	return &Follower{reg: reg, id: id, cfg: cfg}, nil
}

// ID returns the owned source id.
func (f *Follower) ID() string { return f.id }

// Mount registers the source at the current position.
func (f *Follower) Mount() {
	if f.mounted {
		return
	}
	f.mounted = true
	f.reg.Register(f.id, glow.Source{
		X:         f.currentX,
		Y:         f.currentY,
		Color:     f.cfg.Color,
		Radius:    f.cfg.Radius,
		Intensity: f.intensity(),
	})
}

// Unmount removes the source.
func (f *Follower) Unmount() {
	if !f.mounted {
		return
	}
	f.mounted = false
	f.reg.Unregister(f.id)
}

// SetTarget records the latest pointer position in grid-local coordinates
// and shows the glow if it was hidden. It does no other work.
func (f *Follower) SetTarget(x, y float64) {
	f.targetX, f.targetY = x, y
	f.hidden = false
}

// Jump moves both target and current position without easing.
func (f *Follower) Jump(x, y float64) {
	f.targetX, f.targetY = x, y
	f.currentX, f.currentY = x, y
}

// Hide dims the glow until the next SetTarget.
func (f *Follower) Hide() {
	f.hidden = true
}

// Hidden reports whether the glow is dimmed.
func (f *Follower) Hidden() bool { return f.hidden }

// SetColor recolors the source.
func (f *Follower) SetColor(c glow.Color) {
	f.cfg.Color = c
	if f.mounted {
		f.reg.Update(f.id, glow.Patch{}.WithColor(c))
	}
}

// Current returns the smoothed position.
func (f *Follower) Current() (x, y float64) {
	return f.currentX, f.currentY
}

// Target returns the last observed pointer position.
func (f *Follower) Target() (x, y float64) {
	return f.targetX, f.targetY
}

// Step moves the current position one tick toward the target and writes
// position and intensity.
func (f *Follower) Step() {
	f.currentX = Lerp(f.currentX, f.targetX, f.cfg.Lerp)
	f.currentY = Lerp(f.currentY, f.targetY, f.cfg.Lerp)
	if !f.mounted {
		return
	}
	f.reg.Update(f.id, glow.Patch{}.WithPos(f.currentX, f.currentY).WithIntensity(f.intensity()))
}

func (f *Follower) intensity() float64 {
	if f.hidden {
		return 0
	}
	return f.cfg.Intensity
}
