// Package config loads the hero grid settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivier-w/glowgrid/internal/anim"
	"github.com/olivier-w/glowgrid/internal/grid"
	"github.com/olivier-w/glowgrid/internal/theme"
)

// Config is the complete set of tunables.
type Config struct {
	Theme           string             `yaml:"theme"`
	Label           string             `yaml:"label"`
	FPS             int                `yaml:"fps"`
	PixelsPerColumn float64            `yaml:"pixelsPerColumn"`
	PixelsPerRow    float64            `yaml:"pixelsPerRow"`
	Overscan        int                `yaml:"overscan"`
	Afterglow       bool               `yaml:"afterglow"`
	Cursor          bool               `yaml:"cursor"`
	Breakpoints     []BreakpointConfig `yaml:"breakpoints"`
	Breathing       BreathingConfig    `yaml:"breathing"`
	Explosion       ExplosionConfig    `yaml:"explosion"`
	Follower        FollowerConfig     `yaml:"follower"`
	Sound           SoundConfig        `yaml:"sound"`
}

// BreakpointConfig is one breakpoint row. A MaxWidth of 0 or .inf is
// unbounded.
type BreakpointConfig struct {
	MaxWidth float64 `yaml:"maxWidth"`
	Cols     int     `yaml:"cols"`
}

// BreathingConfig tunes the idle pulse.
type BreathingConfig struct {
	MinRadius float64 `yaml:"minRadius"`
	MaxRadius float64 `yaml:"maxRadius"`
	Period    float64 `yaml:"period"`
	Intensity float64 `yaml:"intensity"`
}

// WaveConfig tunes one explosion wave.
type WaveConfig struct {
	Delay    float64 `yaml:"delay"`
	Duration float64 `yaml:"duration"`
	Scale    float64 `yaml:"scale"`
	Peak     float64 `yaml:"peak"`
}

// ExplosionConfig tunes the burst.
type ExplosionConfig struct {
	Duration      float64      `yaml:"duration"`
	FlashDuration float64      `yaml:"flashDuration"`
	FlashPeak     float64      `yaml:"flashPeak"`
	Waves         []WaveConfig `yaml:"waves"`
}

// FollowerConfig tunes the two cursor glows.
type FollowerConfig struct {
	OuterLerp      float64 `yaml:"outerLerp"`
	InnerLerp      float64 `yaml:"innerLerp"`
	OuterRadius    float64 `yaml:"outerRadius"`
	InnerRadius    float64 `yaml:"innerRadius"`
	OuterIntensity float64 `yaml:"outerIntensity"`
	InnerIntensity float64 `yaml:"innerIntensity"`
}

// SoundConfig selects the explosion effect.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	File    string  `yaml:"file"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in settings.
func Default() Config {
	b := anim.DefaultBreathing()
	burst := anim.DefaultBurst()
	cfg := Config{
		Theme:           theme.Default,
		Label:           "Explore My Work",
		FPS:             60,
		PixelsPerColumn: 8,
		PixelsPerRow:    16,
		Overscan:        grid.DefaultOverscan,
		Afterglow:       true,
		Cursor:          true,
		Breathing: BreathingConfig{
			MinRadius: b.MinRadius,
			MaxRadius: b.MaxRadius,
			Period:    b.Period,
			Intensity: b.Intensity,
		},
		Explosion: ExplosionConfig{
			Duration:      burst.Duration,
			FlashDuration: burst.Flash.Duration,
			FlashPeak:     burst.Flash.Peak,
		},
		Follower: FollowerConfig{
			OuterLerp:      0.25,
			InnerLerp:      0.5,
			OuterRadius:    250,
			InnerRadius:    60,
			OuterIntensity: 1,
			InnerIntensity: 2,
		},
		Sound: SoundConfig{Volume: 0.8},
	}
	for _, bp := range grid.DefaultBreakpoints {
		w := bp.MaxWidth
		if math.IsInf(w, 1) {
			w = 0
		}
		cfg.Breakpoints = append(cfg.Breakpoints, BreakpointConfig{MaxWidth: w, Cols: bp.Cols})
	}
	for _, w := range burst.Waves {
		cfg.Explosion.Waves = append(cfg.Explosion.Waves, WaveConfig(w))
	}
	return cfg
}

// Load reads path over the defaults and validates the result. Keys missing
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value for range errors.
func (c Config) Validate() error {
	var errs []error
	if _, err := theme.Lookup(c.Theme); err != nil {
		errs = append(errs, err)
	}
	if c.Label == "" {
		errs = append(errs, errors.New("button label is empty"))
	}
	if c.FPS < 1 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("fps %d outside [1, 240]", c.FPS))
	}
	if c.PixelsPerColumn <= 0 || c.PixelsPerRow <= 0 {
		errs = append(errs, fmt.Errorf("pixel size %vx%v must be positive", c.PixelsPerColumn, c.PixelsPerRow))
	}
	if c.Overscan < 0 {
		errs = append(errs, fmt.Errorf("overscan %d is negative", c.Overscan))
	}
	if err := validateBreakpoints(c.Breakpoints); err != nil {
		errs = append(errs, err)
	}
	if c.Breathing.MinRadius < 0 || c.Breathing.MinRadius > c.Breathing.MaxRadius {
		errs = append(errs, fmt.Errorf("breathing radius range [%v, %v] is invalid", c.Breathing.MinRadius, c.Breathing.MaxRadius))
	}
	if c.Breathing.Period <= 0 {
		errs = append(errs, fmt.Errorf("breathing period %v must be positive", c.Breathing.Period))
	}
	if c.Explosion.Duration <= 0 {
		errs = append(errs, fmt.Errorf("explosion duration %v must be positive", c.Explosion.Duration))
	}
	for i, w := range c.Explosion.Waves {
		if w.Duration <= 0 || w.Delay < 0 {
			errs = append(errs, fmt.Errorf("wave %d: delay %v / duration %v invalid", i+1, w.Delay, w.Duration))
		}
	}
	for name, l := range map[string]float64{"outerLerp": c.Follower.OuterLerp, "innerLerp": c.Follower.InnerLerp} {
		if l <= 0 || l >= 1 {
			errs = append(errs, fmt.Errorf("follower %s %v outside (0, 1)", name, l))
		}
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume %v outside [0, 1]", c.Sound.Volume))
	}
	return errors.Join(errs...)
}

func validateBreakpoints(bps []BreakpointConfig) error {
	if len(bps) == 0 {
		return errors.New("breakpoints: at least one entry required")
	}
	prev := 0.0
	for i, bp := range bps {
		if bp.Cols <= 0 {
			return fmt.Errorf("breakpoint %d: cols %d must be positive", i+1, bp.Cols)
		}
		last := i == len(bps)-1
		if unbounded(bp.MaxWidth) {
			if !last {
				return fmt.Errorf("breakpoint %d: only the last entry may be unbounded", i+1)
			}
			continue
		}
		if bp.MaxWidth <= prev {
			return fmt.Errorf("breakpoint %d: maxWidth %v not ascending", i+1, bp.MaxWidth)
		}
		if last {
			return fmt.Errorf("breakpoint %d: last entry must be unbounded (maxWidth 0)", i+1)
		}
		prev = bp.MaxWidth
	}
	return nil
}

func unbounded(w float64) bool {
	return w == 0 || math.IsInf(w, 1)
}

// BreakpointTable converts the breakpoints for grid.Compute.
func (c Config) BreakpointTable() []grid.Breakpoint {
	out := make([]grid.Breakpoint, len(c.Breakpoints))
	for i, bp := range c.Breakpoints {
		w := bp.MaxWidth
		if unbounded(w) {
			w = math.Inf(1)
		}
		out[i] = grid.Breakpoint{MaxWidth: w, Cols: bp.Cols}
	}
	return out
}

// BreathingDriver returns the breathing curve.
func (c Config) BreathingDriver() anim.Breathing {
	return anim.Breathing(c.Breathing)
}

// Burst returns the explosion settings.
func (c Config) Burst() anim.Burst {
	b := anim.Burst{
		Duration: c.Explosion.Duration,
		Flash:    anim.Flash{Duration: c.Explosion.FlashDuration, Peak: c.Explosion.FlashPeak},
	}
	for _, w := range c.Explosion.Waves {
		b.Waves = append(b.Waves, anim.Wave(w))
	}
	return b
}
