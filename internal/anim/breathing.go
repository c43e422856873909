package anim

import "math"

// Breathing is the idle pulse: the radius rises from MinRadius to MaxRadius
// and back once per Period seconds. Folding the phase into [0, pi] keeps
// the curve continuous at the wrap.
type Breathing struct {
	MinRadius float64
	MaxRadius float64
	Period    float64
	Intensity float64
}

// DefaultBreathing matches the call-to-action glow.
func DefaultBreathing() Breathing {
	return Breathing{MinRadius: 120, MaxRadius: 220, Period: 3, Intensity: 1.3}
}

// Radius returns the radius t seconds into the cycle.
func (b Breathing) Radius(t float64) float64 {
	if b.Period <= 0 {
		return b.MinRadius
	}
	p := math.Mod(t, b.Period) / b.Period
	if p < 0 {
		p += 1
	}
	return b.MinRadius + math.Sin(math.Pi*p)*(b.MaxRadius-b.MinRadius)
}

// At returns radius and intensity at t.
func (b Breathing) At(t float64) (radius, intensity float64) {
	return b.Radius(t), b.Intensity
}
