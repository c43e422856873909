package anim

// Wave is one expanding ring of an explosion.
type Wave struct {
	Delay    float64
	Duration float64
	Scale    float64
	Peak     float64
}

// At evaluates the wave t seconds into the explosion. maxTravel is the
// distance a Scale of 1 reaches at the end. Outside [Delay, Delay+Duration]
// the wave is inactive and its intensity is exactly 0.
func (w Wave) At(t, maxTravel float64) (radius, intensity float64, active bool) {
	local := t - w.Delay
	if w.Duration <= 0 || local < 0 || local > w.Duration {
		return 0, 0, false
	}
	e := EaseInOutSine(local / w.Duration)
	return e * maxTravel * w.Scale, w.Peak * (1 - e), true
}

// End returns when the wave finishes.
func (w Wave) End() float64 {
	return w.Delay + w.Duration
}

// Flash is the bright full-screen pulse at the start of an explosion.
type Flash struct {
	Duration float64
	Peak     float64
}

// At returns the flash intensity t seconds into the explosion. It decays
// quadratically to 0.
func (f Flash) At(t float64) (intensity float64, active bool) {
	if f.Duration <= 0 || t < 0 || t > f.Duration {
		return 0, false
	}
	u := 1 - t/f.Duration
	return f.Peak * u * u, true
}

// Burst is a staggered set of waves. Duration is when the owning driver
// returns to breathing.
type Burst struct {
	Waves    []Wave
	Flash    Flash
	Duration float64
}

// DefaultBurst has three overlapping waves lasting 1.2s in total.
func DefaultBurst() Burst {
	return Burst{
		Waves: []Wave{
			{Delay: 0, Duration: 0.8, Scale: 1.2, Peak: 2.2},
			{Delay: 0.1, Duration: 0.9, Scale: 1.1, Peak: 1.6},
			{Delay: 0.2, Duration: 1.0, Scale: 1.0, Peak: 1.2},
		},
		Flash:    Flash{Duration: 0.25, Peak: 3},
		Duration: 1.2,
	}
}
