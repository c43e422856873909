package glow

// Source is a single light emitter. X and Y are local to the grid
// container.
type Source struct {
	ID        string
	X         float64
	Y         float64
	Color     Color
	Radius    float64
	Intensity float64

	// FullScreen sources measure their radius against the viewport
	// diagonal instead of the grid bounds.
	FullScreen bool
}

// Visible reports whether the source can light anything.
func (s Source) Visible() bool {
	return s.Intensity > 0 && s.Radius > 0
}

// Patch is a partial update. Nil fields are left unchanged.
type Patch struct {
	X          *float64
	Y          *float64
	Color      *Color
	Radius     *float64
	Intensity  *float64
	FullScreen *bool
}

// WithPos sets both coordinates.
func (p Patch) WithPos(x, y float64) Patch {
	p.X, p.Y = &x, &y
	return p
}

func (p Patch) WithColor(c Color) Patch {
	p.Color = &c
	return p
}

func (p Patch) WithRadius(r float64) Patch {
	p.Radius = &r
	return p
}

func (p Patch) WithIntensity(i float64) Patch {
	p.Intensity = &i
	return p
}

func (p Patch) WithFullScreen(v bool) Patch {
	p.FullScreen = &v
	return p
}

func (p Patch) apply(s *Source) {
	if p.X != nil {
		s.X = *p.X
	}
	if p.Y != nil {
		s.Y = *p.Y
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.Radius != nil {
		s.Radius = *p.Radius
	}
	if p.Intensity != nil {
		s.Intensity = *p.Intensity
	}
	if p.FullScreen != nil {
		s.FullScreen = *p.FullScreen
	}
}
