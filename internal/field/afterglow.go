package field

import (
	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/glowgrid/internal/glow"
)

// afterglow lets cell magnitudes fall back on a critically damped spring
// instead of cutting off. Rising magnitudes are taken immediately.
type afterglow struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
	colors []glow.RGB
}

func newAfterglow(fps int) *afterglow {
	if fps <= 0 {
		fps = 60
	}
	return &afterglow{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

func (a *afterglow) resize(n int) {
	if len(a.pos) == n {
		return
	}
	a.pos = make([]float64, n)
	a.vel = make([]float64, n)
	a.colors = make([]glow.RGB, n)
}

func (a *afterglow) apply(cells []Cell) {
	a.resize(len(cells))
	for i := range cells {
		target := cells[i].Magnitude
		if target >= a.pos[i] {
			a.pos[i] = target
			a.vel[i] = 0
			a.colors[i] = cells[i].Color
			continue
		}
		p, v := a.spring.Update(a.pos[i], a.vel[i], target)
		if p < 1e-4 {
			p, v = 0, 0
		}
		a.pos[i], a.vel[i] = p, v
		cells[i].Magnitude = p
		if target == 0 {
			cells[i].Color = a.colors[i]
		} else {
			a.colors[i] = cells[i].Color
		}
	}
}
