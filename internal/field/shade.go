package field

import (
	"math"

	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/grid"
)

// Cell is the shading of one grid cell.
type Cell struct {
	// Magnitude is the squared contribution of the dominant source.
	Magnitude float64
	Color     glow.RGB
	Source    string
}

// Lit reports whether any source reaches the cell.
func (c Cell) Lit() bool {
	return c.Magnitude > 0
}

// Contribution returns how strongly s lights the point (x, y) given its
// effective radius, and the point's distance as a fraction of that radius.
// Points at or beyond the radius get 0.
func Contribution(s glow.Source, x, y, radius float64) (value, frac float64) {
	if radius <= 0 || s.Intensity <= 0 {
		return 0, 1
	}
	d := math.Hypot(x-s.X, y-s.Y)
	if d >= radius {
		return 0, 1
	}
	frac = d / radius
	return s.Intensity * (1 - frac), frac
}

// EffectiveRadius converts a source's radius into grid pixels. Fullscreen
// sources are sized against the viewport diagonal rather than the grid's.
func EffectiveRadius(s glow.Source, bounds grid.Bounds, vp grid.Viewport) float64 {
	if !s.FullScreen {
		return s.Radius
	}
	bd, vd := bounds.Diagonal(), vp.Diagonal()
	if bd <= 0 || vd <= 0 {
		return s.Radius
	}
	return s.Radius * vd / bd
}

// Shade computes every cell of dims from snap into dst, reusing its
// storage when large enough. Each cell shows the single source with the
// highest squared contribution at its center; ties keep the earlier source
// in snapshot order.
func Shade(dst []Cell, snap glow.Snapshot, dims grid.Dimensions, vp grid.Viewport) []Cell {
	n := dims.Len()
	if cap(dst) < n {
		dst = make([]Cell, n)
	}
	dst = dst[:n]
	clear(dst)

	type lit struct {
		src    glow.Source
		radius float64
	}
	bounds := dims.Bounds()
	active := make([]lit, 0, len(snap))
	for _, s := range snap {
		if !s.Visible() {
			continue
		}
		active = append(active, lit{src: s, radius: EffectiveRadius(s, bounds, vp)})
	}
	if len(active) == 0 {
		return dst
	}

	for row := range dims.Rows {
		for col := range dims.Cols {
			cx, cy := dims.Center(row, col)
			cell := &dst[row*dims.Cols+col]
			for _, a := range active {
				v, frac := Contribution(a.src, cx, cy, a.radius)
				if sq := v * v; sq > cell.Magnitude {
					cell.Magnitude = sq
					cell.Color = a.src.Color.At(frac)
					cell.Source = a.src.ID
				}
			}
		}
	}
	return dst
}
