package field

import (
	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/grid"
)

// Renderer keeps the latest published snapshot and turns it into a shaded
// field once per frame.
type Renderer struct {
	painter *Painter
	cancel  func()

	snap    glow.Snapshot
	dirty   bool
	raw     []Cell
	display []Cell
	dims    grid.Dimensions
	vp      grid.Viewport

	fps       int
	afterglow *afterglow
}

// NewRenderer subscribes to sched. fps sizes the afterglow spring.
func NewRenderer(sched *glow.Scheduler, painter *Painter, fps int) (*Renderer, error) {
	if sched == nil {
		return nil, glow.ErrNoRegistry
	}
	if painter == nil {
		painter = NewPainter(Options{})
	}
	r := &Renderer{painter: painter, fps: fps}
	r.cancel = sched.Subscribe(r.receive)
	return r, nil
}

func (r *Renderer) receive(s glow.Snapshot) {
	r.snap = s
	r.dirty = true
}

// Close stops receiving snapshots.
func (r *Renderer) Close() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Painter returns the painter in use.
func (r *Renderer) Painter() *Painter {
	return r.painter
}

// Resize changes the grid layout. Cells are recomputed on the next Frame.
func (r *Renderer) Resize(dims grid.Dimensions, vp grid.Viewport) {
	if dims == r.dims && vp == r.vp {
		return
	}
	r.dims, r.vp = dims, vp
	r.dirty = true
	if r.afterglow != nil {
		r.afterglow.resize(0)
	}
}

// Dimensions returns the current grid layout.
func (r *Renderer) Dimensions() grid.Dimensions {
	return r.dims
}

// SetAfterglow toggles spring-smoothed fading.
func (r *Renderer) SetAfterglow(on bool) {
	switch {
	case on && r.afterglow == nil:
		r.afterglow = newAfterglow(r.fps)
	case !on:
		r.afterglow = nil
	}
}

// Afterglow reports whether fading is enabled.
func (r *Renderer) Afterglow() bool {
	return r.afterglow != nil
}

// Frame reshades the field if a new snapshot arrived and advances the
// afterglow.
func (r *Renderer) Frame() {
	if r.dirty {
		r.raw = Shade(r.raw, r.snap, r.dims, r.vp)
		r.dirty = false
	}
	if cap(r.display) < len(r.raw) {
		r.display = make([]Cell, len(r.raw))
	}
	r.display = r.display[:len(r.raw)]
	copy(r.display, r.raw)
	if r.afterglow != nil {
		r.afterglow.apply(r.display)
	}
}

// Cells returns the cells as last computed by Frame.
func (r *Renderer) Cells() []Cell {
	return r.display
}

// View paints the current cells into a cols x rows block.
func (r *Renderer) View(cols, rows int, overlays ...Overlay) string {
	return r.painter.Paint(r.display, r.dims, cols, rows, overlays...)
}
