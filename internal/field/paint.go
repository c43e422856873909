package field

import (
	"math"
	"strings"

	"github.com/muesli/termenv"
	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/grid"
)

var densityRamp = []byte(" .:-=+*#%@")

var white = glow.RGB{R: 255, G: 255, B: 255}

// Palette is the unlit look of the grid.
type Palette struct {
	Background glow.RGB
	Cell       glow.RGB
	Border     glow.RGB
}

// Options configures a Painter.
type Options struct {
	Profile         termenv.Profile
	PixelsPerColumn float64
	PixelsPerRow    float64
	Palette         Palette
}

// Overlay is a pre-rendered block drawn over the grid at terminal cell
// (X, Y). Every line must be exactly Width cells wide.
type Overlay struct {
	X     int
	Y     int
	Width int
	Lines []string
}

func (o Overlay) line(row int) (string, bool) {
	i := row - o.Y
	if i < 0 || i >= len(o.Lines) {
		return "", false
	}
	return o.Lines[i], true
}

// Painter turns shaded cells into terminal text. Every terminal character
// covers PixelsPerColumn x PixelsPerRow pixels and shows the grid cell
// under its center. The first character column and row of each cell draw
// its border.
type Painter struct {
	opts     Options
	fgCache  map[glow.RGB]string
	bgCache  map[glow.RGB]string
	curFG    glow.RGB
	curBG    glow.RGB
	hasColor bool
}

// NewPainter creates a painter. Zero pixel sizes default to 8x16.
func NewPainter(opts Options) *Painter {
	if opts.PixelsPerColumn <= 0 {
		opts.PixelsPerColumn = 8
	}
	if opts.PixelsPerRow <= 0 {
		opts.PixelsPerRow = 16
	}
	return &Painter{
		opts:    opts,
		fgCache: make(map[glow.RGB]string),
		bgCache: make(map[glow.RGB]string),
	}
}

// SetPalette replaces the unlit colors.
func (p *Painter) SetPalette(pal Palette) {
	p.opts.Palette = pal
}

// Palette returns the unlit colors.
func (p *Painter) Palette() Palette {
	return p.opts.Palette
}

// PixelSize returns the pixel size of one terminal character.
func (p *Painter) PixelSize() (w, h float64) {
	return p.opts.PixelsPerColumn, p.opts.PixelsPerRow
}

// Viewport returns the pixel viewport of a cols x rows terminal area.
func (p *Painter) Viewport(cols, rows int) grid.Viewport {
	return grid.Viewport{
		Width:  float64(cols) * p.opts.PixelsPerColumn,
		Height: float64(rows) * p.opts.PixelsPerRow,
	}
}

// Paint renders a cols x rows block of text.
func (p *Painter) Paint(cells []Cell, dims grid.Dimensions, cols, rows int, overlays ...Overlay) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(cols * rows * 4)
	pw, ph := p.opts.PixelsPerColumn, p.opts.PixelsPerRow

	for cy := range rows {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		py := (float64(cy) + 0.5) * ph
		for cx := 0; cx < cols; cx++ {
			if o, line, ok := overlayAt(overlays, cx, cy, cols); ok {
				p.reset(&sb)
				sb.WriteString(line)
				cx += o.Width - 1
				continue
			}
			px := (float64(cx) + 0.5) * pw
			row, col, ok := dims.CellAt(px, py)
			if !ok || len(cells) < dims.Len() {
				p.set(&sb, p.opts.Palette.Background, p.opts.Palette.Background)
				sb.WriteByte(' ')
				continue
			}
			ox, oy := dims.Origin(row, col)
			left := px-ox < pw
			top := py-oy < ph
			p.writeCell(&sb, cells[row*dims.Cols+col], left, top)
		}
		p.reset(&sb)
	}
	return sb.String()
}

func overlayAt(overlays []Overlay, cx, cy, cols int) (Overlay, string, bool) {
	for _, o := range overlays {
		if o.X != cx || o.X < 0 || o.Width <= 0 || o.X+o.Width > cols {
			continue
		}
		if line, ok := o.line(cy); ok {
			return o, line, true
		}
	}
	return Overlay{}, "", false
}

func (p *Painter) writeCell(sb *strings.Builder, c Cell, left, top bool) {
	pal := p.opts.Palette
	level := clamp01(c.Magnitude)
	edge := clamp01(math.Sqrt(c.Magnitude))

	bg := pal.Cell.Blend(c.Color, level*0.6)
	border := pal.Border.Blend(c.Color, edge*0.9)
	if c.Magnitude > 1 {
		hot := clamp01((c.Magnitude - 1) / 8)
		border = border.Blend(white, hot*0.6)
		bg = bg.Blend(c.Color, hot*0.4)
	}

	var glyph string
	switch {
	case left && top:
		glyph = "┼"
	case left:
		glyph = "│"
	case top:
		glyph = "─"
	case p.opts.Profile == termenv.Ascii:
		glyph = string(densityRamp[int(level*float64(len(densityRamp)-1))])
	default:
		glyph = " "
	}
	p.set(sb, border, bg)
	sb.WriteString(glyph)
}

func (p *Painter) set(sb *strings.Builder, fg, bg glow.RGB) {
	if p.opts.Profile == termenv.Ascii {
		return
	}
	if p.hasColor && fg == p.curFG && bg == p.curBG {
		return
	}
	sb.WriteString(termenv.CSI)
	sb.WriteString(p.sequence(p.fgCache, fg, false))
	sb.WriteByte(';')
	sb.WriteString(p.sequence(p.bgCache, bg, true))
	sb.WriteByte('m')
	p.curFG, p.curBG = fg, bg
	p.hasColor = true
}

func (p *Painter) reset(sb *strings.Builder) {
	if !p.hasColor {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	p.hasColor = false
}

func (p *Painter) sequence(cache map[glow.RGB]string, c glow.RGB, bg bool) string {
	if seq, ok := cache[c]; ok {
		return seq
	}
	seq := p.opts.Profile.Color(c.Hex()).Sequence(bg)
	cache[c] = seq
	return seq
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
