package grid

import "math"

// Breakpoint maps viewports up to MaxWidth pixels wide to a column count.
type Breakpoint struct {
	MaxWidth float64
	Cols     int
}

// DefaultBreakpoints is ordered ascending by MaxWidth; the last entry is
// unbounded.
var DefaultBreakpoints = []Breakpoint{
	{MaxWidth: 640, Cols: 10},
	{MaxWidth: 768, Cols: 15},
	{MaxWidth: 1024, Cols: 20},
	{MaxWidth: math.Inf(1), Cols: 25},
}

// DefaultOverscan is the number of extra rows below the viewport so the grid
// never leaves a gap after rounding.
const DefaultOverscan = 2

// Viewport is the visible area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Diagonal returns hypot(width, height).
func (v Viewport) Diagonal() float64 {
	return math.Hypot(v.Width, v.Height)
}

// Bounds is the pixel size of the whole grid.
type Bounds struct {
	Width  float64
	Height float64
}

// Diagonal returns hypot(width, height), the farthest an effect needs to
// travel to cover the grid.
func (b Bounds) Diagonal() float64 {
	return math.Hypot(b.Width, b.Height)
}

// Empty reports whether the grid has not been measured yet.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Dimensions is the grid layout for one viewport.
type Dimensions struct {
	Rows     int
	Cols     int
	CellSize float64
}

// Compute selects the column count from table (first entry whose MaxWidth
// is >= the viewport width), derives the cell size from it and adds
// overscan rows. A zero viewport yields zero Dimensions.
func Compute(vp Viewport, table []Breakpoint, overscan int) Dimensions {
	if vp.Width <= 0 || vp.Height <= 0 || len(table) == 0 {
		return Dimensions{}
	}
	cols := table[len(table)-1].Cols
	for _, bp := range table {
		if vp.Width <= bp.MaxWidth {
			cols = bp.Cols
			break
		}
	}
	if cols < 1 {
		cols = 1
	}
	if overscan < 0 {
		overscan = 0
	}
	size := vp.Width / float64(cols)
	rows := int(math.Ceil(vp.Height/size)) + overscan
	return Dimensions{Rows: rows, Cols: cols, CellSize: size}
}

// Bounds returns the grid size in pixels.
func (d Dimensions) Bounds() Bounds {
	return Bounds{
		Width:  float64(d.Cols) * d.CellSize,
		Height: float64(d.Rows) * d.CellSize,
	}
}

// Len returns the number of cells.
func (d Dimensions) Len() int {
	return d.Rows * d.Cols
}

// CellAt returns the cell containing local point (x, y).
func (d Dimensions) CellAt(x, y float64) (row, col int, ok bool) {
	if d.CellSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x / d.CellSize)
	row = int(y / d.CellSize)
	if row >= d.Rows || col >= d.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// Center returns the local pixel center of a cell.
func (d Dimensions) Center(row, col int) (x, y float64) {
	return (float64(col) + 0.5) * d.CellSize, (float64(row) + 0.5) * d.CellSize
}

// Origin returns the local pixel top-left corner of a cell.
func (d Dimensions) Origin(row, col int) (x, y float64) {
	return float64(col) * d.CellSize, float64(row) * d.CellSize
}
