package field

import (
	"math"
	"testing"

	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/grid"
)

func src(id string, x, y, r, in float64, c string) glow.Source {
	return glow.Source{ID: id, X: x, Y: y, Radius: r, Intensity: in, Color: glow.Hex(c)}
}

func TestContribution(t *testing.T) {
	s := src("a", 0, 0, 100, 2, "#ffffff")
	if v, frac := Contribution(s, 50, 0, 100); v != 1 || frac != 0.5 {
		t.Fatalf("expected contribution 1 at half radius, got %v (frac %v)", v, frac)
	}
	if v, _ := Contribution(s, 0, 0, 100); v != 2 {
		t.Fatalf("expected full intensity at center, got %v", v)
	}
	if v, _ := Contribution(s, 100, 0, 100); v != 0 {
		t.Fatalf("expected nothing at the radius, got %v", v)
	}
	if v, _ := Contribution(s, 0, 0, 0); v != 0 {
		t.Fatalf("expected nothing for zero radius, got %v", v)
	}
}

func TestShadePicksHighestSquaredContribution(t *testing.T) {
	dims := grid.Dimensions{Rows: 1, Cols: 1, CellSize: 20}
	// cell center is (10, 10)
	dim := src("a", 10, 60, 100, 1, "#ff0000")   // 0.5 -> 0.25
	bright := src("b", 10, 90, 100, 3, "#00ff00") // 0.6 -> 0.36
	cells := Shade(nil, glow.Snapshot{dim, bright}, dims, grid.Viewport{Width: 20, Height: 20})

	if cells[0].Source != "b" {
		t.Fatalf("expected brighter source to dominate, got %q", cells[0].Source)
	}
	if math.Abs(cells[0].Magnitude-0.36) > 1e-9 {
		t.Fatalf("expected squared magnitude 0.36, got %v", cells[0].Magnitude)
	}
	if cells[0].Color != (glow.RGB{G: 255}) {
		t.Fatalf("expected winner color, got %+v", cells[0].Color)
	}
}

func TestShadeTieKeepsFirstSource(t *testing.T) {
	dims := grid.Dimensions{Rows: 1, Cols: 1, CellSize: 20}
	a := src("a", 10, 10, 50, 1, "#ff0000")
	b := src("b", 10, 10, 50, 1, "#00ff00")
	cells := Shade(nil, glow.Snapshot{a, b}, dims, grid.Viewport{Width: 20, Height: 20})
	if cells[0].Source != "a" {
		t.Fatalf("expected first source on tie, got %q", cells[0].Source)
	}
}

func TestShadeSkipsInertSources(t *testing.T) {
	dims := grid.Dimensions{Rows: 2, Cols: 2, CellSize: 10}
	inert := src("a", 5, 5, 100, 0, "#ff0000")
	cells := Shade(nil, glow.Snapshot{inert}, dims, grid.Viewport{Width: 20, Height: 20})
	for i, c := range cells {
		if c.Lit() {
			t.Fatalf("cell %d lit by an inert source", i)
		}
	}
}

func TestShadeOnlyLightsCellsInRange(t *testing.T) {
	dims := grid.Dimensions{Rows: 1, Cols: 10, CellSize: 10}
	s := src("a", 5, 5, 25, 1, "#ff0000")
	cells := Shade(nil, glow.Snapshot{s}, dims, grid.Viewport{Width: 100, Height: 10})

	for col, c := range cells {
		want := col < 3 // centers at 5, 15, 25 are within 25px
		if c.Lit() != want {
			t.Fatalf("cell %d: lit=%v, want %v", col, c.Lit(), want)
		}
	}
}

func TestShadeReusesStorage(t *testing.T) {
	dims := grid.Dimensions{Rows: 2, Cols: 2, CellSize: 10}
	vp := grid.Viewport{Width: 20, Height: 20}
	first := Shade(nil, glow.Snapshot{src("a", 5, 5, 50, 1, "#ff0000")}, dims, vp)
	second := Shade(first, nil, dims, vp)
	if &first[0] != &second[0] {
		t.Fatal("expected storage reuse")
	}
	if second[0].Lit() {
		t.Fatal("expected reused cells to be cleared")
	}
}

func TestShadeSamplesGradient(t *testing.T) {
	dims := grid.Dimensions{Rows: 1, Cols: 2, CellSize: 10}
	s := glow.Source{
		ID: "g", X: 5, Y: 5, Radius: 20, Intensity: 1,
		Color: glow.GradientColor(glow.RGB{R: 255}, glow.RGB{B: 255}),
	}
	cells := Shade(nil, glow.Snapshot{s}, dims, grid.Viewport{Width: 20, Height: 10})
	if cells[0].Color != (glow.RGB{R: 255}) {
		t.Fatalf("expected inner stop at center, got %+v", cells[0].Color)
	}
	if c := cells[1].Color; c.B == 0 || c.R == 0 {
		t.Fatalf("expected blend halfway out, got %+v", c)
	}
}

func TestEffectiveRadiusFullScreen(t *testing.T) {
	bounds := grid.Bounds{Width: 300, Height: 400}
	vp := grid.Viewport{Width: 150, Height: 200}
	s := glow.Source{Radius: 100}
	if got := EffectiveRadius(s, bounds, vp); got != 100 {
		t.Fatalf("expected local radius unchanged, got %v", got)
	}
	s.FullScreen = true
	if got := EffectiveRadius(s, bounds, vp); math.Abs(got-50) > 1e-9 {
		t.Fatalf("expected radius scaled to the viewport, got %v", got)
	}
	if got := EffectiveRadius(s, grid.Bounds{}, vp); got != 100 {
		t.Fatalf("expected unscaled radius without bounds, got %v", got)
	}
}

func TestAfterglowFadesInsteadOfCutting(t *testing.T) {
	a := newAfterglow(60)
	red := glow.RGB{R: 255}

	cells := []Cell{{Magnitude: 1, Color: red}}
	a.apply(cells)
	if cells[0].Magnitude != 1 {
		t.Fatalf("expected rising magnitude to apply at once, got %v", cells[0].Magnitude)
	}

	cells = []Cell{{}}
	a.apply(cells)
	if cells[0].Magnitude <= 0 || cells[0].Magnitude >= 1 {
		t.Fatalf("expected partial fade, got %v", cells[0].Magnitude)
	}
	if cells[0].Color != red {
		t.Fatalf("expected fading cell to keep its color, got %+v", cells[0].Color)
	}

	for range 600 {
		cells = []Cell{{}}
		a.apply(cells)
	}
	if cells[0].Magnitude != 0 {
		t.Fatalf("expected fade to settle at 0, got %v", cells[0].Magnitude)
	}
}
