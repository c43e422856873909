package ui

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/olivier-w/glowgrid/internal/anim"
	"github.com/olivier-w/glowgrid/internal/config"
	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/theme"
)

var frameBase = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	opts.Profile = termenv.Ascii
	m, err := New(config.Default(), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

// frames feeds frame messages i = from..to at 60 fps.
func frames(t *testing.T, m Model, from, to int) Model {
	t.Helper()
	for i := from; i <= to; i++ {
		m, _ = update(t, m, frameMsg(frameBase.Add(time.Duration(i)*time.Second/60)))
	}
	return m
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	// 160x50 field characters at 8x16 pixels is a 1280x800 viewport.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 52})
	return m
}

func source(t *testing.T, reg *glow.Registry, id string) glow.Source {
	t.Helper()
	s, ok := reg.Get(id)
	if !ok {
		t.Fatalf("source %s not registered", id)
	}
	return s
}

func TestNewMountsSources(t *testing.T) {
	m := newTestModel(t, Options{})
	// primary, 3 waves, flash, 2 cursor layers
	if m.reg.Len() != 7 {
		t.Fatalf("expected 7 sources, got %d", m.reg.Len())
	}
	if !m.outer.Hidden() || !m.inner.Hidden() {
		t.Fatal("expected cursor glows hidden until the pointer moves")
	}
}

func TestNewWithoutCursor(t *testing.T) {
	cfg := config.Default()
	cfg.Cursor = false
	m, err := New(cfg, Options{Profile: termenv.Ascii})
	if err != nil {
		t.Fatal(err)
	}
	if m.outer != nil || m.reg.Len() != 5 {
		t.Fatalf("expected no cursor sources, got %d sources", m.reg.Len())
	}
}

func TestNewRejectsUnknownTheme(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "neon"
	if _, err := New(cfg, Options{}); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestResizeComputesGrid(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))
	dims := m.renderer.Dimensions()
	if dims.Cols != 25 || dims.Rows != 18 {
		t.Fatalf("expected 25x18 grid, got %dx%d", dims.Cols, dims.Rows)
	}
	b := m.Bounds()
	if math.Abs(b.Width-1280) > 1e-6 || math.Abs(b.Height-921.6) > 1e-6 {
		t.Fatalf("unexpected bounds %+v", b)
	}
	if m.btn.w != 23 || m.btn.h != 3 || m.btn.x != 68 || m.btn.y != 23 {
		t.Fatalf("unexpected button placement %+v", m.btn)
	}
}

func TestHeroScenario(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))
	primary := m.cta.PrimaryID()

	published := m.reg.Scheduler().Published()
	m = frames(t, m, 0, 90)
	if got := m.reg.Scheduler().Published() - published; got != 91 {
		t.Fatalf("expected one publication per frame, got %d for 91 frames", got)
	}

	p := source(t, m.reg, primary)
	if math.Abs(p.Radius-220) > 1e-6 {
		t.Fatalf("expected max breathing radius after half a period, got %v", p.Radius)
	}
	if math.Abs(p.X-636) > 1e-9 || math.Abs(p.Y-392) > 1e-9 {
		t.Fatalf("expected glow on button center, got (%v, %v)", p.X, p.Y)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.cta.Phase() != anim.PhaseExploding {
		t.Fatalf("expected exploding, got %s", m.cta.Phase())
	}
	m = frames(t, m, 91, 93)
	w1 := source(t, m.reg, m.cta.WaveIDs()[0])
	if w1.Intensity < 2.1 || w1.Intensity > 2.2 {
		t.Fatalf("expected fastest wave near its peak, got %v", w1.Intensity)
	}

	m = frames(t, m, 94, 168)
	for _, id := range m.cta.WaveIDs() {
		if s := source(t, m.reg, id); s.Intensity != 0 {
			t.Fatalf("expected %s dark after the burst, got %v", id, s.Intensity)
		}
	}
	if m.cta.Phase() != anim.PhaseBreathing {
		t.Fatalf("expected breathing again, got %s", m.cta.Phase())
	}
	if m.cta.Elapsed() > 0.15 {
		t.Fatalf("expected clock reset near 0, got %v", m.cta.Elapsed())
	}
}

func TestClickOnButtonExplodes(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))

	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.cta.Phase() != anim.PhaseBreathing {
		t.Fatal("expected click outside the button to be ignored")
	}

	// Button occupies columns 68-90 and field rows 23-25 (terminal rows 24-26).
	m, _ = update(t, m, tea.MouseMsg{X: 79, Y: 25, Action: tea.MouseActionMotion})
	if !m.hover {
		t.Fatal("expected hover over the button")
	}
	m, _ = update(t, m, tea.MouseMsg{X: 79, Y: 25, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.cta.Phase() != anim.PhaseExploding {
		t.Fatal("expected click on the button to explode")
	}
}

func TestButtonHitTesting(t *testing.T) {
	b := button{x: 10, y: 5, w: 4, h: 3}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 7, true},
		{14, 5, false},
		{9, 6, false},
		{11, 8, false},
		{11, 4, false},
	}
	for _, tt := range tests {
		if got := b.contains(tt.x, tt.y); got != tt.want {
			t.Fatalf("contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	x, y := b.center(8, 16)
	if x != 96 || y != 104 {
		t.Fatalf("expected center (96, 104), got (%v, %v)", x, y)
	}
}

func TestPointerMovesCursorGlow(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))

	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion})
	if m.outer.Hidden() {
		t.Fatal("expected pointer motion to show the cursor glow")
	}
	// Character (10, 10) has pixel center (84, 168); the header row shifts
	// the grid down 16 pixels.
	x, y := m.outer.Current()
	if x != 84 || y != 152 {
		t.Fatalf("expected first motion to jump to (84, 152), got (%v, %v)", x, y)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 10, Action: tea.MouseActionMotion})
	if x, _ := m.outer.Current(); x != 84 {
		t.Fatalf("expected motion alone not to move the glow, got x=%v", x)
	}
	if tx, ty := m.outer.Target(); tx != 164 || ty != 152 {
		t.Fatalf("expected target (164, 152), got (%v, %v)", tx, ty)
	}
	m = frames(t, m, 0, 0)
	if x, _ := m.outer.Current(); x <= 84 || x >= 164 {
		t.Fatalf("expected glow to ease toward the pointer, got x=%v", x)
	}

	m, _ = update(t, m, tea.MouseMsg{X: 20, Y: 0, Action: tea.MouseActionMotion})
	if !m.outer.Hidden() || !m.inner.Hidden() {
		t.Fatal("expected cursor glow hidden outside the grid")
	}
}

func TestThemeCycleRecolorsSources(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.palette.Name != "crimson" {
		t.Fatalf("expected crimson after purple, got %s", m.palette.Name)
	}
	p := source(t, m.reg, m.cta.PrimaryID())
	if !p.Color.Equal(glow.Hex("#EF4444")) {
		t.Fatalf("expected primary recolored, got %s", p.Color.Primary().Hex())
	}
	crimson, err := theme.Lookup("crimson")
	if err != nil {
		t.Fatal(err)
	}
	if got := m.renderer.Painter().Palette(); got != fieldPalette(crimson) {
		t.Fatalf("expected grid repainted with crimson, got %+v", got)
	}
	if !strings.Contains(m.status, "crimson") {
		t.Fatalf("expected theme status, got %q", m.status)
	}
}

func TestAfterglowToggle(t *testing.T) {
	m := newTestModel(t, Options{})
	if !m.renderer.Afterglow() {
		t.Fatal("expected afterglow on by default")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	if m.renderer.Afterglow() {
		t.Fatal("expected afterglow off")
	}
}

func TestSoundToggleWithoutEffect(t *testing.T) {
	m := newTestModel(t, Options{SoundErr: errors.New("no device")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.status != "sound unavailable" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if !strings.Contains(m.headerLine(), "no device") {
		t.Fatal("expected sound error in header")
	}
}

type fakeEffect struct {
	plays  int
	volume float64
	muted  bool
	closed bool
}

func (f *fakeEffect) Play() { f.plays++ }
func (f *fakeEffect) Title() string { return "Glow Burst" }
func (f *fakeEffect) Duration() time.Duration { return 900 * time.Millisecond }
func (f *fakeEffect) Volume() float64 { return f.volume }
func (f *fakeEffect) SetVolume(v float64) { f.volume = math.Max(0, math.Min(1, v)) }
func (f *fakeEffect) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}
func (f *fakeEffect) Muted() bool { return f.muted }
func (f *fakeEffect) Close() { f.closed = true }

func TestVolumeKeys(t *testing.T) {
	fx := &fakeEffect{volume: 0.8}
	m := newTestModel(t, Options{})
	m.effect = fx

	tests := []struct {
		key  string
		want float64
		msg  string
	}{
		{"+", 0.85, "vol 85%"},
		{"=", 0.9, "vol 90%"},
		{"-", 0.85, "vol 85%"},
		{"-", 0.8, "vol 80%"},
	}
	for _, tt := range tests {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
		if math.Abs(fx.volume-tt.want) > 1e-9 {
			t.Fatalf("after %q: expected volume %v, got %v", tt.key, tt.want, fx.volume)
		}
		if m.status != tt.msg {
			t.Fatalf("after %q: expected status %q, got %q", tt.key, tt.msg, m.status)
		}
	}
	if !strings.Contains(m.headerLine(), "vol 80%") {
		t.Fatalf("expected volume in header, got %q", m.headerLine())
	}
}

func TestVolumeClampsAtEnds(t *testing.T) {
	fx := &fakeEffect{volume: 0.95}
	m := newTestModel(t, Options{})
	m.effect = fx

	for range 3 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if fx.volume != 1 || m.status != "vol 100%" {
		t.Fatalf("expected volume capped at 100%%, got %v (%q)", fx.volume, m.status)
	}
	for range 30 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if fx.volume != 0 || m.status != "vol 0%" {
		t.Fatalf("expected volume floored at 0%%, got %v (%q)", fx.volume, m.status)
	}
}

func TestVolumeWithoutEffect(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	if m.status != "sound disabled in config" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.effect != nil {
		t.Fatal("expected no effect when none was given")
	}
}

func TestExplodePlaysEffect(t *testing.T) {
	fx := &fakeEffect{volume: 0.8}
	m := sized(t, newTestModel(t, Options{}))
	m.effect = fx

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if fx.plays != 1 {
		t.Fatalf("expected one play, got %d", fx.plays)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if m.status != "sound off" || !strings.Contains(m.headerLine(), "muted") {
		t.Fatalf("expected muted effect, got status %q header %q", m.status, m.headerLine())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !fx.closed {
		t.Fatal("expected effect closed on quit")
	}
}

func TestStatusExpires(t *testing.T) {
	m := newTestModel(t, Options{})
	m.setStatus("hello")
	m = frames(t, m, 0, 0)
	if m.status == "" {
		t.Fatal("expected fresh status to stay")
	}
	m, _ = update(t, m, frameMsg(time.Now().Add(statusTimeout+time.Second)))
	if m.status != "" {
		t.Fatalf("expected status to expire, got %q", m.status)
	}
}

func TestViewLayout(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))
	m = frames(t, m, 0, 1)
	view := m.View()
	if got := strings.Count(view, "\n"); got != 51 {
		t.Fatalf("expected 52 lines, got %d", got+1)
	}
	for _, want := range []string{"glowgrid", "Explore My Work", "explode"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestTinyWindowSkipsGrid(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 2})
	m = frames(t, m, 0, 3)
	if m.renderer.Dimensions().Len() != 0 {
		t.Fatal("expected no grid without field rows")
	}
	p := source(t, m.reg, m.cta.PrimaryID())
	if p.Radius != 120 {
		t.Fatalf("expected primary untouched while unanchored, got radius %v", p.Radius)
	}
	if strings.Count(m.View(), "\n") != 1 {
		t.Fatal("expected header and help only")
	}
}

func TestQuitUnmountsEverything(t *testing.T) {
	m := sized(t, newTestModel(t, Options{}))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.reg.Len() != 0 {
		t.Fatalf("expected all sources unregistered, got %d", m.reg.Len())
	}
	if m.View() != "" {
		t.Fatal("expected empty view after quit")
	}
}
