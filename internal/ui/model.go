package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/olivier-w/glowgrid/internal/anim"
	"github.com/olivier-w/glowgrid/internal/config"
	"github.com/olivier-w/glowgrid/internal/field"
	"github.com/olivier-w/glowgrid/internal/glow"
	"github.com/olivier-w/glowgrid/internal/grid"
	"github.com/olivier-w/glowgrid/internal/sound"
	"github.com/olivier-w/glowgrid/internal/theme"
	"github.com/olivier-w/glowgrid/internal/util"
)

const (
	headerRows = 1
	footerRows = 1

	statusTimeout = 4 * time.Second
	volumeStep    = 0.05
)

// effectPlayer is the part of *sound.Effect the model drives.
type effectPlayer interface {
	Play()
	Title() string
	Duration() time.Duration
	Volume() float64
	SetVolume(v float64)
	ToggleMute() bool
	Muted() bool
	Close()
}

// Options carries runtime dependencies resolved before the model starts.
type Options struct {
	Profile termenv.Profile
	// Effect is nil when sound is disabled or failed to load.
	Effect   *sound.Effect
	SoundErr error
}

// Model is the Bubbletea model for the glowing hero grid.
type Model struct {
	cfg     config.Config
	palette theme.Palette
	keys    keyMap
	help    help.Model

	reg       *glow.Registry
	renderer  *field.Renderer
	cta       *anim.CTA
	outer     *anim.Follower
	inner     *anim.Follower
	container grid.Container
	effect    effectPlayer
	soundErr  error

	width       int
	height      int
	btn         button
	hover       bool
	pointerSeen bool
	quitting    bool

	status     string
	statusTime time.Time
}

// New builds the model and mounts its glow sources.
func New(cfg config.Config, opts Options) (Model, error) {
	pal, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return Model{}, err
	}

	reg := glow.NewRegistry()
	painter := field.NewPainter(field.Options{
		Profile:         opts.Profile,
		PixelsPerColumn: cfg.PixelsPerColumn,
		PixelsPerRow:    cfg.PixelsPerRow,
		Palette:         fieldPalette(pal),
	})
	renderer, err := field.NewRenderer(reg.Scheduler(), painter, cfg.FPS)
	if err != nil {
		return Model{}, fmt.Errorf("creating renderer: %w", err)
	}
	renderer.SetAfterglow(cfg.Afterglow)

	cta, err := anim.NewCTA(reg, "cta", anim.CTAConfig{
		Breathing: cfg.BreathingDriver(),
		Burst:     cfg.Burst(),
		Colors:    ctaColors(pal),
	})
	if err != nil {
		return Model{}, fmt.Errorf("creating call-to-action glow: %w", err)
	}

	m := Model{
		cfg:      cfg,
		palette:  pal,
		keys:     newKeyMap(),
		help:     help.New(),
		reg:      reg,
		renderer: renderer,
		cta:      cta,
		soundErr: opts.SoundErr,
	}
	if opts.Effect != nil {
		m.effect = opts.Effect
	}

	if cfg.Cursor {
		m.outer, err = anim.NewFollower(reg, "cursor/outer", anim.FollowerConfig{
			Lerp:      cfg.Follower.OuterLerp,
			Radius:    cfg.Follower.OuterRadius,
			Intensity: cfg.Follower.OuterIntensity,
			Color:     outerCursorColor(pal),
		})
		if err != nil {
			return Model{}, err
		}
		m.inner, err = anim.NewFollower(reg, "cursor/inner", anim.FollowerConfig{
			Lerp:      cfg.Follower.InnerLerp,
			Radius:    cfg.Follower.InnerRadius,
			Intensity: cfg.Follower.InnerIntensity,
			Color:     innerCursorColor(pal),
		})
		if err != nil {
			return Model{}, err
		}
	}

	cta.Mount()
	for _, f := range m.followers() {
		f.Hide()
		f.Mount()
	}
	return m, nil
}

func fieldPalette(p theme.Palette) field.Palette {
	return field.Palette{
		Background: glow.ParseHex(p.Background),
		Cell:       glow.ParseHex(p.GridCell),
		Border:     glow.ParseHex(p.GridBorder),
	}
}

func ctaColors(p theme.Palette) anim.CTAColors {
	return anim.CTAColors{
		Primary: glow.Hex(p.GlowPrimary),
		Flash:   glow.Hex(p.GlowFlash),
		Waves:   p.Waves(),
	}
}

func outerCursorColor(p theme.Palette) glow.Color {
	return glow.Hex(p.GlowCursor)
}

// The inner glow burns white at the pointer and cools to the cursor color.
func innerCursorColor(p theme.Palette) glow.Color {
	return glow.HexGradient("#FFFFFF", p.GlowCursor)
}

func (m Model) followers() []*anim.Follower {
	if m.outer == nil {
		return nil
	}
	return []*anim.Follower{m.outer, m.inner}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.cfg.FPS), tea.SetWindowTitle("glowgrid"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Explode):
			m.explode()
		case key.Matches(msg, m.keys.Theme):
			m.applyPalette(theme.Next(m.palette.Name))
			m.setStatus("theme " + m.palette.Name)
		case key.Matches(msg, m.keys.Afterglow):
			on := !m.renderer.Afterglow()
			m.renderer.SetAfterglow(on)
			m.setStatus("afterglow " + onOff(on))
		case key.Matches(msg, m.keys.Sound):
			m.toggleSound()
		case key.Matches(msg, m.keys.VolumeUp):
			m.adjustVolume(volumeStep)
		case key.Matches(msg, m.keys.VolumeDown):
			m.adjustVolume(-volumeStep)
		}
		return m, nil

	case tea.MouseMsg:
		return m.pointer(msg), nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.frame(time.Time(msg))
		return m, frameCmd(m.cfg.FPS)
	}
	return m, nil
}

func (m *Model) frame(now time.Time) {
	m.cta.Tick(now)
	for _, f := range m.followers() {
		f.Step()
	}
	m.reg.Scheduler().Frame()
	m.renderer.Frame()
	if m.status != "" && now.Sub(m.statusTime) > statusTimeout {
		m.status = ""
	}
}

func (m *Model) fieldRows() int {
	rows := m.height - headerRows - footerRows
	if rows < 0 {
		return 0
	}
	return rows
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	painter := m.renderer.Painter()
	_, ph := painter.PixelSize()
	vp := painter.Viewport(width, m.fieldRows())
	dims := grid.Compute(vp, m.cfg.BreakpointTable(), m.cfg.Overscan)
	m.renderer.Resize(dims, vp)
	m.cta.SetBounds(dims.Bounds())

	if dims.Len() == 0 {
		m.container.Reset()
		m.cta.ClearAnchor()
		return
	}
	m.container.Place(0, headerRows*ph)
	m.layout()
}

// layout places the button and anchors the call-to-action glow on it.
func (m *Model) layout() {
	m.btn = layoutButton(m.cfg.Label, buttonStyle(m.palette, m.hover), m.width, m.fieldRows())
	pw, ph := m.renderer.Painter().PixelSize()
	m.cta.SetAnchor(m.btn.center(pw, ph))
}

func (m Model) pointer(msg tea.MouseMsg) Model {
	cx, cy := msg.X, msg.Y-headerRows
	inField := cx >= 0 && cx < m.width && cy >= 0 && cy < m.fieldRows()

	if hover := inField && m.btn.contains(cx, cy); hover != m.hover {
		m.hover = hover
		m.layout()
	}

	if inField {
		pw, ph := m.renderer.Painter().PixelSize()
		if x, y, ok := m.container.ToLocal((float64(msg.X)+0.5)*pw, (float64(msg.Y)+0.5)*ph); ok {
			for _, f := range m.followers() {
				if !m.pointerSeen {
					f.Jump(x, y)
				}
				f.SetTarget(x, y)
			}
			m.pointerSeen = true
		}
	} else {
		for _, f := range m.followers() {
			f.Hide()
		}
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.hover {
		m.explode()
	}
	return m
}

func (m *Model) explode() {
	m.cta.Trigger()
	if m.effect != nil {
		m.effect.Play()
	}
}

func (m *Model) applyPalette(p theme.Palette) {
	m.palette = p
	m.renderer.Painter().SetPalette(fieldPalette(p))
	m.cta.SetColors(ctaColors(p))
	if m.outer != nil {
		m.outer.SetColor(outerCursorColor(p))
		m.inner.SetColor(innerCursorColor(p))
	}
	if m.width > 0 {
		m.layout()
	}
}

func (m *Model) toggleSound() {
	switch {
	case m.effect != nil:
		if m.effect.ToggleMute() {
			m.setStatus("sound off")
		} else {
			m.setStatus("sound on")
		}
	case m.soundErr != nil:
		m.setStatus("sound unavailable")
	default:
		m.setStatus("sound disabled in config")
	}
}

func (m *Model) adjustVolume(delta float64) {
	if m.effect == nil {
		m.toggleSound()
		return
	}
	m.effect.SetVolume(m.effect.Volume() + delta)
	m.setStatus(renderVolumePercent(m.effect.Volume()))
}

func renderVolumePercent(vol float64) string {
	return fmt.Sprintf("vol %d%%", int(math.Round(vol*100)))
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTime = time.Now()
}

func (m *Model) shutdown() {
	m.quitting = true
	m.cta.Unmount()
	for _, f := range m.followers() {
		f.Unmount()
	}
	m.reg.Scheduler().Frame()
	m.renderer.Close()
	if m.effect != nil {
		m.effect.Close()
	}
}

// Bounds returns the grid size in pixels.
func (m Model) Bounds() grid.Bounds {
	return m.renderer.Dimensions().Bounds()
}

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	line := lipgloss.NewStyle().MaxWidth(m.width)

	s := line.Render(m.headerLine()) + "\n"
	if rows := m.fieldRows(); rows > 0 {
		s += m.renderer.View(m.width, rows, m.btn.overlay()) + "\n"
	}
	s += line.Render(m.help.View(m.keys))
	return s
}

func (m Model) headerLine() string {
	s := " " + headerStyle.Render("glowgrid") + "  " + statusStyle.Render(m.palette.Name+" · "+m.cta.Phase().String())
	switch {
	case m.effect != nil && m.effect.Muted():
		s += "  " + statusStyle.Render("♪ muted")
	case m.effect != nil:
		s += "  " + statusStyle.Render("♪ "+m.effect.Title()+" "+util.FormatDuration(m.effect.Duration())+" · "+renderVolumePercent(m.effect.Volume()))
	case m.soundErr != nil:
		s += "  " + errorStyle.Render("sound: "+m.soundErr.Error())
	}
	if m.status != "" {
		s += "  " + helpStyle.Render(m.status)
	}
	return s
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
