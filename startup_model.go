package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/olivier-w/glowgrid/internal/config"
	"github.com/olivier-w/glowgrid/internal/sound"
	"github.com/olivier-w/glowgrid/internal/ui"
)

type soundLoadedMsg struct {
	effect *sound.Effect
	err    error
}

// startupModel shows a spinner while the explosion sound decodes, then
// hands the program over to the hero model.
type startupModel struct {
	cfg     config.Config
	profile termenv.Profile
	spinner spinner.Model
	width   int
	height  int
	err     error
}

func newStartupModel(cfg config.Config, profile termenv.Profile) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	return startupModel{cfg: cfg, profile: profile, spinner: s}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadSoundCmd(m.cfg.Sound))
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case soundLoadedMsg:
		if msg.err != nil {
			log.Printf("sound: %v", msg.err)
		}
		model, err := ui.New(m.cfg, ui.Options{
			Profile:  m.profile,
			Effect:   msg.effect,
			SoundErr: msg.err,
		})
		if err != nil {
			if msg.effect != nil {
				msg.effect.Close()
			}
			m.err = err
			return m, tea.Quit
		}

		cmds := []tea.Cmd{model.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return model, tea.Batch(cmds...)

	case tea.KeyMsg:
		if startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}
	return m, nil
}

func (m startupModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("glowgrid"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(startupStatusStyle.Render(loadingLabel(m.cfg.Sound)))
	b.WriteString("\n\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func loadingLabel(cfg config.SoundConfig) string {
	switch {
	case !cfg.Enabled:
		return "Starting..."
	case cfg.File == "":
		return "Synthesizing sound..."
	default:
		return "Loading " + filepath.Base(cfg.File) + "..."
	}
}

func loadSoundCmd(cfg config.SoundConfig) tea.Cmd {
	return func() tea.Msg {
		effect, err := loadEffect(cfg)
		return soundLoadedMsg{effect: effect, err: err}
	}
}

// loadEffect opens the configured effect. A nil effect with a nil error
// means sound is disabled.
func loadEffect(cfg config.SoundConfig) (*sound.Effect, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.File == "" {
		return sound.NewEffect(sound.Synthesize(0), sound.SynthTitle, cfg.Volume)
	}
	if err := checkSoundFile(cfg.File); err != nil {
		return nil, err
	}
	return sound.Open(cfg.File, cfg.Volume)
}

func checkSoundFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !sound.IsSupportedExt(ext) {
		return fmt.Errorf("%w %s (supported: %s)", sound.ErrUnsupportedFormat, ext, sound.SupportedExtsList())
	}
	return nil
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
