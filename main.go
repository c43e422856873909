package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/olivier-w/glowgrid/internal/config"
)

const usage = `usage: glowgrid [config.yaml]

keys: enter/space explode  t theme  f afterglow  s sound  q quit
mouse: move to steer the cursor glow, click the button to explode

Set GLOWGRID_DEBUG=1 to log to debug.log.
`

func main() {
	cfg := config.Default()
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "-h", "--help", "help":
			fmt.Print(usage)
			return
		default:
			var err error
			cfg, err = config.Load(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	if os.Getenv("GLOWGRID_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "glowgrid")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	profile := termenv.EnvColorProfile()
	log.Printf("starting: theme=%s fps=%d profile=%d sound=%t", cfg.Theme, cfg.FPS, profile, cfg.Sound.Enabled)

	program := tea.NewProgram(newStartupModel(cfg, profile), tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if sm, ok := final.(startupModel); ok && sm.err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", sm.err)
		os.Exit(1)
	}
}
