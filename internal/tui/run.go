package tui

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/viz"
)

// DebugEnv names a file that receives log output while the terminal UI runs.
const DebugEnv = "BRUSHCHART_DEBUG"

func Run(a *app.App, theme viz.Theme) error {
	if path := os.Getenv(DebugEnv); path != "" {
		f, err := tea.LogToFile(path, "brushchart")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// log lines would corrupt the alternate screen
		log.SetOutput(io.Discard)
	}

	zones := zone.New()
	defer zones.Close()

	p := tea.NewProgram(New(a, theme, zones), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
