package demo

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/drawer/internal/app"
)

type Deps struct {
	IsTerminal func() bool
	Options    func() app.Options
	NewApp     func(app.Options) (*app.Application, error)
	RunProgram func(tea.Model) error
	Platform   func() string
}

func DefaultDeps() Deps {
	return Deps{
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Options: app.DefaultOptions,
		NewApp:  app.New,
		RunProgram: func(m tea.Model) error {
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err := p.Run()
			return err
		},
		Platform: func() string { return os.Getenv("TERM_PROGRAM") },
	}
}
