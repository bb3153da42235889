package app

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/backend"
	"github.com/unibazaar/unibazaar-tui/internal/imagecap"
	"github.com/unibazaar/unibazaar-tui/internal/storage"
	"github.com/unibazaar/unibazaar-tui/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	DataDir      string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Strict       bool
	StartSection string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	repo, err := storage.NewRepository(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open listing store: %w", err)
	}
	images, err := imagecap.NewFileStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open image store: %w", err)
	}
	persister := backend.NewPersister(repo, 250*time.Millisecond)
	defer persister.Stop()

	model := ui.NewModel(ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		Strict:       cfg.Strict,
		StartSection: cfg.StartSection,
		Persister:    persister,
		Images:       images,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
