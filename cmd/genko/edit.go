package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko/editor"
	errs "github.com/iw2rmb/genko/internal/errors"
	"github.com/iw2rmb/genko/internal/logger"
	"github.com/iw2rmb/genko/internal/sysclip"
	"github.com/iw2rmb/genko/internal/worksheet"
)

func newEditCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit FILE",
		Short: "Open a worksheet in the grid editor",
		Long:  "Open a worksheet in the grid editor. A missing FILE is created on first save.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			doc, err := worksheet.Load(path)
			switch {
			case errs.Is(err, errs.KindNotFound):
				doc = worksheet.New(cfg.NewItem())
			case err != nil:
				return err
			}

			defer logger.Close()
			log := logger.ComponentLogger("editor")
			log.Info("editing worksheet", "path", path, "items", len(doc.Items))

			var clip editor.Clipboard
			if sysclip.Available() {
				clip = sysclip.System{Log: log}
			}

			m := worksheet.NewModel(doc, worksheet.Options{
				Path:      path,
				Config:    cfg,
				Clipboard: clip,
				Logger:    log,
			})
			p := tea.NewProgram(app{m}, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running editor: %w", err)
			}
			if doc.Modified() {
				fmt.Fprintln(cmd.ErrOrStderr(), "unsaved changes discarded")
			}
			return nil
		},
	}
}

// app adapts worksheet.Model to tea.Model.
type app struct {
	worksheet.Model
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}
