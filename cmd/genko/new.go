package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko/grid"
	"github.com/iw2rmb/genko/internal/worksheet"
)

func newNewCmd(root *rootOptions) *cobra.Command {
	var (
		text  string
		title string
	)
	cmd := &cobra.Command{
		Use:   "new FILE",
		Short: "Create a worksheet",
		Long: `Create a worksheet. With --text every line becomes one grid; spaces
separate sections and each character gets its own box.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			var items []grid.Item
			for _, line := range strings.Split(text, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				it := cfg.NewItem()
				it.Sections = grid.SectionsFromText(line)
				items = append(items, it)
			}
			if len(items) == 0 {
				items = append(items, cfg.NewItem())
			}

			doc := worksheet.New(items...)
			doc.Title = title
			if err := worksheet.Create(args[0], doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s with %d grid(s)\n", args[0], len(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Initial text, one grid per line")
	cmd.Flags().StringVar(&title, "title", "", "Worksheet title")
	return cmd
}
