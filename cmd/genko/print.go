package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko/editor"
	"github.com/iw2rmb/genko/internal/worksheet"
)

func newPrintCmd() *cobra.Command {
	var (
		width int
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Render a worksheet as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := worksheet.Load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plain {
				fmt.Fprintln(out, doc.Text())
				return nil
			}

			blocks := make([]string, 0, len(doc.Items)+1)
			if doc.Title != "" {
				blocks = append(blocks, doc.Title)
			}
			for _, it := range doc.Items {
				blocks = append(blocks, editor.RenderItem(it, width))
			}
			fmt.Fprintln(out, strings.Join(blocks, "\n\n"))
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Width used for alignment (0 disables it)")
	cmd.Flags().BoolVar(&plain, "text", false, "Print only the characters, one grid per line")
	return cmd
}
