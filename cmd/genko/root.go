package main

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/genko"
	"github.com/iw2rmb/genko/internal/config"
	"github.com/iw2rmb/genko/internal/logger"
)

type rootOptions struct {
	debug      bool
	logFile    string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "genko",
		Short: "Grid editor for Japanese writing-practice worksheets",
		Long: `genko edits genkō yōshi style practice grids in the terminal.
A worksheet is a JSON file holding one or more grids of character boxes
with optional furigana.`,
		Version:       genko.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDebug(opts.debug)
			if opts.logFile != "" {
				return logger.Init(opts.logFile)
			}
			return nil
		},
	}
	cmd.SetVersionTemplate(genko.VersionTemplate("genko"))

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Log file (default "+logger.DefaultLogPath+")")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.genko/config.json)")

	cmd.AddCommand(newEditCmd(opts), newNewCmd(opts), newPrintCmd())
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	return config.Load(o.configPath)
}
