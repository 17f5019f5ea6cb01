package main

import (
	"github.com/bethropolis/codemd/internal/app"
	"github.com/bethropolis/codemd/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.New()

	cmd := &cobra.Command{
		Use:   "codemd DIRECTORY",
		Short: "Bundle a source tree into a single markdown document",
		Long: `codemd scans a directory for code files and writes one markdown document:
a tree of the repository followed by every selected file in a fenced block.

Files are selected by extension, by substring and suffix exclusions, and by
gitignore-style rules read from the directory's .gitignore or from the files
given with --ignore-file.`,
		Args:          cobra.ExactArgs(1),
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.RootDir = args[0]
			if cfg.ConfigFile != "" {
				f, err := config.LoadFile(cfg.ConfigFile)
				if err != nil {
					return err
				}
				cfg.Apply(f, cmd.Flags().Changed)
			}
			cfg.Finalize()
			return app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Run()
		},
	}

	cfg.BindFlags(cmd.Flags())
	return cmd
}
