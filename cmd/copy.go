package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCopyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy the active number to the clipboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(wireOptions{
				configPath: opts.configPath,
				stderr:     cmd.ErrOrStderr(),
				terminal:   cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			defer app.Close()

			shell := app.newShell(cmd.Context(), nil)
			defer shell.Close()

			if err := shell.Controller().CopyActiveNumber(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.ErrOrStderr(), "Copied to Clipboard")
			return err
		},
	}
}
