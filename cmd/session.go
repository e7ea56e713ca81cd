package cmd

import (
	"encoding/json"
	"fmt"

	summaryadapter "github.com/bnema/sms-temp/internal/adapters/render/summary"
	"github.com/spf13/cobra"
)

func newSessionCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or start the persisted session",
	}

	cmd.AddCommand(newSessionShowCmd(opts), newSessionStartCmd(opts))

	return cmd
}

func newSessionShowCmd(opts *rootOptions) *cobra.Command {
	var (
		asJSON      bool
		maxMessages int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the session, active number and inbox",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(wireOptions{configPath: opts.configPath, stderr: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			session := app.newShell(cmd.Context(), nil).Controller().Session()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(session)
			}

			return app.newSummary(cmd.OutOrStdout()).Write(session, summaryadapter.RenderOptions{MaxMessages: maxMessages})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the raw session snapshot as JSON")
	cmd.Flags().IntVar(&maxMessages, "max-messages", 10, "Limit inbox entries shown (0 for all)")

	return cmd
}

func newSessionStartCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a secure session (the non-interactive \"Start Now\")",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(wireOptions{configPath: opts.configPath, stderr: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			shell := app.newShell(cmd.Context(), nil)
			defer shell.Close()

			if !shell.Controller().StartSession(cmd.Context()) {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Session already active")
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Secure Session Started")
			return err
		},
	}
}
