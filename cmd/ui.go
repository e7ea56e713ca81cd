package cmd

import (
	"os"

	"github.com/bnema/sms-temp/internal/adapters/render/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive client (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}
}

func runUI(cmd *cobra.Command, opts *rootOptions) error {
	terminal := tui.NewTerminalWriter()
	app, err := wireApp(wireOptions{
		configPath:  opts.configPath,
		interactive: true,
		stderr:      cmd.ErrOrStderr(),
		terminal:    terminal,
		tty:         os.Stdout,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	notifier := tui.NewNotifier()
	shell := app.newShell(cmd.Context(), notifier.Notify)
	app.logger.Info("interactive client starting", "state", app.cfg.State.Dir)

	return tui.Run(cmd.Context(), shell, notifier, terminal, tea.WithAltScreen())
}
