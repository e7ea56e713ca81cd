package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "smstemp",
		Short:         "SMS Temp: simulated disposable numbers for verification",
		Long:          "smstemp simulates an ephemeral phone number service in the terminal: allocate a disposable number, watch its inbox, and copy it for use elsewhere. Nothing is provisioned for real.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $HOME/.smstemp/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newUICmd(opts),
		newSessionCmd(opts),
		newAllocateCmd(opts),
		newCopyCmd(opts),
		newRegionsCmd(),
		newConfigCmd(opts),
	)

	return rootCmd
}
