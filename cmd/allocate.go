package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/spf13/cobra"
)

func newAllocateCmd(opts *rootOptions) *cobra.Command {
	var regionName string

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Allocate a disposable number in a region",
		RunE: func(cmd *cobra.Command, _ []string) error {
			region, err := domain.FindRegion(regionName)
			if err != nil {
				return unknownRegionError(err, regionName)
			}

			app, err := wireApp(wireOptions{configPath: opts.configPath, stderr: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			defer app.Close()

			shell := app.newShell(cmd.Context(), nil)
			defer shell.Close()
			controller := shell.Controller()

			if err := controller.AllocateNumber(cmd.Context(), region); err != nil {
				if errors.Is(err, domain.ErrNotLoggedIn) {
					return fmt.Errorf("%w: run `smstemp session start` first", err)
				}
				return fmt.Errorf("allocate number: %w", err)
			}

			if err := awaitAllocation(cmd.Context(), cmd.ErrOrStderr(), region, controller); err != nil {
				return fmt.Errorf("allocate number: %w", err)
			}

			number := controller.Session().ActiveNumber
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Line Activated: %s %s\n", number.Flag, number.Number)
			return err
		},
	}

	cmd.Flags().StringVar(&regionName, "region", "", "Region display name, e.g. USA or Germany")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}
