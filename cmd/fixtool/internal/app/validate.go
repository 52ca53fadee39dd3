package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <version>",
		Short: "Validate that a dictionary version constructs a usable Protocol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := args[0]

			if _, err := opts.resolveProtocol(version); err != nil {
				opts.log.WithError(err).Error("dictionary failed to construct")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", version)
			return nil
		},
	}
}
