package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoadCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "load <version>",
		Short: "Load a dictionary version and summarize what it declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := args[0]
			opts.log.WithField("version", version).Debug("loading dictionary")

			protocol, err := opts.resolveProtocol(version)
			if err != nil {
				return fmt.Errorf("load %s: %w", version, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "protocol:   %s\n", protocol.ProtocolID())
			fmt.Fprintf(out, "version:    %s\n", protocol.Version())
			fmt.Fprintf(out, "header:     %d fields\n", len(protocol.Header().Children()))
			fmt.Fprintf(out, "trailer:    %d fields\n", len(protocol.Trailer().Children()))
			return nil
		},
	}
}
