package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-fixproto/fixproto/internal/wirebytes"
)

func newHumanizeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "humanize [file]",
		Short: "Render a wire capture with SOH replaced by \" | \" for inspection",
		Long:  "Render a wire capture with SOH replaced by \" | \" for inspection. Reads from file, or stdin when omitted. Diagnostic only, not reversible.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			buf, err := readInput(file)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), colorize(opts.color, wirebytes.Humanize(buf)))
			return nil
		},
	}
}
