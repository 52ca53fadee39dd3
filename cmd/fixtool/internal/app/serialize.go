package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-fixproto/fixproto/fix"
	"github.com/go-fixproto/fixproto/internal/wirebytes"
	"github.com/go-fixproto/fixproto/serialize"
)

func newSerializeCommand(opts *options) *cobra.Command {
	var humanize bool

	cmd := &cobra.Command{
		Use:   "serialize <version> <message> [name=value ...]",
		Short: "Serialize a named message from name=value pairs and print the wire bytes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, msgName, pairs := args[0], args[1], args[2:]

			protocol, err := opts.resolveProtocol(version)
			if err != nil {
				return err
			}

			payload, err := parsePairs(pairs)
			if err != nil {
				return err
			}

			wire, err := serialize.Message(protocol, msgName, payload)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if humanize {
				fmt.Fprintln(out, colorize(opts.color, wirebytes.Humanize(wire)))
			} else {
				out.Write(wire)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&humanize, "humanize", false, "print with SOH replaced by \" | \" instead of raw bytes")
	return cmd
}

// parsePairs turns a list of "name=value" arguments into a fix.Payload
// in the order given.
func parsePairs(pairs []string) (fix.Payload, error) {
	payload := make(fix.Payload, 0, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("fixtool: %q is not a name=value pair", p)
		}
		payload = append(payload, fix.NameValue{Name: name, Value: value})
	}
	return payload, nil
}
