package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-fixproto/fixproto/parse"
)

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <version> [file]",
		Short: "Parse a wire message and print its reconstructed payload",
		Long:  "Parse a wire message and print its reconstructed payload. Reads from file, or stdin when file is omitted.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := args[0]

			var file string
			if len(args) > 1 {
				file = args[1]
			}
			buf, err := readInput(file)
			if err != nil {
				return err
			}

			protocol, err := opts.resolveProtocol(version)
			if err != nil {
				return err
			}

			result, err := parse.New().Parse(protocol, buf)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "message: %s\n", result.Message.Name())
			for _, nv := range result.Payload {
				fmt.Fprintf(out, "  %s = %v\n", nv.Name, nv.Value)
			}
			return nil
		},
	}
}

// readInput reads file, or stdin when file is empty.
func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}
