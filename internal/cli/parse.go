package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/catr/internal/model"
)

// Parse converts command-line arguments (without the program name) into a
// validated Config without performing any file I/O.
//
// When the arguments request help or version information, the text is
// written to out and Parse returns a nil Config and a nil error; callers
// should treat that as a successful, terminal outcome. Conflicting numbering
// flags and malformed arguments are returned as *model.CLIError values that
// wrap *model.ConflictingFlagsError or *model.UsageError.
func Parse(args []string, out io.Writer) (*model.Config, error) {
	var parsed *model.Config
	cmd := newCommand(func(_ *cobra.Command, cfg *model.Config, _ *rootFlags) error {
		parsed = cfg
		return nil
	})

	// cobra falls back to os.Args when given a nil slice.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	return parsed, nil
}
