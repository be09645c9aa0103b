// Package cli implements the cobra-based command line for catr.
//
// The whole program is a single root command: argument parsing and
// validation happen here, and the validated model.Config is handed to the
// emitter package, which performs all I/O.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/catr/internal/emitter"
	"github.com/mmr-tortoise/catr/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// rootFlags holds the flag values for the root command.
// These are bound to cobra flags in newCommand.
type rootFlags struct {
	// number enables numbering of every output line (-n).
	number bool

	// numberNonblank enables numbering of non-blank lines only (-b).
	numberNonblank bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// jsonOutput switches fatal error reports on stderr to a JSON object
	// for machine consumption. Per-file diagnostics stay plain text.
	jsonOutput bool
}

// runFunc receives the validated configuration once parsing succeeded.
type runFunc func(cmd *cobra.Command, cfg *model.Config, flags *rootFlags) error

// NewRootCommand creates and configures the root cobra command.
// Named files are opened from fsys; standard streams come from the
// command's In/Out/Err (which default to the process streams).
func NewRootCommand(fsys afero.Fs) *cobra.Command {
	return newCommand(func(cmd *cobra.Command, cfg *model.Config, flags *rootFlags) error {
		return runCat(cmd, fsys, cfg, flags)
	})
}

// newCommand builds the command shared by NewRootCommand and Parse.
// Only the action taken with the parsed Config differs between the two.
func newCommand(run runFunc) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "catr [flags] [FILE]...",
		Short: "Concatenate files to standard output",
		Long: `catr concatenates FILE(s) to standard output.

With no FILE, or when FILE is -, read standard input.

Examples:
  catr notes.txt          Print notes.txt.
  catr -n a.txt - b.txt   Print a.txt, then standard input, then b.txt,
                          numbering the lines of each from 1.
  catr -b notes.txt       Number only the non-blank lines.`,

		// Any number of positional file names, including none.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// SilenceErrors prevents cobra from printing errors itself;
		// Execute formats them.
		SilenceUsage:  true,
		SilenceErrors: true,

		// A "completion" subcommand would shadow a file of that name.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.NewConfig(args, flags.number, flags.numberNonblank)
			if err != nil {
				return model.WrapCLIError(model.ExitUsageError, "invalid arguments", err)
			}
			return run(cmd, cfg, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.number, "number", "n", false, "number all output lines")
	cmd.Flags().BoolVarP(&flags.numberNonblank, "number-nonblank", "b", false, "number nonempty output lines")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "trace opened files on stderr")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "report fatal errors as JSON on stderr")

	// Registering "version" ourselves stops cobra from adding its default
	// (-v) flag, while cobra still prints the version template when it is set.
	cmd.Flags().BoolP("version", "V", false, "print version information and exit")
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Flag parsing failures (unknown flags, bad syntax) become usage errors
	// so Execute can map them to ExitUsageError.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.WrapCLIError(model.ExitUsageError, "invalid arguments", model.NewUsageError(err))
	})

	return cmd
}

// runCat streams the configured files to the command's output.
func runCat(cmd *cobra.Command, fsys afero.Fs, cfg *model.Config, flags *rootFlags) error {
	logf := verboseLogger(cmd.ErrOrStderr(), flags.verbose)
	logf("files: %v, number: %t, number-nonblank: %t",
		cfg.Files(), cfg.NumberLines(), cfg.NumberNonblankLines())

	e := emitter.New(emitter.Options{
		Fs:     fsys,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logf:   logf,
	})
	if err := e.Run(cfg); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "output failed", err)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit codes; other errors default to
// ExitGeneralError.
func Execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err == nil {
		return int(model.ExitSuccess)
	}

	w := rootCmd.ErrOrStderr()

	// pflag assigns values as it goes, so --json is honored as long as it
	// appeared before any bad argument. The error is ignored: the flag
	// always exists on commands built by newCommand.
	asJSON, _ := rootCmd.Flags().GetBool("json")

	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		printError(w, cliErr.Message, cliErr.Err, asJSON)
		if cliErr.Code == model.ExitUsageError && !asJSON {
			fmt.Fprintf(w, "Try '%s --help' for more information.\n", rootCmd.Name())
		}
		return int(cliErr.Code)
	}

	printError(w, err.Error(), nil, asJSON)
	return int(model.ExitGeneralError)
}

// printError outputs an error message in the appropriate format
// (JSON or text).
func printError(w io.Writer, message string, underlying error, asJSON bool) {
	if asJSON {
		printErrorJSON(w, message, underlying)
		return
	}
	printErrorText(w, message, underlying)
}

// printErrorJSON writes {"error": {"message": ..., "detail": ...}} to w.
// The detail key is only present when there is an underlying error.
func printErrorJSON(w io.Writer, message string, underlying error) {
	errObj := map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
		},
	}
	if underlying != nil {
		if errMap, ok := errObj["error"].(map[string]interface{}); ok {
			errMap["detail"] = underlying.Error()
		}
	}
	data, _ := json.MarshalIndent(errObj, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printErrorText writes "Error: <message>[: <underlying>]" to w. The prefix
// is colored only when w is a terminal.
func printErrorText(w io.Writer, message string, underlying error) {
	prefix := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}

	prefix.Fprint(w, "Error:")
	if underlying != nil {
		fmt.Fprintf(w, " %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, " %s\n", message)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// verboseLogger returns a printf-style function that writes "[verbose]"
// lines to w when enabled, and does nothing otherwise.
func verboseLogger(w io.Writer, enabled bool) func(format string, args ...interface{}) {
	if !enabled {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, "[verbose] "+format+"\n", args...)
	}
}
