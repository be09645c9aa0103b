// Package model defines the domain types for the catr CLI.
//
// All types in this package are passed between the argument parser
// (internal/cli) and the line emitter (internal/emitter). Neither of those
// packages depends on the other; model is the only shared vocabulary.
package model

// StdinName is the file name that selects standard input instead of a
// filesystem path. It may appear any number of times in a file list.
const StdinName = "-"

// Config is the validated result of argument parsing. It is constructed
// exactly once per invocation and never mutated afterwards, so its fields are
// unexported and exposed through read-only accessors.
type Config struct {
	// files is the ordered list of inputs. Never empty.
	files []string

	// numberLines numbers every output line (-n).
	numberLines bool

	// numberNonblankLines numbers only lines with non-zero length (-b).
	numberNonblankLines bool
}

// NewConfig validates the parsed flag values and builds a Config.
//
// An empty file list defaults to a single StdinName entry. Enabling both
// numbering modes is rejected with a *ConflictingFlagsError: the two flags
// describe contradictory counting rules, and silently preferring one of them
// would hide a mistake in the caller's command line.
func NewConfig(files []string, numberLines, numberNonblankLines bool) (*Config, error) {
	if numberLines && numberNonblankLines {
		return nil, &ConflictingFlagsError{
			First:  FlagNumber,
			Second: FlagNumberNonblank,
		}
	}

	// Copy the caller's slice so later changes to it cannot leak into
	// the Config.
	owned := make([]string, len(files))
	copy(owned, files)
	if len(owned) == 0 {
		owned = []string{StdinName}
	}

	return &Config{
		files:               owned,
		numberLines:         numberLines,
		numberNonblankLines: numberNonblankLines,
	}, nil
}

// Files returns a copy of the ordered input list.
func (c *Config) Files() []string {
	out := make([]string, len(c.files))
	copy(out, c.files)
	return out
}

// NumberLines reports whether every line is numbered.
func (c *Config) NumberLines() bool {
	return c.numberLines
}

// NumberNonblankLines reports whether only non-blank lines are numbered.
func (c *Config) NumberNonblankLines() bool {
	return c.numberNonblankLines
}

// ShouldNumber decides whether a line gets a number prefix.
func (c *Config) ShouldNumber(line string) bool {
	return c.numberLines || (c.numberNonblankLines && len(line) > 0)
}

// ShouldCount decides whether the per-file counter advances after a line.
// Blank lines are not counted in -b mode, matching traditional cat -b.
func (c *Config) ShouldCount(line string) bool {
	return !(c.numberNonblankLines && len(line) == 0)
}

// Flag identifiers used in diagnostics. They combine the short and long
// spellings so the message is meaningful whichever form the user typed.
const (
	FlagNumber         = "-n/--number"
	FlagNumberNonblank = "-b/--number-nonblank"
)
