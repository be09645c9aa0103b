package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/catr/internal/model"
)

// TestParse_Valid verifies that every accepted flag combination yields a
// Config mirroring the command line.
func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFiles    []string
		wantNumber   bool
		wantNonblank bool
	}{
		{"no args reads stdin", nil, []string{"-"}, false, false},
		{"empty args reads stdin", []string{}, []string{"-"}, false, false},
		{"single file", []string{"a.txt"}, []string{"a.txt"}, false, false},
		{"explicit stdin", []string{"-"}, []string{"-"}, false, false},
		{"short number", []string{"-n", "a.txt"}, []string{"a.txt"}, true, false},
		{"long number", []string{"--number", "a.txt"}, []string{"a.txt"}, true, false},
		{"short nonblank", []string{"-b", "a.txt"}, []string{"a.txt"}, false, true},
		{"long nonblank", []string{"--number-nonblank", "a.txt"}, []string{"a.txt"}, false, true},
		{"flag after files", []string{"a.txt", "b.txt", "-n"}, []string{"a.txt", "b.txt"}, true, false},
		{"flag only reads stdin", []string{"-b"}, []string{"-"}, false, true},
		{"stdin mixed with files", []string{"a.txt", "-", "b.txt"}, []string{"a.txt", "-", "b.txt"}, false, false},
		{"double dash ends flags", []string{"--", "-n"}, []string{"-n"}, false, false},
		{"verbose is not a numbering flag", []string{"--verbose", "a.txt"}, []string{"a.txt"}, false, false},
		{"json is not a numbering flag", []string{"--json", "a.txt"}, []string{"a.txt"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, err := Parse(tt.args, &out)
			require.NoError(t, err)
			require.NotNil(t, cfg)

			assert.Equal(t, tt.wantFiles, cfg.Files())
			assert.Equal(t, tt.wantNumber, cfg.NumberLines())
			assert.Equal(t, tt.wantNonblank, cfg.NumberNonblankLines())
			assert.Empty(t, out.String())
		})
	}
}

// TestParse_ConflictingFlags verifies both numbering flags are rejected
// regardless of order or spelling.
func TestParse_ConflictingFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"n then b", []string{"-n", "-b", "a.txt"}},
		{"b then n", []string{"-b", "-n", "a.txt"}},
		{"combined nb", []string{"-nb"}},
		{"combined bn", []string{"-bn"}},
		{"long forms", []string{"--number-nonblank", "x", "--number"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, &bytes.Buffer{})
			assert.Nil(t, cfg)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitUsageError, cliErr.Code)

			var conflict *model.ConflictingFlagsError
			require.True(t, errors.As(err, &conflict))
			assert.Contains(t, err.Error(), model.FlagNumber)
			assert.Contains(t, err.Error(), model.FlagNumberNonblank)
		})
	}
}

// TestParse_UsageError verifies malformed arguments produce a UsageError.
func TestParse_UsageError(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown long flag", []string{"--bogus"}},
		{"unknown short flag", []string{"-x", "a.txt"}},
		{"display flag is unsupported", []string{"-A"}},
		{"bool flag with bad value", []string{"--number=maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, err := Parse(tt.args, &out)
			assert.Nil(t, cfg)

			var usage *model.UsageError
			require.True(t, errors.As(err, &usage), "got %v", err)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitUsageError, cliErr.Code)
			assert.Empty(t, out.String())
		})
	}
}

// TestParse_HelpAndVersion verifies help and version are terminal, successful
// outcomes that write to out and return no Config.
func TestParse_HelpAndVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short help", []string{"-h"}, "--number-nonblank"},
		{"long help", []string{"--help"}, "Usage:"},
		{"help wins over files", []string{"a.txt", "--help"}, "Usage:"},
		{"short version", []string{"-V"}, "catr " + Version},
		{"long version", []string{"--version"}, "(commit: " + Commit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, err := Parse(tt.args, &out)
			require.NoError(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
