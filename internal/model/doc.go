// Package model defines the domain types and value objects for the
// catr CLI.
//
// This package contains pure data structures with no external dependencies.
// The only entity is Config, the immutable result of argument parsing; per-file
// line counters are transient state owned by the emitter.
//
// The package also defines exit codes (ExitCode), a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// and the error kinds raised while parsing arguments and streaming files.
package model
