// Package emitter streams input sources to an output writer line by line,
// applying the numbering rules of a model.Config.
//
// Inputs are modelled by the Source interface with two variants: a file
// opened through an afero.Fs, and the process's standard input. The variant
// is chosen once when a name is opened, so the streaming loop never needs to
// know where its lines come from.
//
// Failures are split into two classes:
//   - Per-file failures (model.FileOpenError, model.ReadError) are reported on
//     stderr and the emitter moves on to the next file.
//   - Output failures (writing to stdout) abort the run and are returned to
//     the caller.
package emitter
