package emitter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/mmr-tortoise/catr/internal/model"
)

// Options configures an Emitter. Zero-valued fields fall back to the real
// process environment.
type Options struct {
	// Fs is the filesystem named inputs are opened from.
	Fs afero.Fs

	// Stdin is read for every "-" entry in the file list.
	Stdin io.Reader

	// Stdout receives the emitted lines.
	Stdout io.Writer

	// Stderr receives per-file diagnostics.
	Stderr io.Writer

	// Logf receives verbose trace messages. Nil disables tracing.
	Logf func(format string, args ...interface{})
}

// Emitter opens each configured input in turn and copies its lines to
// stdout, numbering them as the Config requires.
type Emitter struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logf   func(format string, args ...interface{})

	// stdinOpened records that a "-" entry has already been opened.
	stdinOpened bool
}

// New creates an Emitter, filling unset options with process defaults.
func New(opts Options) *Emitter {
	e := &Emitter{
		fs:     opts.Fs,
		stdin:  opts.Stdin,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		logf:   opts.Logf,
	}
	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.logf == nil {
		e.logf = func(string, ...interface{}) {}
	}
	return e
}

// Run emits every file in cfg, in order.
//
// Open and read failures are reported on stderr and the file is skipped;
// they never make Run fail. The only error Run returns is a failure to write
// output, after which nothing further is attempted.
//
// Output is buffered. The buffer is flushed before each diagnostic so stdout
// and stderr stay in order, and before any read that would block.
func (e *Emitter) Run(cfg *model.Config) error {
	out := bufio.NewWriter(e.stdout)

	for _, name := range cfg.Files() {
		err := e.emitFile(out, name, cfg)
		if err == nil {
			continue
		}

		var openErr *model.FileOpenError
		var readErr *model.ReadError
		if !errors.As(err, &openErr) && !errors.As(err, &readErr) {
			return err
		}
		if ferr := out.Flush(); ferr != nil {
			return fmt.Errorf("failed to write output: %w", ferr)
		}
		if _, werr := fmt.Fprintln(e.stderr, err); werr != nil {
			return fmt.Errorf("failed to write diagnostic: %w", werr)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Open selects the Source variant for name. "-" yields standard input;
// anything else is opened from the filesystem.
//
// Standard input is consumed by the first "-" only. Every later "-" gets a
// source that is already at end of input, even when the first one stopped
// early on a read error.
func (e *Emitter) Open(name string) (Source, error) {
	if name == model.StdinName {
		src := newStdinSource(e.stdin)
		src.drained = e.stdinOpened
		e.stdinOpened = true
		return src, nil
	}

	f, err := e.fs.Open(name)
	if err != nil {
		return nil, &model.FileOpenError{Name: name, Err: err}
	}
	return newFileSource(name, f), nil
}

// emitFile streams a single input. The line counter is local, so numbering
// restarts at 1 for every file.
func (e *Emitter) emitFile(out *bufio.Writer, name string, cfg *model.Config) error {
	e.logf("opening %s", name)
	src, err := e.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	counter := 1
	physical := 0
	for {
		// Nothing left in the read buffer means the next read may block
		// (interactive stdin); make what was written so far visible first.
		if b, ok := src.(bufferedSource); ok && b.buffered() == 0 {
			if err := out.Flush(); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}

		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			e.logf("%s: %d lines", src.Name(), physical)
			return nil
		}
		physical++
		if err != nil {
			return &model.ReadError{Name: src.Name(), Line: physical, Err: err}
		}

		if err := writeLine(out, cfg, counter, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if cfg.ShouldCount(line) {
			counter++
		}
	}
}

// writeLine formats one line, with or without its number prefix.
func writeLine(w io.Writer, cfg *model.Config, counter int, line string) error {
	var err error
	if cfg.ShouldNumber(line) {
		_, err = fmt.Fprintf(w, "%6d\t%s\n", counter, line)
	} else {
		_, err = fmt.Fprintf(w, "%s\n", line)
	}
	return err
}
