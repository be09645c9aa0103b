package emitter

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/mmr-tortoise/catr/internal/model"
)

// Source produces the lines of one input, in order.
type Source interface {
	// Name returns the name the source was opened under ("-" for stdin).
	Name() string

	// ReadLine returns the next line with its terminator removed.
	// It returns io.EOF once the input is exhausted.
	ReadLine() (string, error)

	// Close releases the source. It is safe to call once after any
	// ReadLine outcome.
	Close() error
}

// lineReader is the shared line-splitting logic behind both Source variants.
//
// bufio.Reader is used rather than bufio.Scanner because Scanner refuses
// lines longer than its buffer, and cat has no line length limit.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) lineReader {
	return lineReader{r: bufio.NewReader(r)}
}

// buffered returns the number of bytes already read from the underlying
// reader but not yet returned as lines.
func (lr lineReader) buffered() int {
	return lr.r.Buffered()
}

// bufferedSource is implemented by sources that can report read-ahead.
// Both Source variants satisfy it through lineReader.
type bufferedSource interface {
	buffered() int
}

// readLine reads up to and including the next '\n', then strips the
// terminator. A "\r\n" terminator is stripped as a whole; a lone trailing
// '\r' without '\n' is kept. A final line with no terminator is returned
// as-is, and io.EOF is only reported once nothing is left.
func (lr lineReader) readLine() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}

	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
	}

	if !utf8.ValidString(line) {
		return "", model.ErrInvalidUTF8
	}
	return line, nil
}

// fileSource reads lines from a file opened through afero.
type fileSource struct {
	lineReader
	name string
	file afero.File
}

func newFileSource(name string, file afero.File) *fileSource {
	return &fileSource{
		lineReader: newLineReader(file),
		name:       name,
		file:       file,
	}
}

func (s *fileSource) Name() string { return s.name }

func (s *fileSource) ReadLine() (string, error) { return s.readLine() }

func (s *fileSource) Close() error { return s.file.Close() }

// stdinSource reads lines from the process's standard input.
//
// Close is a no-op: stdin belongs to the process. A drained source reports
// io.EOF without touching stdin; it stands in for every "-" after the first.
type stdinSource struct {
	lineReader
	drained bool
}

func newStdinSource(stdin io.Reader) *stdinSource {
	return &stdinSource{lineReader: newLineReader(stdin)}
}

func (s *stdinSource) Name() string { return model.StdinName }

func (s *stdinSource) ReadLine() (string, error) {
	if s.drained {
		return "", io.EOF
	}
	return s.readLine()
}

func (s *stdinSource) Close() error { return nil }

var (
	_ Source = (*fileSource)(nil)
	_ Source = (*stdinSource)(nil)

	_ bufferedSource = (*fileSource)(nil)
	_ bufferedSource = (*stdinSource)(nil)
)
