package source

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// StdinPath makes Load read from standard input.
const StdinPath = "-"

var ErrSourceTooLarge = errors.New("source: size limit exceeded")

// Loader reads program text for the interpreter.
type Loader struct {
	// MaxBytes bounds the accepted source size. Zero means unlimited.
	MaxBytes int64
	Stdin    io.Reader
}

// NewLoader returns a Loader reading stdin from os.Stdin.
func NewLoader(maxBytes int64) *Loader {
	return &Loader{MaxBytes: maxBytes, Stdin: os.Stdin}
}

// Load returns the full contents of path.
func (l *Loader) Load(path string) (string, error) {
	if path == "" {
		return "", errors.New("source: empty path")
	}

	if path == StdinPath {
		src, err := l.read(l.Stdin)
		return src, errors.Wrap(err, "source: read stdin")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "source: failed to open the file '%s'", path)
	}
	defer f.Close()

	src, err := l.read(f)
	return src, errors.Wrapf(err, "source: failed to read the file '%s'", path)
}

func (l *Loader) read(r io.Reader) (string, error) {
	if r == nil {
		return "", errors.New("no reader")
	}
	if l.MaxBytes <= 0 {
		data, err := io.ReadAll(r)
		return string(data), err
	}

	data, err := io.ReadAll(io.LimitReader(r, l.MaxBytes+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > l.MaxBytes {
		return "", ErrSourceTooLarge
	}
	return string(data), nil
}
