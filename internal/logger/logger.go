package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Options controls where and how verbosely the application logs
type Options struct {
	Level   string
	Path    string
	Console bool
	Writer  io.Writer
}

// New builds a timestamped zerolog logger. When Path is set, entries are also
// appended to that file; the returned closer releases it.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	var out io.Writer = os.Stdout
	if opts.Writer != nil {
		out = opts.Writer
	}
	if opts.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	var closer io.Closer = nopCloser{}
	if opts.Path != "" {
		file, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		out = zerolog.MultiLevelWriter(out, zerolog.SyncWriter(file))
		closer = file
	}

	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
