package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    50,
		MaxBackups: 3,
		Compress:   true,
	}
}

// Options represents options for logger.
type Options struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
	// Output overrides stdout as the console destination.
	Output io.Writer
}

// New returns a new instance of logger.
func New(opts Options) (*Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	// By default create console writer
	writers := []io.Writer{out}

	if opts.PrettyLogOutput {
		writers[0] = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Stamp}
	}

	if opts.LogFile != "" {
		writers = append(writers, newFileWriter(opts.LogFile))
	}

	level := zerolog.InfoLevel
	if opts.LogLevel != "" {
		parsed, err := zerolog.ParseLevel(opts.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}

		level = parsed
	}

	zeroLogger := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().
		Caller().
		Timestamp().
		Logger()

	return &Logger{&zeroLogger}, nil
}

// Nop returns a logger that drops everything.
func Nop() *Logger {
	zeroLogger := zerolog.Nop()
	return &Logger{&zeroLogger}
}
