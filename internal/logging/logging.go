package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Logger is the observability collaborator injected into the vault service.
// Implementations must be safe for concurrent use.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

type zerologLogger struct {
	log zerolog.Logger
}

// NewFileLogger creates a Logger that appends structured records to the
// given file, creating parent directories as needed.
func NewFileLogger(path string) (Logger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log := zerolog.New(f).With().Timestamp().Logger()
	return &zerologLogger{log: log}, nil
}

func (l *zerologLogger) Info(msg string)  { l.log.Info().Msg(msg) }
func (l *zerologLogger) Warn(msg string)  { l.log.Warn().Msg(msg) }
func (l *zerologLogger) Error(msg string) { l.log.Error().Msg(msg) }

type nopLogger struct{}

// NewNopLogger creates a Logger that discards everything
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Info(msg string)  {}
func (nopLogger) Warn(msg string)  {}
func (nopLogger) Error(msg string) {}
