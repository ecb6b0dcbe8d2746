package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// FileName is the diagnostics log created inside the logs directory.
const FileName = "hirekit.log"

// Logger writes JSON diagnostics to .hirekit/logs/hirekit.log so failures
// can be inspected after the terminal UI has closed.
type Logger struct {
	*log.Logger
	file *os.File
}

// New creates (or reuses) the log file inside logDir.
func New(logDir, level string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	logger := newLogger(f, level)
	return &Logger{Logger: logger, file: f}, nil
}

// Discard returns a logger that drops everything. Used when the log file
// cannot be opened and by tests.
func Discard() *Logger {
	return &Logger{Logger: newLogger(io.Discard, "error")}
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func newLogger(out io.Writer, level string) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a config value onto a logrus level, defaulting to info.
func ParseLevel(value string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
