package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/andrescamacho/lazysim/internal/application/common"
	"github.com/andrescamacho/lazysim/internal/infrastructure/config"
)

// Logger adapts a charmbracelet logger to common.ContainerLogger
type Logger struct {
	base   *log.Logger
	closer io.Closer
}

var _ common.ContainerLogger = (*Logger)(nil)

// New builds a logger from the logging section of the config
func New(cfg config.LoggingConfig) (*Logger, error) {
	var (
		out    io.Writer
		closer io.Closer
	)

	switch cfg.Output {
	case "stdout":
		out = os.Stdout
	case "", "stderr":
		out = os.Stderr
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	default:
		return nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	l, err := NewWithWriter(out, cfg)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	l.closer = closer
	return l, nil
}

// NewWithWriter builds a logger writing to w, ignoring cfg.Output
func NewWithWriter(w io.Writer, cfg config.LoggingConfig) (*Logger, error) {
	level := log.InfoLevel
	if cfg.Level != "" {
		parsed, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	base := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: cfg.IncludeTimestamp,
		ReportCaller:    cfg.IncludeCaller,
		Prefix:          "lazysim",
	})

	return &Logger{base: base}, nil
}

// Log implements common.ContainerLogger. Metadata keys are emitted in sorted order.
func (l *Logger) Log(level, message string, metadata map[string]interface{}) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	keyvals := make([]interface{}, 0, len(keys)*2)
	for _, k := range keys {
		keyvals = append(keyvals, k, metadata[k])
	}

	l.base.Log(toLevel(level), message, keyvals...)
}

// SetLevel changes the minimum level, e.g. for --verbose
func (l *Logger) SetLevel(level string) {
	l.base.SetLevel(toLevel(level))
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func toLevel(level string) log.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return log.DebugLevel
	case "WARN", "WARNING":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
