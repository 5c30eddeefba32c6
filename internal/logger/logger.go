package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFromConfig creates a stderr logger for a textual level such as "warn".
// Unknown levels fall back to info.
func NewFromConfig(level string) *Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return NewWithLevel(os.Stderr, lvl)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// DocumentLoaded logs a successfully fetched markdown document
func (l *Logger) DocumentLoaded(location string, length int) {
	l.Info("markdown loaded",
		"location", location,
		"length", length)
}

// MetadataExtracted logs the metadata derived from a document
func (l *Logger) MetadataExtracted(title, category, date string) {
	l.Debug("metadata extracted",
		"title", title,
		"category", category,
		"date", date)
}

// FragmentRendered logs the size of a generated HTML fragment
func (l *Logger) FragmentRendered(location string, length int) {
	l.Debug("html generated",
		"location", location,
		"length", length)
}

// ContentInserted logs a fragment written into the mount point
func (l *Logger) ContentInserted(selector string) {
	l.Info("content inserted",
		"mount", selector)
}

// RenderFailed logs a failed load-and-render run
func (l *Logger) RenderFailed(location string, err error) {
	l.Error("error loading and rendering blog",
		"location", location,
		"error", err)
}
