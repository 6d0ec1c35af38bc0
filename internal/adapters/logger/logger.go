// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/jitsnap/internal/core/ports"
	"go.trai.ch/jitsnap/internal/ui/style"
)

// messager describes an error that can report its own message without the chain.
// zerr.Error provides it.
type messager interface {
	Message() string
}

// metadataCarrier describes an error that carries key-value metadata.
type metadataCarrier interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	level    *slog.LevelVar
	output   io.Writer
}

// New creates a new Logger instance writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{
		level:  &slog.LevelVar{},
		output: os.Stderr,
	}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild replaces the slog handler. Callers must hold l.mu or own l exclusively.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables or disables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Debug logs a debug message. It is dropped unless verbose output is enabled.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one level of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens an error chain into its messages.
// zerr wrappers contribute their own message, joined errors contribute each branch,
// and any other error contributes its full text and ends the chain.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	attach := func(md map[string]any) {
		if len(md) == 0 {
			return
		}
		if pending == nil {
			pending = make(map[string]any, len(md))
		}
		maps.Copy(pending, md)
	}

	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			if c, ok := current.(metadataCarrier); ok {
				attach(c.Metadata())
			}
			if msg := m.Message(); msg != "" {
				entries = append(entries, errorEntry{Message: msg, Metadata: pending})
				pending = nil
			}
			current = errors.Unwrap(current)
			continue
		}

		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			start := len(entries)
			for _, branch := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(branch)...)
			}
			if len(entries) > start && pending != nil {
				merged := maps.Clone(entries[start].Metadata)
				if merged == nil {
					merged = make(map[string]any, len(pending))
				}
				maps.Copy(merged, pending)
				entries[start].Metadata = merged
				pending = nil
			}
			break
		}

		entries = append(entries, errorEntry{Message: current.Error(), Metadata: pending})
		pending = nil
		break
	}

	if pending != nil && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = pending
		} else {
			maps.Copy(last.Metadata, pending)
		}
	}

	return entries
}

// formatErrorEntries renders entries as a main error followed by its causes.
func formatErrorEntries(entries []errorEntry) string {
	var formattedLines []string

	for i, entry := range entries {
		lines := strings.Split(entry.Message, "\n")
		lines[0] += formatMetadata(entry.Metadata)

		if i == 0 {
			formattedLines = append(formattedLines, "Error: "+lines[0])
			for _, line := range lines[1:] {
				formattedLines = append(formattedLines, "       "+line)
			}
			continue
		}

		if i == 1 {
			formattedLines = append(formattedLines, "", "  Caused by:")
		}
		formattedLines = append(formattedLines, "    "+style.Arrow+" "+lines[0])
		for _, line := range lines[1:] {
			formattedLines = append(formattedLines, "      "+line)
		}
	}

	return strings.Join(formattedLines, "\n")
}

func formatMetadata(md map[string]any) string {
	if len(md) == 0 {
		return ""
	}

	parts := make([]string, 0, len(md))
	for _, k := range slices.Sorted(maps.Keys(md)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, md[k]))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
