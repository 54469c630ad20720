// Package logger writes the dirshell debug log. Output goes to a file,
// never to the terminal, so it cannot interleave with command results.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is used when no log_path is configured.
const DefaultLogPath = "/tmp/dirshell-debug.log"

// sink is an open log file and the slog logger writing to it.
type sink struct {
	path string
	file *os.File
	log  *slog.Logger
}

var (
	mu    sync.Mutex
	level = new(slog.LevelVar)
	out   *sink
	// tried is set once a file has been opened or the open failed, so a
	// failing default path is not retried on every call.
	tried bool
)

// SetDebug switches between debug and info level output.
func SetDebug(enabled bool) {
	if enabled {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Init opens path for appending. Only the first call has an effect; later
// calls, and calls after the first log line opened DefaultLogPath, are
// ignored.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	if tried {
		return nil
	}
	tried = true
	return open(path)
}

// open must be called with mu held.
func open(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	out = &sink{
		path: path,
		file: f,
		log:  slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})),
	}
	out.log.Info("log opened", "path", path, "pid", os.Getpid())
	return nil
}

// current returns the active logger, opening DefaultLogPath on first use.
// It returns nil when no file could be opened or after Close.
// Must be called with mu held.
func current() *slog.Logger {
	if !tried {
		tried = true
		if err := open(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: debug log disabled: %v\n", err)
		}
	}
	if out == nil {
		return nil
	}
	return out.log
}

func write(lvl slog.Level, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	l := current()
	if l == nil || !l.Enabled(context.Background(), lvl) {
		return
	}
	l.Log(context.Background(), lvl, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...any) { write(slog.LevelDebug, format, args) }
func Info(format string, args ...any)  { write(slog.LevelInfo, format, args) }
func Warn(format string, args ...any)  { write(slog.LevelWarn, format, args) }
func Error(format string, args ...any) { write(slog.LevelError, format, args) }

// with returns a structured logger carrying attrs. The result is safe to
// use after Close; it then discards everything.
func with(attrs ...any) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := current()
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.With(attrs...)
}

// ComponentLogger returns a logger tagged with a component name.
func ComponentLogger(component string) *slog.Logger {
	return with("component", component)
}

// WithSession returns a logger tagged with a session ID.
func WithSession(sessionID string) *slog.Logger {
	return with("sessionID", sessionID)
}

// Close closes the log file. Logging after Close is a no-op.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

func closeLocked() {
	if out != nil {
		out.file.Close()
		out = nil
	}
}

// Remove deletes the log file at path, closing it first if it is the one
// being written. An empty path means DefaultLogPath. It reports whether a
// file was removed.
func Remove(path string) (bool, error) {
	if path == "" {
		path = DefaultLogPath
	}
	mu.Lock()
	defer mu.Unlock()
	if out != nil && out.path == path {
		closeLocked()
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// reset returns the package to its initial state. Tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	tried = false
	level.Set(slog.LevelInfo)
}
