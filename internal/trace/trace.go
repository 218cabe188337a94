// Package trace provides an optional rotating diagnostic log of
// top-level form evaluation, the logging leg of twig's ambient stack.
//
// Wraps gopkg.in/natefinch/lumberjack.v2 for size-based log rotation: a
// --trace-file flag that, when set, appends one line per top-level form
// the evaluator processes. Without the flag, Session is a no-op and
// costs nothing.
package trace

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Session is a handle to an optional trace log destination.
type Session struct {
	writer  io.Writer
	closer  io.Closer
	enabled bool
}

// Noop returns a Session whose Emit calls do nothing, used when no
// --trace-file flag was given.
func Noop() *Session {
	return &Session{enabled: false}
}

// Open starts a rotating trace log at path: 10MB per file, 5 backups,
// no age limit, no compression (diagnostics are short-lived and local).
func Open(path string) (*Session, error) {
	logger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 5,
		Compress:   false,
	}
	return &Session{writer: logger, closer: logger, enabled: true}, nil
}

// Emit writes one trace line: call depth, elapsed duration, and the
// rendered form. A no-op Session drops the line.
func (s *Session) Emit(depth int, form string, elapsed time.Duration) {
	if s == nil || !s.enabled {
		return
	}
	fmt.Fprintf(s.writer, "depth=%d elapsed=%s form=%s\n", depth, elapsed, form)
}

// Close releases the underlying log file, if any.
func (s *Session) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
