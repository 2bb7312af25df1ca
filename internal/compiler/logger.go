package compiler

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger reports pipeline stages when verbose output is requested. A
// disabled Logger formats nothing.
type Logger struct {
	enabled bool
	out     io.Writer
	now     func() time.Time
}

// NewLogger creates a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
		now:     time.Now,
	}
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Enabled returns whether the logger is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Log prints a formatted line.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[lexgen] "+format+"\n", args...)
	}
}

// Section prints a stage header.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[lexgen] === %s ===\n", name)
	}
}

// Stage prints the header for name and returns a func that logs how long
// the stage took. Call it once the stage's output exists.
func (l *Logger) Stage(name string) (done func()) {
	if !l.enabled {
		return func() {}
	}
	l.Section(name)
	start := l.now()
	return func() {
		l.Log("%s took %s", name, l.now().Sub(start))
	}
}

// Automaton logs the size of an automaton a stage produced.
func (l *Logger) Automaton(kind string, states, symbols, finals int) {
	l.Log("%s: %d states, %d symbols, %d final", kind, states, symbols, finals)
}
