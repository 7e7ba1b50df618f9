// Package logging provides the diagnostic logging capability injected into the
// extraction pipeline. Components take a Logger and default to Nop, so tests
// can capture emitted events without console coupling.
package logging

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger receives tagged diagnostic events from matchers and extractors.
type Logger interface {
	Logf(tag, format string, args ...any)
}

type nop struct{}

func (nop) Logf(string, string, ...any) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nop{} }

type logrusLogger struct {
	l *logrus.Logger
}

// NewLogrus returns a Logger backed by logrus at the given level.
func NewLogrus(level logrus.Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	return &logrusLogger{l: l}
}

func (x *logrusLogger) Logf(tag, format string, args ...any) {
	x.l.WithField("tag", tag).Debugf(format, args...)
}

// Capture records events in memory for assertions in tests.
type Capture struct {
	mu      sync.Mutex
	Entries []string
}

func (c *Capture) Logf(tag, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Entries = append(c.Entries, fmt.Sprintf("[%s] ", tag)+fmt.Sprintf(format, args...))
}
