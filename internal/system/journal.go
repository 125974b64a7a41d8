package system

import "fmt"

// Logger receives the human-readable messages produced while resolving a turn.
type Logger interface {
	Logf(format string, args ...any)
}

// Journal is a Logger that keeps every message in order.
type Journal struct {
	Messages []string
}

func (j *Journal) Logf(format string, args ...any) {
	j.Messages = append(j.Messages, fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) Logf(string, ...any) {}

// Discard drops every message.
var Discard Logger = nopLogger{}
