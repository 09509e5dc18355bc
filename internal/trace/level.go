package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota
	LevelError        // pass detail, kept in the ring and dumped on failure
	LevelPhase        // driver + file spans
	LevelDetail       // + pass spans
	LevelDebug        // + point events
)

func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPhase:
		return "phase"
	case LevelDetail:
		return "detail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "phase":
		return LevelPhase, nil
	case "detail":
		return LevelDetail, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
	}
}

// ShouldEmit reports whether an event of kind k at scope passes the level.
func (l Level) ShouldEmit(scope Scope, k Kind) bool {
	switch l {
	case LevelPhase:
		return k != KindPoint && scope <= ScopeFile
	case LevelError, LevelDetail:
		return k != KindPoint && scope <= ScopePass
	case LevelDebug:
		return true
	}
	return false
}
