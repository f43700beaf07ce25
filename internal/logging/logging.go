// Package logging provides leveled, named loggers for the crewline CLI.
//
// A process-wide default level is set once at startup:
//
//	logging.Initialize("info")
//
// Individual components can be raised or lowered without touching the rest:
//
//	logging.Initialize("info", map[string]string{
//	    "crm.query": "debug",
//	    "crew.*":    "warn",
//	})
//
// Names are dotted component paths ("crm.query", "mcp.metrics"). A trailing
// ".*" in an override matches every name under that prefix; exact names win
// over patterns, and the longest matching pattern wins.
//
// Loggers are immutable. With returns a copy carrying an extra key=value
// pair on every line, so a logger can be specialized per session or crew:
//
//	log := logging.GetLogger("crew.runner").With("crew", "crm")
//	log.Info("session started")
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level is a log severity. Messages below the effective level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelFatal {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel maps a level name ("debug", "INFO", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var (
	mu        sync.RWMutex
	baseLevel = LevelInfo
	overrides map[string]Level

	out     io.Writer = os.Stderr
	writeMu sync.Mutex

	// Swapped in tests for deterministic output and to observe Fatal.
	timeNow = time.Now
	exit    = os.Exit
)

// Initialize sets the process-wide default level and optional per-name
// overrides. Later calls replace earlier configuration entirely.
func Initialize(level string, perName ...map[string]string) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}

	named := make(map[string]Level)
	for _, m := range perName {
		for name, s := range m {
			lv, err := ParseLevel(s)
			if err != nil {
				return fmt.Errorf("override for %q: %w", name, err)
			}
			named[name] = lv
		}
	}

	mu.Lock()
	baseLevel = parsed
	overrides = named
	mu.Unlock()
	return nil
}

// GetLogger returns a logger writing under the given component name.
func GetLogger(name string) *Logger {
	return &Logger{name: name}
}

// levelFor resolves the effective level for a component name.
func levelFor(name string) Level {
	mu.RLock()
	defer mu.RUnlock()

	if lv, ok := overrides[name]; ok {
		return lv
	}

	var matched []string
	for pattern := range overrides {
		if covers(pattern, name) {
			matched = append(matched, pattern)
		}
	}
	if len(matched) > 0 {
		sort.Slice(matched, func(i, j int) bool { return len(matched[i]) > len(matched[j]) })
		return overrides[matched[0]]
	}
	return baseLevel
}

// covers reports whether a wildcard pattern like "crew.*" applies to name.
func covers(pattern, name string) bool {
	prefix, ok := strings.CutSuffix(pattern, ".*")
	if !ok {
		return false
	}
	return strings.HasPrefix(name, prefix+".")
}

type field struct {
	key   string
	value any
}

// Logger writes timestamped lines for one named component.
type Logger struct {
	name   string
	fields []field
}

// With returns a copy of the logger that appends key=value to every line.
func (l *Logger) With(key string, value any) *Logger {
	fields := make([]field, len(l.fields), len(l.fields)+1)
	copy(fields, l.fields)
	return &Logger{name: l.name, fields: append(fields, field{key, value})}
}

func (l *Logger) Debug(format string, args ...any) { l.emit(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.emit(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.emit(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.emit(LevelError, format, args...) }

// Fatal logs at FATAL and terminates the process with exit code 1.
func (l *Logger) Fatal(format string, args ...any) {
	l.emit(LevelFatal, format, args...)
	exit(1)
}

func (l *Logger) emit(level Level, format string, args ...any) {
	if level < levelFor(l.name) {
		return
	}

	var b strings.Builder
	b.WriteString(timeNow().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, " %-5s [%s] ", level, l.name)
	fmt.Fprintf(&b, format, args...)
	for _, f := range l.fields {
		fmt.Fprintf(&b, " %s=%v", f.key, f.value)
	}
	b.WriteByte('\n')

	writeMu.Lock()
	defer writeMu.Unlock()
	_, _ = io.WriteString(out, b.String())
}
