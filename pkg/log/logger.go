package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, ordered from most to least verbose
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names
var ErrUnknownLevel = errors.New("log: unknown level")

var levels = []struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	current        = Notice
)

// Logger is the leveled logger handed to every package that reports progress.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New creates a logger tagged with a module name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levels[l].name
}

// ParseLevel maps a level name such as "info" to its Level
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l, entry := range levels {
		if entry.name == name {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Verbosity raises base to Info for -v and to Debug for -vv. Flags never
// make logging quieter than base.
func Verbosity(v, vv bool, base Level) Level {
	switch {
	case vv:
		return Debug
	case v:
		return min(base, Info)
	}
	return base
}

// SetSink redirects output, keeping the current level.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	leveledBackend = logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	logging.SetBackend(leveledBackend)
	SetLevel(current)
}

// SetLevel sets the verbosity of every module. Out of range levels are
// clamped.
func SetLevel(level Level) {
	current = max(Debug, min(level, Error))
	leveledBackend.SetLevel(levels[current].backend, "")
}

// CurrentLevel returns the active verbosity
func CurrentLevel() Level {
	return current
}

func init() {
	SetSink(os.Stdout)
}
