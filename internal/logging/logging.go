// Package logging implements leveled, structured logging for the
// generator, the samplers and the distgen command on top of go-kit/log.
// The backend follows the design of the oasis-core common/logging
// package.
//
// Loggers may be obtained at package initialization time, before the
// backend is configured. Until Initialize is called they discard all
// output; afterwards they write through the configured backend.
package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"
)

var (
	backend = newBackend()

	_ pflag.Value = (*Level)(nil)
	_ pflag.Value = (*Format)(nil)
)

// Format is a logging format.
type Format uint

const (
	// FmtLogfmt is the "logfmt" logging format.
	FmtLogfmt Format = iota
	// FmtJSON is the JSON logging format.
	FmtJSON
)

var formats = [...]struct {
	name      string
	newLogger func(io.Writer) log.Logger
}{
	FmtLogfmt: {"logfmt", log.NewLogfmtLogger},
	FmtJSON:   {"JSON", log.NewJSONLogger},
}

func (f *Format) String() string {
	if int(*f) >= len(formats) {
		return fmt.Sprintf("Format(%d)", uint(*f))
	}

	return formats[*f].name
}

// Set parses a format name, ignoring case.
func (f *Format) Set(s string) error {
	for i, fm := range formats {
		if strings.EqualFold(s, fm.name) {
			*f = Format(i)
			return nil
		}
	}

	return fmt.Errorf("logging: invalid log format: '%s'", s)
}

func (f *Format) Type() string {
	return "[logfmt,JSON]"
}

// Level is a log level.
type Level uint

const (
	// LevelDebug is the log level for debug messages.
	LevelDebug Level = iota
	// LevelInfo is the log level for informative messages.
	LevelInfo
	// LevelWarn is the log level for warning messages.
	LevelWarn
	// LevelError is the log level for error messages.
	LevelError
)

var levels = [...]struct {
	name  string
	allow func() level.Option
	with  func(log.Logger) log.Logger
}{
	LevelDebug: {"DEBUG", level.AllowDebug, level.Debug},
	LevelInfo:  {"INFO", level.AllowInfo, level.Info},
	LevelWarn:  {"WARN", level.AllowWarn, level.Warn},
	LevelError: {"ERROR", level.AllowError, level.Error},
}

func (l *Level) String() string {
	if int(*l) >= len(levels) {
		return fmt.Sprintf("Level(%d)", uint(*l))
	}

	return levels[*l].name
}

// Set parses a level name, ignoring case.
func (l *Level) Set(s string) error {
	for i, lv := range levels {
		if strings.EqualFold(s, lv.name) {
			*l = Level(i)
			return nil
		}
	}

	return fmt.Errorf("logging: invalid log level: '%s'", s)
}

func (l *Level) Type() string {
	return "[DEBUG,INFO,WARN,ERROR]"
}

func (l Level) valid() bool {
	return int(l) < len(levels)
}

// Logger writes leveled key/value records for one module.
type Logger struct {
	logger log.Logger
	level  Level
	module string
}

func (l *Logger) log(lvl Level, msg string, keyvals []interface{}) {
	if lvl < l.level {
		return
	}
	_ = levels[lvl].with(l.logger).Log(append([]interface{}{"msg", msg}, keyvals...)...)
}

// Debug logs the message and key value pairs at the Debug log level.
func (l *Logger) Debug(msg string, keyvals ...interface{}) { l.log(LevelDebug, msg, keyvals) }

// Info logs the message and key value pairs at the Info log level.
func (l *Logger) Info(msg string, keyvals ...interface{}) { l.log(LevelInfo, msg, keyvals) }

// Warn logs the message and key value pairs at the Warn log level.
func (l *Logger) Warn(msg string, keyvals ...interface{}) { l.log(LevelWarn, msg, keyvals) }

// Error logs the message and key value pairs at the Error log level.
func (l *Logger) Error(msg string, keyvals ...interface{}) { l.log(LevelError, msg, keyvals) }

// With returns a copy of the logger carrying keyvals on every record.
func (l *Logger) With(keyvals ...interface{}) *Logger {
	return &Logger{
		logger: log.With(l.logger, keyvals...),
		level:  l.level,
		module: l.module,
	}
}

// GetLogger returns the logger of module. It may be called before
// Initialize, typically to build a package level logger.
func GetLogger(module string) *Logger {
	return backend.getLogger(module)
}

// Initialize points every logger, including those obtained earlier,
// at w. moduleLvls overrides defaultLvl for modules by longest
// matching prefix. A nil w discards all output.
func Initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	if int(format) >= len(formats) {
		return fmt.Errorf("logging: unsupported log format: %v", uint(format))
	}
	if !defaultLvl.valid() {
		return fmt.Errorf("logging: unsupported log level: %v", uint(defaultLvl))
	}

	return backend.initialize(w, format, defaultLvl, moduleLvls)
}

type logBackend struct {
	sync.Mutex

	base         log.Logger
	pending      map[*Logger]*log.SwapLogger
	defaultLevel Level
	prefixes     []string
	moduleLevels map[string]Level

	initialized bool
}

func newBackend() *logBackend {
	return &logBackend{
		base:         log.NewNopLogger(),
		pending:      make(map[*Logger]*log.SwapLogger),
		defaultLevel: LevelError,
	}
}

func (b *logBackend) initialize(w io.Writer, format Format, defaultLvl Level, moduleLvls map[string]Level) error {
	b.Lock()
	defer b.Unlock()

	if b.initialized {
		return fmt.Errorf("logging: already initialized")
	}

	logger := b.base
	if w != nil {
		logger = formats[format].newLogger(log.NewSyncWriter(w))
	}
	logger = level.NewFilter(logger, levels[defaultLvl].allow())
	b.base = log.With(logger, "ts", log.DefaultTimestampUTC)

	b.defaultLevel = defaultLvl
	b.moduleLevels = moduleLvls
	b.prefixes = b.prefixes[:0]
	for prefix := range moduleLvls {
		b.prefixes = append(b.prefixes, prefix)
	}
	// Longest prefixes sort after their own prefixes; scan in reverse.
	sort.Sort(sort.Reverse(sort.StringSlice(b.prefixes)))
	b.initialized = true

	for l, swap := range b.pending {
		swap.Swap(b.base)
		l.level = b.levelLocked(l.module)
	}
	b.pending = make(map[*Logger]*log.SwapLogger)

	return nil
}

func (b *logBackend) levelLocked(module string) Level {
	for _, prefix := range b.prefixes {
		if strings.HasPrefix(module, prefix) {
			return b.moduleLevels[prefix]
		}
	}

	return b.defaultLevel
}

func (b *logBackend) getLogger(module string) *Logger {
	b.Lock()
	defer b.Unlock()

	var (
		sink = b.base
		swap *log.SwapLogger
	)
	if !b.initialized {
		swap = &log.SwapLogger{}
		sink = swap
	}

	keyvals := []interface{}{"caller", log.Caller(5)}
	if module != "" {
		keyvals = append([]interface{}{"module", module}, keyvals...)
	}
	l := &Logger{
		logger: log.WithPrefix(sink, keyvals...),
		level:  b.levelLocked(module),
		module: module,
	}
	if swap != nil {
		b.pending[l] = swap
	}

	return l
}

// reset returns the backend to its uninitialized state.
func (b *logBackend) reset() {
	fresh := newBackend()

	b.Lock()
	defer b.Unlock()
	b.base = fresh.base
	b.pending = fresh.pending
	b.defaultLevel = fresh.defaultLevel
	b.prefixes = nil
	b.moduleLevels = nil
	b.initialized = false
}
