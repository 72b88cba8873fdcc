package logging

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type impl struct {
	name  string
	level AtomicLevel
	inUTC bool

	appenders []Appender
}

// exit ends the process after a Fatal entry is written.
var exit = os.Exit

// getCaller <- newEntry <- emit <- Info/Infof/... <- user code.
const skipToLogCaller = 4

func (imp *impl) AddAppender(appender Appender) {
	imp.appenders = append(imp.appenders, appender)
}

func (imp *impl) SetLevel(level Level) {
	imp.level.Set(level)
}

func (imp *impl) GetLevel() Level {
	return imp.level.Get()
}

// Sublogger returns a logger named "<name>.<subname>" that shares the appenders but starts with a
// copy of the level.
func (imp *impl) Sublogger(subname string) Logger {
	name := subname
	if imp.name != "" {
		name = imp.name + "." + subname
	}
	return &impl{
		name:      name,
		level:     NewAtomicLevelAt(imp.level.Get()),
		inUTC:     imp.inUTC,
		appenders: imp.appenders,
	}
}

func (imp *impl) Sync() error {
	var err error
	for _, appender := range imp.appenders {
		err = multierr.Append(err, appender.Sync())
	}
	return err
}

// AsZap builds a zap logger from NewZapLoggerConfig at GlobalLogLevel. Appenders that are full
// zap cores, like the test observer, are teed in so they see its output too.
func (imp *impl) AsZap() *zap.SugaredLogger {
	var cores []zapcore.Core
	for _, appender := range imp.appenders {
		if core, ok := appender.(zapcore.Core); ok {
			cores = append(cores, core)
		}
	}

	config := NewZapLoggerConfig()
	config.Level = GlobalLogLevel
	logger := zap.Must(config.Build())
	if len(cores) > 0 {
		logger = logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
			return zapcore.NewTee(append([]zapcore.Core{c}, cores...)...)
		}))
	}
	return logger.Sugar().Named(imp.name)
}

func (imp *impl) enabled(level Level) bool {
	return GlobalLogLevel.Level() == zapcore.DebugLevel || level >= imp.level.Get()
}

func (imp *impl) newEntry(level Level, msg string) zapcore.Entry {
	now := time.Now()
	if imp.inUTC {
		now = now.UTC()
	}
	return zapcore.Entry{
		Level:      level.AsZap(),
		Time:       now,
		LoggerName: imp.name,
		Message:    msg,
		Caller:     getCaller(),
	}
}

// emit writes an entry to every appender when the level is enabled or `force` is set. `msg` is
// only evaluated for entries that are written.
func (imp *impl) emit(level Level, force bool, msg func() string, keysAndValues ...interface{}) {
	if !force && !imp.enabled(level) {
		return
	}
	entry := imp.newEntry(level, msg())
	fields := toFields(keysAndValues)
	for _, appender := range imp.appenders {
		if err := appender.Write(entry, fields); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// toFields pairs up `keysAndValues` as key, value, key, value... Values are json serialized, so only
// public struct fields appear. A trailing key without a value is kept with an error in its place.
func toFields(keysAndValues []interface{}) []zapcore.Field {
	var fields []zapcore.Field
	for ; len(keysAndValues) > 0; keysAndValues = keysAndValues[min(2, len(keysAndValues)):] {
		key := fmt.Sprint(keysAndValues[0])
		if len(keysAndValues) == 1 {
			fields = append(fields, zap.Any(key, errors.New("unpaired log key")))
			break
		}
		fields = append(fields, zap.Any(key, keysAndValues[1]))
	}
	return fields
}

func sprint(args []interface{}) func() string {
	return func() string { return fmt.Sprint(args...) }
}

func sprintf(template string, args []interface{}) func() string {
	return func() string { return fmt.Sprintf(template, args...) }
}

func literal(msg string) func() string {
	return func() string { return msg }
}

func (imp *impl) Debug(args ...interface{}) { imp.emit(DEBUG, false, sprint(args)) }

func (imp *impl) Debugf(template string, args ...interface{}) {
	imp.emit(DEBUG, false, sprintf(template, args))
}

func (imp *impl) Debugw(msg string, keysAndValues ...interface{}) {
	imp.emit(DEBUG, false, literal(msg), keysAndValues...)
}

func (imp *impl) Info(args ...interface{}) { imp.emit(INFO, false, sprint(args)) }

func (imp *impl) Infof(template string, args ...interface{}) {
	imp.emit(INFO, false, sprintf(template, args))
}

func (imp *impl) Infow(msg string, keysAndValues ...interface{}) {
	imp.emit(INFO, false, literal(msg), keysAndValues...)
}

func (imp *impl) Warn(args ...interface{}) { imp.emit(WARN, false, sprint(args)) }

func (imp *impl) Warnf(template string, args ...interface{}) {
	imp.emit(WARN, false, sprintf(template, args))
}

func (imp *impl) Warnw(msg string, keysAndValues ...interface{}) {
	imp.emit(WARN, false, literal(msg), keysAndValues...)
}

func (imp *impl) Error(args ...interface{}) { imp.emit(ERROR, false, sprint(args)) }

func (imp *impl) Errorf(template string, args ...interface{}) {
	imp.emit(ERROR, false, sprintf(template, args))
}

func (imp *impl) Errorw(msg string, keysAndValues ...interface{}) {
	imp.emit(ERROR, false, literal(msg), keysAndValues...)
}

// The Fatal* methods log as errors regardless of level, then exit with status 1.
func (imp *impl) Fatal(args ...interface{}) {
	imp.emit(ERROR, true, sprint(args))
	exit(1)
}

func (imp *impl) Fatalf(template string, args ...interface{}) {
	imp.emit(ERROR, true, sprintf(template, args))
	exit(1)
}

func (imp *impl) Fatalw(msg string, keysAndValues ...interface{}) {
	imp.emit(ERROR, true, literal(msg), keysAndValues...)
	exit(1)
}

// Return example: "logging/impl_test.go:36".
func getCaller() zapcore.EntryCaller {
	pc, file, line, ok := runtime.Caller(skipToLogCaller)
	if !ok {
		return zapcore.EntryCaller{}
	}
	caller := zapcore.EntryCaller{Defined: true, PC: pc, File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		caller.Function = fn.Name()
	}
	return caller
}
