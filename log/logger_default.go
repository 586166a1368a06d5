package log

import (
	"io"
	"os"
)

var defaultLogger *Logger

// Make sure default logger instantiated by default.
func init() {
	defaultLogger = New(os.Stdout)
	defaultLogger.SetError(true)
}

// Verbosity selects which levels the default logger emits.
type Verbosity struct {
	Info  bool
	Warn  bool
	Error bool
	Debug bool
}

// InitDefault creates the default logger for package-level logging access.
func InitDefault(output io.Writer, v Verbosity) {
	defaultLogger = New(output)

	if v.Debug {
		defaultLogger.SetDebug(true)
		defaultLogger.SetWarn(true)
		defaultLogger.SetError(true)
		defaultLogger.SetInfo(true)
		return
	}

	defaultLogger.SetInfo(v.Info)
	defaultLogger.SetWarn(v.Warn)
	defaultLogger.SetError(v.Error)
}

// Info logs an info-level message using the default logger.
func Info(a ...interface{}) {
	defaultLogger.Info(a...)
}

// Infof logs an info-level formatted message using the default logger.
func Infof(format string, a ...interface{}) {
	defaultLogger.Infof(format, a...)
}

// Warn logs a warning-level message using the default logger.
func Warn(a ...interface{}) {
	defaultLogger.Warn(a...)
}

// Warnf logs a warning-level formatted message using the default logger.
func Warnf(format string, a ...interface{}) {
	defaultLogger.Warnf(format, a...)
}

// Error logs an error using the default logger.
func Error(err error) {
	defaultLogger.Error(err)
}

// Errorf logs an error-level formatted message using the default logger.
func Errorf(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
}

// Debug logs a debug-level message using the default logger.
func Debug(a ...interface{}) {
	defaultLogger.Debug(a...)
}

// Debugf logs a debug-level formatted message using the default logger.
func Debugf(format string, a ...interface{}) {
	defaultLogger.Debugf(format, a...)
}
