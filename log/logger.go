package log

import (
	"fmt"
	"io"
	"strings"
)

// Logger filters and prints messages to a destination
type Logger struct {
	output io.Writer
	info   bool
	warn   bool
	err    bool
	debug  bool
}

// New returns an instance of Logger writing to output with every level
// disabled
func New(output io.Writer) *Logger {
	return &Logger{output: output}
}

// SetInfo activates/deactivates info level
func (l *Logger) SetInfo(value bool) {
	l.info = value
}

// SetWarn activates/deactivates warn level
func (l *Logger) SetWarn(value bool) {
	l.warn = value
}

// SetError activates/deactivates error level
func (l *Logger) SetError(value bool) {
	l.err = value
}

// SetDebug activates/deactivates debug level
func (l *Logger) SetDebug(value bool) {
	l.debug = value
}

// Logf writes a formatted message to the output regardless of level
func (l *Logger) Logf(format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format = format + "\n"
	}
	fmt.Fprintf(l.output, format, a...)
}

// Log writes a message to the output regardless of level
func (l *Logger) Log(a ...interface{}) {
	fmt.Fprintln(l.output, a...)
}

func (l *Logger) logWithColor(color string, a ...interface{}) {
	msg := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	l.Log(color + msg + colorReset)
}

// Info writes the message when info level is active
func (l *Logger) Info(a ...interface{}) {
	if l.info {
		l.logWithColor(colorBlue, a...)
	}
}

// Infof writes the formatted message when info level is active
func (l *Logger) Infof(format string, a ...interface{}) {
	if l.info {
		l.Logf(colorBlue+format+colorReset, a...)
	}
}

// Warn writes the message when warn level is active
func (l *Logger) Warn(a ...interface{}) {
	if l.warn {
		l.logWithColor(colorYellow, a...)
	}
}

// Warnf writes the formatted message when warn level is active
func (l *Logger) Warnf(format string, a ...interface{}) {
	if l.warn {
		l.Logf(colorYellow+format+colorReset, a...)
	}
}

// Error writes the error message in red
func (l *Logger) Error(err error) {
	if l.err {
		l.logWithColor(colorRed, err.Error())
	}
}

// Errorf writes the formatted message in red
func (l *Logger) Errorf(format string, a ...interface{}) {
	if l.err {
		l.Logf(colorRed+format+colorReset, a...)
	}
}

// Debug writes the message when debug level is active
func (l *Logger) Debug(a ...interface{}) {
	if l.debug {
		l.logWithColor(colorCyan, a...)
	}
}

// Debugf writes the formatted message when debug level is active
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.debug {
		l.Logf(colorCyan+format+colorReset, a...)
	}
}
