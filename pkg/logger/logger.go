package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

var (
	root         hclog.Logger
	currentLevel LogLevel
)

func init() {
	currentLevel = levelFromEnv()
	root = newRoot(os.Stdout)
}

func newRoot(output io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "proxy",
		Level:  toHclogLevel(currentLevel),
		Output: output,
	})
}

func levelFromEnv() LogLevel {
	switch strings.ToUpper(os.Getenv("PROXY_LOG_LEVEL")) {
	case "TRACE":
		return TRACE
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return DEBUG
	}
}

func toHclogLevel(lvl LogLevel) hclog.Level {
	switch lvl {
	case TRACE:
		return hclog.Trace
	case DEBUG:
		return hclog.Debug
	case INFO:
		return hclog.Info
	case WARN:
		return hclog.Warn
	default:
		return hclog.Error
	}
}

// SetOutput redirects all log output, including sub-loggers created afterwards.
func SetOutput(w io.Writer) {
	root = newRoot(w)
}

// SetLevel changes the current level of the root logger.
func SetLevel(lvl LogLevel) {
	currentLevel = lvl
	root.SetLevel(toHclogLevel(lvl))
}

// Named returns a sub-logger for injection into components such as frontends.
func Named(name string) hclog.Logger {
	return root.Named(name)
}

// Level check functions
func IsTraceEnabled() bool {
	return currentLevel <= TRACE
}

func IsDebugEnabled() bool {
	return currentLevel <= DEBUG
}

func IsInfoEnabled() bool {
	return currentLevel <= INFO
}

func IsWarnEnabled() bool {
	return currentLevel <= WARN
}

func IsErrorEnabled() bool {
	return currentLevel <= ERROR
}

func Tracef(format string, v ...interface{}) {
	if IsTraceEnabled() {
		root.Trace(fmt.Sprintf(format, v...))
	}
}

func Debugf(format string, v ...interface{}) {
	if IsDebugEnabled() {
		root.Debug(fmt.Sprintf(format, v...))
	}
}

func Debugln(msg string) {
	if IsDebugEnabled() {
		root.Debug(msg)
	}
}

func Infof(format string, v ...interface{}) {
	if IsInfoEnabled() {
		root.Info(fmt.Sprintf(format, v...))
	}
}

func Infoln(msg string) {
	if IsInfoEnabled() {
		root.Info(msg)
	}
}

func Warnf(format string, v ...interface{}) {
	if IsWarnEnabled() {
		root.Warn(fmt.Sprintf(format, v...))
	}
}

func Warnln(msg string) {
	if IsWarnEnabled() {
		root.Warn(msg)
	}
}

func Errorf(format string, v ...interface{}) {
	if IsErrorEnabled() {
		root.Error(fmt.Sprintf(format, v...))
	}
}

func Errorln(msg string) {
	if IsErrorEnabled() {
		root.Error(msg)
	}
}

// GetCurrentLevel returns the current log level
func GetCurrentLevel() LogLevel {
	return currentLevel
}
