// Package logger configures the go-logging backend shared by Enumname
// packages.
package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Module is the go-logging module name of Enumname.
const Module = "enumname"

var log = logging.MustGetLogger(Module)

// go-logging passes every record by default. Libraries such as the analyzer
// stay quiet unless a command raises the level.
func init() { Init(logging.WARNING) }

const format = `%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}`

// Init installs a stderr backend which passes records at or above level.
func Init(level logging.Level) {
	InitWriter(os.Stderr, level)
}

// InitWriter is like [Init] but writes to w.
func InitWriter(w io.Writer, level logging.Level) {
	backend := logging.NewLogBackend(w, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	backendLeveled := logging.AddModuleLevel(formatter)
	backendLeveled.SetLevel(level, Module)
	logging.SetBackend(backendLeveled)
}

// GetLogger returns the logger of Enumname.
func GetLogger() *logging.Logger {
	return log
}

// ParseLevel parses a level name such as "debug" or "WARNING".
func ParseLevel(name string) (logging.Level, error) {
	return logging.LogLevel(name)
}
