package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "burrow.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      string
	logFile      *os.File
	logger       = newLogger(io.Discard)
)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.TraceLevel)
	return l
}

// Error writes err to the log file.
func Error(err error) {
	if err == nil {
		return
	}
	current().WithError(err).Error("error")
}

// Warn records a recoverable problem such as a malformed settings file.
func Warn(format string, args ...interface{}) {
	current().Warnf(format, args...)
}

// Info records a notable lifecycle event.
func Info(format string, args ...interface{}) {
	current().Infof(format, args...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	entry := current().WithField("event", event)
	if payload != nil {
		entry = entry.WithField("payload", payload)
	}
	entry.Trace(event)
}

// Configure points the log at path. Empty values fall back to the default
// file name in the working directory. Until Configure is called nothing is
// written.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogFile
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	logPath = path
	logger = newLogger(f)
}

// Path returns the active log file, or "" when logging is not configured.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close flushes and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logPath = ""
	logger = newLogger(io.Discard)
}

func current() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
