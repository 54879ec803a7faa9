// Package logger provides verbose logging for sercha-sources.
// When verbose mode is enabled via the --verbose flag or the log.verbose
// setting, debug messages are printed to stderr so users can follow each
// storage transaction.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("INFO", "", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("WARN", "", format, args...)
}

// Logger is a component-scoped view of the package logger.
// The zero value logs without a component tag.
type Logger struct {
	component string
}

// With returns a Logger that tags every line with component.
func With(component string) Logger {
	return Logger{component: component}
}

// Debug prints a tagged message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) {
	write("DEBUG", l.component, format, args...)
}

// Info prints a tagged message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) {
	write("INFO", l.component, format, args...)
}

// Warn prints a tagged message if verbose mode is enabled.
func (l Logger) Warn(format string, args ...any) {
	write("WARN", l.component, format, args...)
}

func write(level, component, format string, args ...any) {
	// Writers such as bytes.Buffer are not safe for concurrent use.
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	if component != "" {
		fmt.Fprintf(output, "[%s] %s: "+format+"\n", append([]any{level, component}, args...)...)
		return
	}
	fmt.Fprintf(output, "[%s] "+format+"\n", append([]any{level}, args...)...)
}
