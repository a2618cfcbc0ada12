package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
)

const (
	logDir      = "logs"
	logFileName = "fusion-field.log"
)

// SetupLogging routes the standard logger to logs/fusion-field.log when debug is set,
// otherwise discards it; the screen belongs to the renderer
// Returns the open file for the caller to close, nil when discarding
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("logging started")
	return f
}

// CrashReport prints a recovered panic and the current stack
// Raw-mode terminals need \r\n, so it is used throughout
func CrashReport(w io.Writer, r any) {
	fmt.Fprintf(w, "\r\n\x1b[31mFUSION-FIELD CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", debug.Stack())
}
