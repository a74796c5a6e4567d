package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
)

// DefaultPath returns the log location used when --debug is given
// without a path.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "noticias", "debug.log")
}

// Enable turns on debug logging to the specified file, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	mu.Lock()
	if closer != nil {
		_ = closer.Close()
	}
	out, closer = f, f
	mu.Unlock()

	Log("debug logging enabled")
	return nil
}

// EnableWriter sends debug output to w. The caller owns w.
func EnableWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out, closer = w, nil
}

// Close stops debug logging and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = closer.Close()
	}
	out, closer = nil, nil
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("render")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start))
	}
}
