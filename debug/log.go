package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// File-backed category logger. A TUI owns the terminal, so diagnostics
// go to ~/.config/graphseq/debug.log instead of stderr. Disabled until
// Enable is called (main enables it when GRAPHSEQ_DEBUG is set).

var (
	mu       sync.Mutex
	file     *os.File
	enabled  bool
	counters = make(map[string]int)
)

// Enable starts debug logging to ~/.config/graphseq/debug.log.
func Enable() error {
	mu.Lock()
	defer mu.Unlock()

	if enabled {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".config", "graphseq")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	file = f
	enabled = true
	write("debug", "=== debug logging started ===")
	return nil
}

// Disable stops debug logging and closes the file.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	enabled = false
}

// Log writes one line tagged with a category.
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	write(category, fmt.Sprintf(format, args...))
}

// LogEvery writes only every n-th call per (category, format) pair. Use
// for per-tick noise.
func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	key := category + format
	counters[key]++
	if counters[key]%n != 0 {
		return
	}
	write(category, fmt.Sprintf(format, args...))
}

// write assumes mu is held.
func write(category, msg string) {
	if file == nil {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(file, "[%s] %-8s %s\n", ts, category, msg)
	file.Sync() // flush immediately so logs survive a crash
}
