// Package logging provides categorized file-based debug logging for growdash.
// Logs are written under the configured log directory with one file per
// category and day. When debug mode is off every call is a silent no-op, so
// the analysis path never pays for logging in a normal session.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, config resolution
	CategoryDataset Category = "dataset" // File discovery and loading
	CategoryMerge   Category = "merge"   // School join
	CategoryOptimum Category = "optimum" // Group/mean/argmax extraction
	CategoryExport  Category = "export"  // XLSX/CSV/PNG artifact writing
	CategoryUI      Category = "ui"      // Dashboard interactions
)

// Log levels.
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Logger wraps a standard logger with a category and a backing file.
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu       sync.RWMutex
	loggers  = make(map[Category]*Logger)
	logsDir  string
	enabled  bool
	logLevel = LevelInfo
)

// Initialize sets up the logging directory. With debug false the package
// stays a no-op and no directory is created.
func Initialize(dir string, debug bool, level string) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = debug
	logLevel = parseLevel(level)
	if !enabled {
		return nil
	}
	if dir == "" {
		return fmt.Errorf("log directory required when debug logging is enabled")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logsDir = dir
	return nil
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Get returns (or creates) the logger for a category. Returns a no-op logger
// when debug mode is disabled or the log file cannot be opened.
func Get(category Category) *Logger {
	mu.RLock()
	if !enabled || logsDir == "" {
		mu.RUnlock()
		return &Logger{category: category}
	}
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	path := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", date, category))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] could not open %s: %v\n", path, err)
		return &Logger{category: category}
	}
	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error. Always written when a backing file exists.
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files. Call at shutdown.
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()
	for _, l := range loggers {
		if l.file != nil {
			_ = l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// RunLogger prefixes every message with a run correlation ID so that one
// recomputation pass can be followed across categories.
type RunLogger struct {
	logger *Logger
	runID  string
}

// WithRunID creates a run-scoped logger for the category.
func WithRunID(category Category, runID string) *RunLogger {
	return &RunLogger{logger: Get(category), runID: runID}
}

func (r *RunLogger) Debug(format string, args ...interface{}) {
	r.logger.Debug("[run:%s] %s", r.runID, fmt.Sprintf(format, args...))
}

func (r *RunLogger) Info(format string, args ...interface{}) {
	r.logger.Info("[run:%s] %s", r.runID, fmt.Sprintf(format, args...))
}

func (r *RunLogger) Error(format string, args ...interface{}) {
	r.logger.Error("[run:%s] %s", r.runID, fmt.Sprintf(format, args...))
}

// Timer measures an operation and logs the duration at debug level.
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation.
func StartTimer(category Category, operation string) *Timer {
	return &Timer{category: category, op: operation, start: time.Now()}
}

// Stop ends the timer and logs the duration.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debug("%s completed in %v", t.op, elapsed)
	return elapsed
}

// Convenience helpers for the common categories.

func Dataset(format string, args ...interface{}) { Get(CategoryDataset).Info(format, args...) }

func DatasetDebug(format string, args ...interface{}) { Get(CategoryDataset).Debug(format, args...) }

func Merge(format string, args ...interface{}) { Get(CategoryMerge).Info(format, args...) }

func Optimum(format string, args ...interface{}) { Get(CategoryOptimum).Info(format, args...) }

func Export(format string, args ...interface{}) { Get(CategoryExport).Info(format, args...) }

func UI(format string, args ...interface{}) { Get(CategoryUI).Info(format, args...) }

func Boot(format string, args ...interface{}) { Get(CategoryBoot).Info(format, args...) }
