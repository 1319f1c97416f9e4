// Package logger keeps the process-wide zerolog logger for pwdline.
//
// pwdline runs once per prompt, so the logger is set up and torn down on
// every invocation: Init opens today's log file and Close releases it.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/momorph/pwdline/internal/config"
	"github.com/rs/zerolog"
)

// keepDays is how long dated log files are kept.
const keepDays = 7

var (
	// Log is the global logger instance. It discards everything until Init
	// runs.
	Log = zerolog.Nop()

	logFile *os.File
)

// Init installs the logger for this invocation. Records go to a dated file
// under the xdg state directory; debug mode also writes them to stderr.
//
// When the log file cannot be opened, Init still installs a logger (stderr
// in debug mode, discarding otherwise) and returns the error, so callers
// can report it and carry on.
func Init(debug bool) error {
	Close()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	if debug {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	f, fileErr := openLogFile(time.Now())
	if fileErr == nil {
		logFile = f
		writers = append(writers, f)
	}

	if len(writers) == 0 {
		Log = zerolog.Nop()
	} else {
		Log = zerolog.New(io.MultiWriter(writers...)).With().
			Timestamp().
			Str("app", "pwdline").
			Logger()
	}

	if fileErr != nil {
		return fmt.Errorf("file logging disabled: %w", fileErr)
	}
	Log.Debug().Msg("Logger initialized")
	return nil
}

// Close releases the log file opened by Init. It is safe to call more than
// once.
func Close() {
	if logFile == nil {
		return
	}
	logFile.Close()
	logFile = nil
}

// SetLevel changes the global log level to level (debug, info, warn or
// error). An empty level keeps the current one.
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// logFileName returns the name of the log file for day.
func logFileName(day time.Time) string {
	return fmt.Sprintf("pwdline-%s.log", day.Format("2006-01-02"))
}

// openLogFile opens the log file for now, creating it if needed. The first
// invocation of a day also prunes files older than keepDays.
func openLogFile(now time.Time) (*os.File, error) {
	if err := config.EnsureLogsDir(); err != nil {
		return nil, err
	}
	logsDir := config.GetLogsDir()
	path := filepath.Join(logsDir, logFileName(now))

	_, statErr := os.Stat(path)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	if errors.Is(statErr, os.ErrNotExist) {
		pruneLogs(logsDir, now.AddDate(0, 0, -keepDays))
	}
	return f, nil
}

// pruneLogs removes pwdline log files in logsDir last written before cutoff.
func pruneLogs(logsDir string, cutoff time.Time) {
	entries, err := os.ReadDir(logsDir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "pwdline-") || filepath.Ext(name) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(logsDir, name))
		}
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Debug().Msg(format)
	} else {
		Log.Debug().Msgf(format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Info().Msg(format)
	} else {
		Log.Info().Msgf(format, args...)
	}
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Warn().Msg(format)
	} else {
		Log.Warn().Msgf(format, args...)
	}
}

// Error logs an error message
func Error(msg string, err error) {
	Log.Error().Err(err).Msg(msg)
}
