// Package logger configures the process-wide go-logging backends: coloured
// console output and an optional daily-rotated log file.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	LOG_ROTATION_INTERVAL = 24 * time.Hour     // every day
	LOG_MAX_AGE           = 7 * 24 * time.Hour // every week
	LOG_FORMAT            = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{shortfile} %{message}"
	LOG_COLOR_FORMAT      = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{message}"
)

func leveled(w io.Writer, format string, level logging.Level) logging.LeveledBackend {
	b := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	b.SetLevel(level, "")

	return b
}

// InitConsoleLog sends every module's records at or above levelString to stderr.
// Standard output is left to puzzle answers.
func InitConsoleLog(levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "log level %q", levelString)
	}
	logging.SetBackend(leveled(os.Stderr, LOG_COLOR_FORMAT, level))

	return nil
}

// InitLog writes to stderr and to filePath, rotated daily and kept for a week.
// The newest file is reachable through filePath itself as a symlink.
func InitLog(filePath string, levelString string) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return errors.Wrapf(err, "log level %q", levelString)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return errors.Wrap(err, "create log directory")
	}
	ioWriter, err := rotatelogs.New(
		filePath+".%Y-%m-%d",
		rotatelogs.WithLinkName(filePath),
		rotatelogs.WithMaxAge(LOG_MAX_AGE),
		rotatelogs.WithRotationTime(LOG_ROTATION_INTERVAL),
	)
	if err != nil {
		return errors.Wrap(err, "open rotating log")
	}

	logging.SetBackend(
		leveled(os.Stderr, LOG_COLOR_FORMAT, level),
		leveled(ioWriter, LOG_FORMAT, level),
	)

	return nil
}
