package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/agenda/internal/constants"
)

var (
	// Logger is the global logger instance. Nil until Init or Use is called.
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug     bool
	ConfigDir string
}

// LogPath returns the rotating log file location for a config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", constants.AppName+".log")
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	logFile := LogPath(cfg.ConfigDir)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	// The TUI owns the terminal, so stderr only gets log lines in debug mode.
	var writer io.Writer = fileWriter
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Use(writer, level, cfg.Debug)
	return nil
}

// Use points the global logger at w. Tests use it to capture output.
func Use(w io.Writer, level log.Level, reportCaller bool) {
	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    reportCaller,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
