package logging

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// NewLogger creates a new hclog logger with standard settings. A level
// of "json" or "json:<level>" selects JSON output, as does
// VGK_JSON_LOG=1; an empty level falls back to the environment via
// GetLogLevel.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	// Determine if JSON format should be used
	jsonFormat := os.Getenv("VGK_JSON_LOG") == "1"

	// Parse JSON format from the level string
	if strings.HasPrefix(level, "json") {
		jsonFormat = true
		parts := strings.Split(level, ":")
		if len(parts) > 1 {
			level = parts[1]
		} else {
			level = "info"
		}
	}

	if level == "" {
		level = GetLogLevel()
	}

	// Add prefix for non-JSON output
	if !jsonFormat {
		output = NewPrefixWriter(Prefix(), output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// NewCommandLogger builds the logger a command-line entry point hands
// to the rest of the run. Level resolution order: the explicit level
// (usually a --log-level flag), VGK_RUNNER_LOG_LEVEL, VGK_LOG_LEVEL,
// then "info". Output goes to stderr, or appends to the file named by
// VGK_LOG_PATH.
func NewCommandLogger(name, explicitLevel string) hclog.Logger {
	var logLevel string
	var logSource string

	if explicitLevel != "" {
		logLevel = explicitLevel
		logSource = "CLI --log-level"
	} else if envLevel := os.Getenv("VGK_RUNNER_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
		logSource = "VGK_RUNNER_LOG_LEVEL"
	} else if envLevel := os.Getenv("VGK_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
		logSource = "VGK_LOG_LEVEL"
	} else {
		logLevel = "info"
		logSource = "default"
	}

	var output io.Writer = os.Stderr

	// Support log file output
	if logPath := os.Getenv("VGK_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = file
		}
	}

	logger := NewLogger(name, logLevel, output)
	logger.Debug("Log level", "level", logLevel, "source", logSource)
	return logger
}

// Prefix returns the line prefix for non-JSON log output. Windows
// consoles still mangle emoji, so they get a plain ASCII tag.
func Prefix() string {
	if runtime.GOOS == "windows" {
		return "[VGK] "
	}
	return "🛩️ "
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv("VGK_LOG_LEVEL")
	if level == "" {
		level = "warn" // Default to warn for production safety
	}
	return level
}
