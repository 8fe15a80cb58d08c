package devserver

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// LogLevel mirrors the teacher's request-logger log levels. RequestLogger
// only distinguishes Off, which silences the per-request line entirely;
// at every other level each request is logged.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelOff:
		return "off"
	default:
		return "info"
	}
}

// ParseLogLevel accepts the usual spellings (case-insensitive), falling
// back to Info for anything unrecognized, including an empty string.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	case "off", "none", "disabled":
		return LogLevelOff
	default:
		return LogLevelInfo
	}
}

// RequestLoggerConfig configures the single-line-per-request logger.
type RequestLoggerConfig struct {
	Level   LogLevel
	ShowIP  bool
	Colored bool
}

// DefaultRequestLoggerConfig reads NEXTVFS_LOG_LEVEL (falling back to
// "debug" when NEXTVFS_DEV or GO_ENV=development is set, "info"
// otherwise) and decides whether to colorize based on whether stdout is
// a terminal.
func DefaultRequestLoggerConfig() RequestLoggerConfig {
	level := os.Getenv("NEXTVFS_LOG_LEVEL")
	dev := os.Getenv("NEXTVFS_DEV") != "" || os.Getenv("GO_ENV") == "development"

	cfg := RequestLoggerConfig{
		Colored: isatty.IsTerminal(os.Stdout.Fd()),
	}
	if level != "" {
		cfg.Level = ParseLogLevel(level)
	} else if dev {
		cfg.Level = LogLevelDebug
	} else {
		cfg.Level = LogLevelInfo
	}
	return cfg
}

// RequestLogger prints one colorized line per request, in the same
// "method path -> status (kind, latency, sizeB)" shape the teacher's dev CLI output
// uses for build/watch status lines.
type RequestLogger struct {
	config RequestLoggerConfig
}

func NewRequestLogger(config RequestLoggerConfig) *RequestLogger {
	return &RequestLogger{config: config}
}

// Log prints a request summary; kind describes what the resolver found
// ("app", "pages", "api", "none").
func (l *RequestLogger) Log(r *http.Request, status int, size int, latency time.Duration, kind string) {
	if l.config.Level == LogLevelOff {
		return
	}

	statusColor := color.New(color.FgGreen)
	switch {
	case status >= 500:
		statusColor = color.New(color.FgRed)
	case status >= 400:
		statusColor = color.New(color.FgYellow)
	}

	line := fmt.Sprintf("%s %s -> %s (%s, %s, %dB)",
		r.Method, r.URL.Path, statusColor.Sprintf("%d", status), kind, latency.Round(time.Microsecond), size)

	if !l.config.Colored {
		line = fmt.Sprintf("%s %s -> %d (%s, %s, %dB)",
			r.Method, r.URL.Path, status, kind, latency.Round(time.Microsecond), size)
	}

	fmt.Println(line)
}
