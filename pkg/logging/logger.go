package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var defaultLevel = INFO

// SetLogLevel configures the default level from the PNDCP_LOG_LEVEL
// environment variable. Unset or unrecognized values keep INFO.
func SetLogLevel() {
	switch strings.ToUpper(os.Getenv("PNDCP_LOG_LEVEL")) {
	case "DEBUG":
		defaultLevel = DEBUG
	case "INFO":
		defaultLevel = INFO
	case "WARN":
		defaultLevel = WARN
	case "ERROR":
		defaultLevel = ERROR
	}
}

// DefaultLevel returns the process-wide level set by SetLogLevel
func DefaultLevel() LogLevel {
	return defaultLevel
}

// Logger provides structured logging capabilities
type Logger struct {
	level      LogLevel
	structured bool
	component  string
}

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Component string                 `json:"component,omitempty"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// NewLogger creates a new logger instance
func NewLogger(component string, level LogLevel, structured bool) *Logger {
	return &Logger{
		level:      level,
		structured: structured,
		component:  component,
	}
}

// NewComponentLogger creates a plain-text logger at the process-wide level
func NewComponentLogger(component string) *Logger {
	return NewLogger(component, defaultLevel, false)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...map[string]interface{}) {
	if l.level <= DEBUG {
		l.log(DEBUG, message, fields...)
	}
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...map[string]interface{}) {
	if l.level <= INFO {
		l.log(INFO, message, fields...)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...map[string]interface{}) {
	if l.level <= WARN {
		l.log(WARN, message, fields...)
	}
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...map[string]interface{}) {
	if l.level <= ERROR {
		l.log(ERROR, message, fields...)
	}
}

// log handles the actual logging
func (l *Logger) log(level LogLevel, message string, fields ...map[string]interface{}) {
	if l.structured {
		l.logStructured(level, message, fields...)
	} else {
		l.logPlain(level, message, fields...)
	}
}

// logStructured outputs JSON structured logs
func (l *Logger) logStructured(level LogLevel, message string, fields ...map[string]interface{}) {
	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Component: l.component,
		Message:   message,
	}

	if len(fields) > 0 {
		merged := make(map[string]interface{})
		for _, fieldMap := range fields {
			for k, v := range fieldMap {
				merged[k] = v
			}
		}
		entry.Fields = merged
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[%s] %s: %s (failed to marshal log entry: %v)", level, l.component, message, err)
		return
	}
	fmt.Fprintln(os.Stderr, string(data))
}

// logPlain outputs human-readable logs
func (l *Logger) logPlain(level LogLevel, message string, fields ...map[string]interface{}) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s: %s", level, l.component, message))

	for _, fieldMap := range fields {
		for k, v := range fieldMap {
			sb.WriteString(fmt.Sprintf(" %s=%v", k, v))
		}
	}

	log.Println(sb.String())
}
