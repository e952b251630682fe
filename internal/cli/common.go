// Package cli holds the pieces shared by the lunatic subcommands: version
// reporting, logging and usage text.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Version information for the lunatic binary
var (
	Version   = "0.3.0"
	BuildDate = "2026-10-19"
	CommitSHA = "unknown" // set with -ldflags "-X"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version     string   `json:"version"`
	BuildDate   string   `json:"build_date"`
	CommitSHA   string   `json:"commit_sha"`
	GoVersion   string   `json:"go_version"`
	Platform    string   `json:"platform"`
	Arch        string   `json:"arch"`
	LuaVersions []string `json:"lua_versions"`
}

// GetVersionInfo returns structured version information
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:     Version,
		BuildDate:   BuildDate,
		CommitSHA:   CommitSHA,
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS,
		Arch:        runtime.GOARCH,
		LuaVersions: []string{"5.1", "5.2", "5.3", "5.4"},
	}
}

// PrintVersion writes version information in text or JSON form.
func PrintVersion(w io.Writer, toolName string, jsonOutput bool) error {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintf(w, "%s v%s\n", toolName, info.Version)
	fmt.Fprintf(w, "Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Fprintf(w, "Commit: %s\n", info.CommitSHA)
	}
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform: %s/%s\n", info.Platform, info.Arch)
	_, err := fmt.Fprintf(w, "Lua: %s\n", strings.Join(info.LuaVersions, ", "))
	return err
}

// Level orders log messages by importance.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel accepts debug, info, warn or error.
func ParseLevel(s string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	if strings.EqualFold(s, "warning") {
		return LevelWarn, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger provides levelled logging for the CLI. Output goes to a writer
// other than stdout so that command results stay machine readable.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level Level
	now   func() time.Time
}

// NewLogger creates a logger writing messages at level or above to out.
func NewLogger(out io.Writer, level Level) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, level: level, now: time.Now}
}

// NewLoggerFromFlags builds a logger the way the subcommands do: -debug
// wins over -v, which wins over the configured level.
func NewLoggerFromFlags(out io.Writer, configured string, verbose, debug bool) *Logger {
	level, err := ParseLevel(configured)
	if err != nil || configured == "" {
		level = LevelWarn
	}
	if verbose && level > LevelInfo {
		level = LevelInfo
	}
	if debug {
		level = LevelDebug
	}
	return NewLogger(out, level)
}

// Level returns the minimum level that is written.
func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "[%s] %s: %s\n", level, l.now().Format("15:04:05"), fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// CommandInfo represents information about a CLI command
type CommandInfo struct {
	Name        string
	Usage       string
	Description string
	Examples    []string
}

// PrintUsage prints a standardized usage message
func PrintUsage(w io.Writer, tool string, commands []CommandInfo) {
	fmt.Fprintf(w, "%s - Lua expression tools\n\n", tool)
	fmt.Fprintf(w, "USAGE:\n")
	fmt.Fprintf(w, "    %s <command> [OPTIONS]\n\n", tool)

	if len(commands) > 0 {
		fmt.Fprintf(w, "COMMANDS:\n")
		for _, cmd := range commands {
			fmt.Fprintf(w, "    %-10s %s\n", cmd.Name, cmd.Description)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "Use '%s <command> -h' for more information about a command.\n", tool)
}

// PrintCommandUsage prints usage for a specific command
func PrintCommandUsage(w io.Writer, tool string, cmd CommandInfo) {
	fmt.Fprintf(w, "%s %s - %s\n\n", tool, cmd.Name, cmd.Description)
	fmt.Fprintf(w, "USAGE:\n")
	fmt.Fprintf(w, "    %s\n\n", cmd.Usage)

	if len(cmd.Examples) > 0 {
		fmt.Fprintf(w, "EXAMPLES:\n")
		for _, example := range cmd.Examples {
			fmt.Fprintf(w, "    %s\n", example)
		}
		fmt.Fprintf(w, "\n")
	}
}

// ValidateArgs validates command line arguments
func ValidateArgs(args []string, minArgs int, usage string) error {
	if len(args) < minArgs {
		return fmt.Errorf("insufficient arguments\nUsage: %s", usage)
	}
	return nil
}
