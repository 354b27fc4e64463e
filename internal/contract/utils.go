package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/triage/schema"
)

// Color variables for console output.
var (
	StrongColor = color.New(color.FgGreen, color.Bold) // strongColor marks a reliable ranking.
	GoodColor   = color.New(color.FgCyan)              // goodColor marks a usable ranking.
	FairColor   = color.New(color.FgYellow)            // fairColor marks a marginal ranking.
	WeakColor   = color.New(color.FgRed, color.Bold)   // weakColor marks a ranking not worth trusting.
)

// GetColorLabel returns a colored quality label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(rate float64) string {
	text := schema.GetPlainLabel(rate)

	switch text {
	case "Strong":
		return StrongColor.Sprint(text)
	case "Good":
		return GoodColor.Sprint(text)
	case "Fair":
		return FairColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// Coalesce returns the first candidate that is non-empty after trimming.
// Tracker exports scatter the same logical field across update and original
// columns, so loaders fold them with this.
func Coalesce(candidates ...string) string {
	for _, c := range candidates {
		if s := strings.TrimSpace(c); s != "" {
			return s
		}
	}
	return ""
}

// TruncateText truncates a string to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for both the suffix and at least one
// character of content.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetResultsDBFilePath returns the path to the SQLite DB file for run tracking.
func GetResultsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".triage_runs.db"
	}
	return filepath.Join(homeDir, ".triage_runs.db")
}
