package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/triage/schema"
)

// Default values for configuration.
const (
	DefaultSeed        = 3407
	DefaultTrainFrac   = 0.80
	DefaultValidFrac   = 0.10
	DefaultMaxK        = 10
	MaxSupportedK      = 100
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 3
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for all commands.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath     string
	PredictionsPath string

	OutDir           string
	Encoding         string
	Seed             int64
	TrainFrac        float64
	ValidFrac        float64
	TargetExact      int
	AllowBelowTarget bool

	StartTime time.Time
	EndTime   time.Time

	MaxK   int
	Format schema.PredictionsFormat

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	ResultsBackend   schema.DatabaseBackend
	ResultsDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	PathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Start            string  `mapstructure:"start"`
	End              string  `mapstructure:"end"`
	Limit            int     `mapstructure:"limit"`
	Precision        int     `mapstructure:"precision"`
	Output           string  `mapstructure:"output"`
	OutputFile       string  `mapstructure:"output-file"`
	Width            int     `mapstructure:"width"`
	Color            string  `mapstructure:"color"`
	ResultsBackend   string  `mapstructure:"results-backend"`
	ResultsDBConnect string  `mapstructure:"results-db-connect"`

	// --- Fields from prepareCmd.Flags() ---
	OutDir           string  `mapstructure:"out-dir"`
	Encoding         string  `mapstructure:"encoding"`
	Seed             int64   `mapstructure:"seed"`
	TrainFrac        float64 `mapstructure:"train-frac"`
	ValidFrac        float64 `mapstructure:"valid-frac"`
	TargetExact      int     `mapstructure:"target-exact"`
	AllowBelowTarget bool    `mapstructure:"allow-below-target"`

	// --- Fields from evaluateCmd.Flags() ---
	MaxK   int    `mapstructure:"max-k"`
	Format string `mapstructure:"format"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input); err != nil {
		return err
	}
	if err := processSplitInputs(cfg, input); err != nil {
		return err
	}
	if err := processEvaluateInputs(cfg, input); err != nil {
		return err
	}
	cfg.DatasetPath = input.PathStr
	cfg.PredictionsPath = input.PathStr
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("results-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("results-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates fields shared by all commands.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 2 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 2 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 3. Backend Validation ---
	cfg.ResultsBackend = schema.DatabaseBackend(strings.ToLower(input.ResultsBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.ResultsBackend]; !ok {
		return fmt.Errorf("invalid results backend '%s'. must be sqlite, mysql, postgresql, none", input.ResultsBackend)
	}
	cfg.ResultsDBConnect = input.ResultsDBConnect
	if err := ValidateDatabaseConnectionString(cfg.ResultsBackend, cfg.ResultsDBConnect); err != nil {
		return err
	}

	return nil
}

// processTimeRange handles the date parsing and time range validation.
// Dates accept plain YYYY-MM-DD day bounds (inclusive on both ends) or a
// full ISO8601 timestamp.
func processTimeRange(cfg *Config, input *ConfigRawInput) error {
	cfg.StartTime = time.Time{}
	cfg.EndTime = time.Time{}

	if input.Start != "" {
		t, err := ParseDateBound(input.Start, false)
		if err != nil {
			return fmt.Errorf("invalid start date format for '%s'. Expected YYYY-MM-DD or ISO8601: %w", input.Start, err)
		}
		cfg.StartTime = t
	}

	if input.End != "" {
		t, err := ParseDateBound(input.End, true)
		if err != nil {
			return fmt.Errorf("invalid end date format for '%s'. Expected YYYY-MM-DD or ISO8601: %w", input.End, err)
		}
		cfg.EndTime = t
	}

	if !cfg.StartTime.IsZero() && !cfg.EndTime.IsZero() && cfg.StartTime.After(cfg.EndTime) {
		return fmt.Errorf("start time (%s) cannot be after end time (%s)",
			cfg.StartTime.Format(DateTimeFormat), cfg.EndTime.Format(DateTimeFormat))
	}

	return nil
}

// processSplitInputs validates the prepare command's split parameters.
func processSplitInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutDir = strings.TrimSpace(input.OutDir)
	if cfg.OutDir != "" {
		cfg.OutDir = filepath.Clean(cfg.OutDir)
	}

	cfg.Encoding = strings.ToLower(strings.TrimSpace(input.Encoding))
	if cfg.Encoding == "" {
		cfg.Encoding = "auto"
	}
	if cfg.Encoding != "auto" && cfg.Encoding != "utf-8" && cfg.Encoding != "latin-1" {
		return fmt.Errorf("invalid encoding '%s'. must be auto, utf-8 or latin-1", input.Encoding)
	}

	cfg.Seed = input.Seed

	if input.TrainFrac <= 0 || input.TrainFrac >= 1 {
		return fmt.Errorf("train-frac must be between 0 and 1 exclusive (received %.2f)", input.TrainFrac)
	}
	if input.ValidFrac < 0 || input.ValidFrac >= 1 {
		return fmt.Errorf("valid-frac must be between 0 and 1 (received %.2f)", input.ValidFrac)
	}
	if input.TrainFrac+input.ValidFrac >= 1 {
		return fmt.Errorf("train-frac + valid-frac must leave room for a test split (received %.2f)", input.TrainFrac+input.ValidFrac)
	}
	cfg.TrainFrac = input.TrainFrac
	cfg.ValidFrac = input.ValidFrac

	if input.TargetExact < 0 {
		return fmt.Errorf("target-exact cannot be negative (received %d)", input.TargetExact)
	}
	cfg.TargetExact = input.TargetExact
	cfg.AllowBelowTarget = input.AllowBelowTarget

	return nil
}

// processEvaluateInputs validates the evaluate command's parameters.
func processEvaluateInputs(cfg *Config, input *ConfigRawInput) error {
	if input.MaxK < 1 || input.MaxK > MaxSupportedK {
		return fmt.Errorf("max-k must be between 1 and %d (received %d)", MaxSupportedK, input.MaxK)
	}
	cfg.MaxK = input.MaxK

	cfg.Format = schema.PredictionsFormat(strings.ToLower(input.Format))
	if _, ok := schema.ValidPredictionsFormats[cfg.Format]; !ok {
		return fmt.Errorf("invalid predictions format '%s'. must be auto, csv, jsonl, parquet", input.Format)
	}

	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
