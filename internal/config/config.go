// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that override config file values
const (
	EnvInput       = "AUTOGRADER_INPUT"
	EnvReport      = "AUTOGRADER_REPORT"
	EnvJSONReport  = "AUTOGRADER_JSON_REPORT"
	EnvCommentMode = "AUTOGRADER_COMMENT_MODE"
	EnvVerbose     = "AUTOGRADER_VERBOSE"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input      string `json:"input,omitempty" yaml:"input,omitempty"`                                      // Submission to grade
	Report     string `json:"report,omitempty" yaml:"report,omitempty" validate:"omitempty,nefield=Input"` // Markdown report destination
	JSONReport string `json:"json_report,omitempty" yaml:"json_report,omitempty" validate:"omitempty,nefield=Input,nefield=Report"`

	// Summary channel: name of the environment variable holding the CI summary file path
	SummaryEnv string `json:"summary_env,omitempty" yaml:"summary_env,omitempty"`

	// Behavior
	CommentMode string `json:"comment_mode,omitempty" yaml:"comment_mode,omitempty" validate:"omitempty,oneof=lexical token"`
	Verbose     bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the conventional CI layout: grade index.html, write report.md,
// append to the GitHub step summary when available.
func Defaults() Config {
	return Config{
		Input:       "index.html",
		Report:      "report.md",
		SummaryEnv:  "GITHUB_STEP_SUMMARY",
		CommentMode: "lexical",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv builds a Config from AUTOGRADER_* variables using getenv (usually os.Getenv)
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		Input:       getenv(EnvInput),
		Report:      getenv(EnvReport),
		JSONReport:  getenv(EnvJSONReport),
		CommentMode: getenv(EnvCommentMode),
	}
	if v, err := strconv.ParseBool(getenv(EnvVerbose)); err == nil {
		cfg.Verbose = v
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check that the input exists; a missing submission is a
// grading outcome, not a configuration error.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Refuse to write the report into a directory that does not exist
	if c.Report != "" {
		dir := filepath.Dir(c.Report)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: report directory not found: %s", dir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file and environment values under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.JSONReport == "" {
		result.JSONReport = defaults.JSONReport
	}
	if result.SummaryEnv == "" {
		result.SummaryEnv = defaults.SummaryEnv
	}
	if result.CommentMode == "" {
		result.CommentMode = defaults.CommentMode
	}

	// Bool fields: cannot distinguish unset from false, so a true anywhere wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
