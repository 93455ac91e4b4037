package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/logger"
)

// EvaluatorMode selects where achieved values come from.
type EvaluatorMode string

const (
	EvaluatorAuto     EvaluatorMode = "auto"
	EvaluatorDVH      EvaluatorMode = "dvh"
	EvaluatorRecorded EvaluatorMode = "recorded"
)

// GoalErrorPolicy decides what a failing goal does to an export run.
type GoalErrorPolicy string

const (
	OnGoalErrorAbort GoalErrorPolicy = "abort"
	OnGoalErrorSkip  GoalErrorPolicy = "skip"
)

// Config holds all runtime settings.
type Config struct {
	DBPath      string
	ExportDir   string
	LogLevel    logger.LogLevel
	LogJSON     bool
	Evaluator   EvaluatorMode
	OnGoalError GoalErrorPolicy
}

// Default returns a Config rooted at the given home directory.
func Default(home string) Config {
	return Config{
		DBPath:      filepath.Join(home, ".goalaudit", "goalaudit.db"),
		ExportDir:   ".",
		LogLevel:    logger.InfoLevel,
		Evaluator:   EvaluatorAuto,
		OnGoalError: OnGoalErrorAbort,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values. Invalid values are errors rather than
// silently defaulted.
func Load() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return LoadFrom(home, os.Getenv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(home string, getenv func(string) string) (Config, error) {
	cfg := Default(home)

	if v := getenv("GOALAUDIT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("GOALAUDIT_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := getenv("GOALAUDIT_LOG_LEVEL"); v != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("GOALAUDIT_LOG_LEVEL: invalid value %q (expected debug, info, warn or error)", v)
		}
		cfg.LogLevel = lvl
	}
	if v := getenv("GOALAUDIT_LOG_JSON"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("GOALAUDIT_LOG_JSON: invalid value %q (expected true or false)", v)
		}
		cfg.LogJSON = b
	}
	if v := getenv("GOALAUDIT_EVALUATOR"); v != "" {
		switch m := EvaluatorMode(strings.ToLower(v)); m {
		case EvaluatorAuto, EvaluatorDVH, EvaluatorRecorded:
			cfg.Evaluator = m
		default:
			return Config{}, fmt.Errorf("GOALAUDIT_EVALUATOR: invalid value %q (expected auto, dvh or recorded)", v)
		}
	}
	if v := getenv("GOALAUDIT_ON_GOAL_ERROR"); v != "" {
		switch p := GoalErrorPolicy(strings.ToLower(v)); p {
		case OnGoalErrorAbort, OnGoalErrorSkip:
			cfg.OnGoalError = p
		default:
			return Config{}, fmt.Errorf("GOALAUDIT_ON_GOAL_ERROR: invalid value %q (expected abort or skip)", v)
		}
	}

	return cfg, nil
}

// LoggerConfig builds the logger settings for this configuration.
func (c Config) LoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	lc.Level = c.LogLevel
	lc.JSON = c.LogJSON
	return lc
}
