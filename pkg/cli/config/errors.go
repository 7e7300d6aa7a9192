package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound   = goerr.New("configuration file not found")
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrWorkbookNotFound = goerr.New("workbook not found")
	ErrDuplicatePattern = goerr.New("duplicate column pattern")
	ErrEmptyPattern     = goerr.New("column pattern cannot be empty")
	ErrDuplicateRisk    = goerr.New("duplicate risk level in order")
	ErrInvalidRowCap    = goerr.New("row cap must be positive")
	ErrInvalidCrossTab  = goerr.New("crosstab cap must be positive")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	PatternKey    = "pattern"
	RiskLevelKey  = "risk_level"
	SectionKey    = "section"
)
