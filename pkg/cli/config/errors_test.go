package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/safework-lab/jhaboard/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrConfigNotFound can be identified",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrConfigNotFound,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidConfig can be identified",
			err:           goerr.Wrap(config.ErrInvalidConfig, "validation failed"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     true,
		},
		{
			name:          "ErrWorkbookNotFound can be identified",
			err:           goerr.Wrap(config.ErrWorkbookNotFound, "no spreadsheet"),
			sentinelError: config.ErrWorkbookNotFound,
			wantMatch:     true,
		},
		{
			name:          "ErrDuplicatePattern can be identified",
			err:           goerr.Wrap(config.ErrDuplicatePattern, "found duplicate"),
			sentinelError: config.ErrDuplicatePattern,
			wantMatch:     true,
		},
		{
			name:          "ErrEmptyPattern can be identified",
			err:           goerr.Wrap(config.ErrEmptyPattern, "blank pattern"),
			sentinelError: config.ErrEmptyPattern,
			wantMatch:     true,
		},
		{
			name:          "ErrDuplicateRisk can be identified",
			err:           goerr.Wrap(config.ErrDuplicateRisk, "found duplicate"),
			sentinelError: config.ErrDuplicateRisk,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidRowCap can be identified",
			err:           goerr.Wrap(config.ErrInvalidRowCap, "bad cap"),
			sentinelError: config.ErrInvalidRowCap,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidCrossTab can be identified",
			err:           goerr.Wrap(config.ErrInvalidCrossTab, "bad cap"),
			sentinelError: config.ErrInvalidCrossTab,
			wantMatch:     true,
		},
		{
			name:          "Different sentinel errors do not match",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := errors.Is(tt.err, tt.sentinelError)
			gt.Value(t, matched).Equal(tt.wantMatch)
		})
	}
}

func TestConfigErrors_ContextKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{
			name:  "ConfigPathKey is string",
			key:   config.ConfigPathKey,
			value: "/path/to/config.toml",
		},
		{
			name:  "PatternKey is string",
			key:   config.PatternKey,
			value: "division",
		},
		{
			name:  "RiskLevelKey is string",
			key:   config.RiskLevelKey,
			value: "High",
		},
		{
			name:  "SectionKey is string",
			key:   config.SectionKey,
			value: "columns",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Test that keys can be used with goerr.V()
			err := goerr.Wrap(config.ErrInvalidConfig, "test error", goerr.V(tt.key, tt.value))
			gt.Value(t, err).NotNil().Required()

			// Verify error contains the key-value pair
			errStr := err.Error()
			gt.String(t, errStr).NotEqual("")
		})
	}
}

func TestConfigErrors_AllSentinelErrorsAreDefined(t *testing.T) {
	// Verify all sentinel errors are non-nil and have messages
	sentinelErrors := []struct {
		name string
		err  error
	}{
		{"ErrConfigNotFound", config.ErrConfigNotFound},
		{"ErrInvalidConfig", config.ErrInvalidConfig},
		{"ErrWorkbookNotFound", config.ErrWorkbookNotFound},
		{"ErrDuplicatePattern", config.ErrDuplicatePattern},
		{"ErrEmptyPattern", config.ErrEmptyPattern},
		{"ErrDuplicateRisk", config.ErrDuplicateRisk},
		{"ErrInvalidRowCap", config.ErrInvalidRowCap},
		{"ErrInvalidCrossTab", config.ErrInvalidCrossTab},
	}

	for _, se := range sentinelErrors {
		t.Run(se.name, func(t *testing.T) {
			gt.Value(t, se.err).NotNil()
			gt.String(t, se.err.Error()).NotEqual("")
		})
	}
}
