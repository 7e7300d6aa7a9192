package config

import (
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/safework-lab/jhaboard/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the application configuration file. Every
// section is optional; missing values fall back to the built-in
// defaults that match the original dashboard behavior.
type AppConfig struct {
	Dashboard DashboardSection `toml:"dashboard"`
	Columns   ColumnsSection   `toml:"columns"`
	Risk      RiskSection      `toml:"risk"`

	path string
}

// Flags returns CLI flags for app configuration
func (a *AppConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML application config",
			Sources:     cli.EnvVars("JHABOARD_CONFIG"),
			Destination: &a.path,
		},
	}
}

// Configure loads the TOML file when one was given and returns the
// dashboard config with defaults applied.
func (a *AppConfig) Configure() (*domainConfig.Dashboard, error) {
	if a.path == "" {
		return domainConfig.DefaultDashboard(), nil
	}

	loaded, err := LoadAppConfiguration(a.path)
	if err != nil {
		return nil, err
	}
	loaded.path = a.path
	*a = *loaded

	return a.ToDashboard(), nil
}

// DashboardSection configures presentation settings
type DashboardSection struct {
	Title       string `toml:"title"`
	PDFRowCap   int    `toml:"pdf_row_cap"`
	CrossTabCap int    `toml:"crosstab_cap"`
}

// Validate checks if the DashboardSection is valid
func (d *DashboardSection) Validate() error {
	if d.PDFRowCap < 0 {
		return goerr.Wrap(ErrInvalidRowCap, "pdf_row_cap", goerr.V("value", d.PDFRowCap))
	}
	if d.CrossTabCap < 0 {
		return goerr.Wrap(ErrInvalidCrossTab, "crosstab_cap", goerr.V("value", d.CrossTabCap))
	}
	return nil
}

// ColumnsSection configures the header substrings that map columns to
// their dashboard roles.
type ColumnsSection struct {
	Division []string `toml:"division"`
	Risk     []string `toml:"risk"`
	Hazard   []string `toml:"hazard"`
	Control  []string `toml:"control"`
}

// Validate checks if the ColumnsSection is valid
func (c *ColumnsSection) Validate() error {
	for _, patterns := range map[string][]string{
		"division": c.Division,
		"risk":     c.Risk,
		"hazard":   c.Hazard,
		"control":  c.Control,
	} {
		seen := make(map[string]bool)
		for _, p := range patterns {
			normalized := strings.ToLower(strings.TrimSpace(p))
			if normalized == "" {
				return goerr.Wrap(ErrEmptyPattern, "column pattern", goerr.V(PatternKey, p))
			}
			if seen[normalized] {
				return goerr.Wrap(ErrDuplicatePattern, "column pattern", goerr.V(PatternKey, p))
			}
			seen[normalized] = true
		}
	}
	return nil
}

// RiskSection configures the canonical risk level ordering used for
// dropdown and chart sorting.
type RiskSection struct {
	Order []string `toml:"order"`
}

// Validate checks if the RiskSection is valid
func (r *RiskSection) Validate() error {
	seen := make(map[string]bool)
	for _, level := range r.Order {
		normalized := strings.ToLower(strings.TrimSpace(level))
		if seen[normalized] {
			return goerr.Wrap(ErrDuplicateRisk, "risk order", goerr.V(RiskLevelKey, level))
		}
		seen[normalized] = true
	}
	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if err := a.Dashboard.Validate(); err != nil {
		return goerr.Wrap(err, "invalid dashboard section", goerr.V(SectionKey, "dashboard"))
	}
	if err := a.Columns.Validate(); err != nil {
		return goerr.Wrap(err, "invalid columns section", goerr.V(SectionKey, "columns"))
	}
	if err := a.Risk.Validate(); err != nil {
		return goerr.Wrap(err, "invalid risk section", goerr.V(SectionKey, "risk"))
	}
	return nil
}

// LoadAppConfiguration loads the application configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "config file", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &config, nil
}

// ToDashboard converts AppConfig to the domain dashboard config,
// filling unset values with the defaults.
func (a *AppConfig) ToDashboard() *domainConfig.Dashboard {
	dashboard := domainConfig.DefaultDashboard()

	if a.Dashboard.Title != "" {
		dashboard.Title = a.Dashboard.Title
	}
	if a.Dashboard.PDFRowCap > 0 {
		dashboard.PDFRowCap = a.Dashboard.PDFRowCap
	}
	if a.Dashboard.CrossTabCap > 0 {
		dashboard.CrossTabCap = a.Dashboard.CrossTabCap
	}

	if len(a.Columns.Division) > 0 {
		dashboard.Columns.Division = a.Columns.Division
	}
	if len(a.Columns.Risk) > 0 {
		dashboard.Columns.Risk = a.Columns.Risk
	}
	if len(a.Columns.Hazard) > 0 {
		dashboard.Columns.Hazard = a.Columns.Hazard
	}
	if len(a.Columns.Control) > 0 {
		dashboard.Columns.Control = a.Columns.Control
	}

	if len(a.Risk.Order) > 0 {
		dashboard.RiskOrder = a.Risk.Order
	}

	return dashboard
}
