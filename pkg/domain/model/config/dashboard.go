package config

import (
	"strings"

	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

// ColumnMatchers holds the header substrings that assign a role to a
// sheet column. Matching is case-insensitive; the first role whose
// patterns hit wins, in division, risk, hazard, control order.
type ColumnMatchers struct {
	Division []string
	Risk     []string
	Hazard   []string
	Control  []string
}

// DefaultColumnMatchers returns the built-in header patterns
func DefaultColumnMatchers() ColumnMatchers {
	return ColumnMatchers{
		Division: []string{"division"},
		Risk:     []string{"risk"},
		Hazard:   []string{"hazard"},
		Control:  []string{"control"},
	}
}

// Role detects the column role for a header
func (m ColumnMatchers) Role(header string) types.ColumnRole {
	h := strings.ToLower(header)
	match := func(patterns []string) bool {
		for _, p := range patterns {
			if p != "" && strings.Contains(h, strings.ToLower(p)) {
				return true
			}
		}
		return false
	}

	switch {
	case match(m.Division):
		return types.ColumnRoleDivision
	case match(m.Risk):
		return types.ColumnRoleRisk
	case match(m.Hazard):
		return types.ColumnRoleHazard
	case match(m.Control):
		return types.ColumnRoleControl
	default:
		return types.ColumnRoleOther
	}
}

// Dashboard holds all dashboard behavior configuration.
type Dashboard struct {
	Title       string
	Columns     ColumnMatchers
	RiskOrder   []string // canonical risk level ordering for dropdowns and legends
	PDFRowCap   int      // rows included in the PDF table section
	CrossTabCap int      // hazard axis cap of the cross tabulation
}

// Defaults mirror the original dashboard constants.
const (
	DefaultTitle       = "JHA Interactive"
	DefaultPDFRowCap   = 50
	DefaultCrossTabCap = 200
)

// DefaultDashboard returns the configuration used when no TOML file is given
func DefaultDashboard() *Dashboard {
	return &Dashboard{
		Title:       DefaultTitle,
		Columns:     DefaultColumnMatchers(),
		PDFRowCap:   DefaultPDFRowCap,
		CrossTabCap: DefaultCrossTabCap,
	}
}

// RiskRank returns the position of a risk level in the configured order,
// or len(RiskOrder) when the level is not listed. Unlisted levels sort
// after listed ones, lexicographically.
func (d *Dashboard) RiskRank(level string) int {
	for i, l := range d.RiskOrder {
		if strings.EqualFold(l, level) {
			return i
		}
	}
	return len(d.RiskOrder)
}
