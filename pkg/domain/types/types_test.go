package types_test

import (
	"testing"

	"github.com/safework-lab/jhaboard/pkg/domain/types"
)

func TestColumnRole_IsValid(t *testing.T) {
	tests := []struct {
		name string
		role types.ColumnRole
		want bool
	}{
		{"division", types.ColumnRoleDivision, true},
		{"risk", types.ColumnRoleRisk, true},
		{"hazard", types.ColumnRoleHazard, true},
		{"control", types.ColumnRoleControl, true},
		{"other", types.ColumnRoleOther, true},
		{"empty", types.ColumnRole(""), false},
		{"unknown", types.ColumnRole("severity"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.want {
				t.Errorf("ColumnRole.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ExportFormat
		wantErr bool
	}{
		{"csv", "csv", types.ExportFormatCSV, false},
		{"xlsx", "xlsx", types.ExportFormatXLSX, false},
		{"pdf", "pdf", types.ExportFormatPDF, false},
		{"empty", "", "", true},
		{"uppercase", "CSV", "", true},
		{"legacy xls", "xls", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseExportFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseExportFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseExportFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExportFormat_Filename(t *testing.T) {
	tests := []struct {
		format types.ExportFormat
		want   string
	}{
		{types.ExportFormatCSV, "jha_filtered.csv"},
		{types.ExportFormatXLSX, "jha_filtered.xlsx"},
		{types.ExportFormatPDF, "jha_report.pdf"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.Filename(); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTheme_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		theme types.Theme
		want  types.Theme
	}{
		{"empty defaults to light", "", types.ThemeLight},
		{"light stays light", types.ThemeLight, types.ThemeLight},
		{"dark stays dark", types.ThemeDark, types.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.theme.Normalize(); got != tt.want {
				t.Errorf("Theme.Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTheme(t *testing.T) {
	if _, err := types.ParseTheme("solarized"); err == nil {
		t.Error("ParseTheme() expected error for unknown theme")
	}
	got, err := types.ParseTheme("dark")
	if err != nil {
		t.Fatalf("ParseTheme() unexpected error: %v", err)
	}
	if got != types.ThemeDark {
		t.Errorf("ParseTheme() = %v, want %v", got, types.ThemeDark)
	}
}
