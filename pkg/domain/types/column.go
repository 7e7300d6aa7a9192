package types

// ColumnRole classifies what a sheet column is used for. Roles are
// detected from the header text; division and risk drive the dashboard
// filters, hazard and control feed the cross tabulation.
type ColumnRole string

const (
	ColumnRoleDivision ColumnRole = "division"
	ColumnRoleRisk     ColumnRole = "risk"
	ColumnRoleHazard   ColumnRole = "hazard"
	ColumnRoleControl  ColumnRole = "control"
	ColumnRoleOther    ColumnRole = "other"
)

// AllColumnRoles returns all valid column roles
func AllColumnRoles() []ColumnRole {
	return []ColumnRole{
		ColumnRoleDivision,
		ColumnRoleRisk,
		ColumnRoleHazard,
		ColumnRoleControl,
		ColumnRoleOther,
	}
}

// IsValid checks if the column role is valid
func (r ColumnRole) IsValid() bool {
	switch r {
	case ColumnRoleDivision,
		ColumnRoleRisk,
		ColumnRoleHazard,
		ColumnRoleControl,
		ColumnRoleOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the column role
func (r ColumnRole) String() string {
	return string(r)
}
