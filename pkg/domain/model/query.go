package model

import "strings"

// Query selects rows of one sheet. Empty selector fields match
// everything, mirroring the "All" choice in the dashboard dropdowns.
type Query struct {
	Division string `json:"division,omitempty"` // exact match on the division column
	Risk     string `json:"risk,omitempty"`     // exact match on the risk column
	Search   string `json:"search,omitempty"`   // case-insensitive substring over every cell
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"` // 0 means no limit
}

// IsZero reports whether the query has no selectors at all
func (q Query) IsZero() bool {
	return q.Division == "" && q.Risk == "" && q.Search == ""
}

// Matches reports whether the record satisfies every selector of the
// query. Pagination fields are ignored here.
func (q Query) Matches(rec *Record) bool {
	if q.Division != "" && string(rec.Division) != q.Division {
		return false
	}
	if q.Risk != "" && string(rec.Risk) != q.Risk {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		found := false
		for _, v := range rec.Values {
			if strings.Contains(strings.ToLower(v), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
