package model

// CategoryCount holds one label of a categorical aggregation and how
// many rows carry it.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CrossTab is a hazard-by-control contingency table.
type CrossTab struct {
	RowHeader string   `json:"row_header"` // hazard column header
	ColHeader string   `json:"col_header"` // control column header
	Rows      []string `json:"rows"`       // hazard values in display order
	Cols      []string `json:"cols"`       // control values in display order
	Counts    [][]int  `json:"counts"`     // Counts[i][j] = rows with Rows[i] and Cols[j]
}

// Total sums all cells of the table
func (c *CrossTab) Total() int {
	total := 0
	for _, row := range c.Counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}
