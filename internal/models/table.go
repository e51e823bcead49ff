package models

// Table is the tabular structure handed to the host analytics runtime: an
// ordered column set plus string rows. Both successful results and the
// single-row diagnostic substitute use this shape.
type Table struct {
	Columns []string
	Rows    [][]string
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Cell returns the value of the named column in row i, or "" when the row or
// column does not exist.
func (t Table) Cell(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	for idx, name := range t.Columns {
		if name == column && idx < len(t.Rows[i]) {
			return t.Rows[i][idx]
		}
	}
	return ""
}
