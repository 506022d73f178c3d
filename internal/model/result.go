package model

// ResultTable is the output of a single report: an ordered sequence of rows
// under labeled columns. Empty tables are valid results; reports never fail
// just because nothing matched.
//
// Design decision: Cells are pre-formatted strings rather than typed values
// because every writer (text, CSV, Markdown, JSON) renders cells as text and
// the formatting rules (two-decimal percentages, canonical kind spelling)
// belong to the report that computed the value, not to the writer.
type ResultTable struct {
	// Name is the report name that produced this table.
	Name string `json:"report"`

	// Columns holds the column labels in display order.
	Columns []string `json:"columns"`

	// Rows holds the result rows. Each row has len(Columns) cells.
	Rows [][]string `json:"rows"`
}

// NewResultTable creates an empty result table with the given column labels.
func NewResultTable(name string, columns ...string) *ResultTable {
	return &ResultTable{
		Name:    name,
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends one row of cells to the table.
func (t *ResultTable) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *ResultTable) Empty() bool {
	return len(t.Rows) == 0
}
