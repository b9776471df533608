package models

// Cell is one positional value in a statement row. Valid distinguishes a
// cell the source genuinely provided from one that was absent, which is not
// the same thing as an empty string.
type Cell struct {
	Value string
	Valid bool
}

// NullCell is the explicit "not provided" cell.
var NullCell = Cell{}

// NewCell wraps a provided value.
func NewCell(v string) Cell {
	return Cell{Value: v, Valid: true}
}

// String returns the cell's value, or "" when the cell was absent.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// Row is one structured statement entry: an ordered sequence of optional
// cells whose positions are meaningful per bank.
type Row []Cell

// Cell returns the cell at index i, or NullCell when the row is too short.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r) {
		return NullCell
	}
	return r[i]
}
