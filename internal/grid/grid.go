// Package grid holds the in-memory representation of a decoded spreadsheet.
package grid

import "github.com/kritsw/bankconv/internal/cellref"

// Grid is the 2-D string view of one sheet. Rows may be ragged; reads past a
// row or column end yield the empty string. A Grid is never mutated after
// decoding.
type Grid [][]string

// ValueAt returns the cell at the given column label and 1-based row.
// Out-of-range coordinates return "" — statements are ragged and partially
// populated by design, so this is not an error.
func (g Grid) ValueAt(column string, row int) string {
	return g.At(cellref.ColumnIndex(column), row-1)
}

// ValueAtRef returns the cell a parsed reference points at.
func (g Grid) ValueAtRef(ref cellref.Ref) string {
	return g.At(ref.ColumnIndex(), ref.RowIndex())
}

// At returns the cell at 0-based indices, or "" when out of range.
func (g Grid) At(colIndex, rowIndex int) string {
	if rowIndex < 0 || rowIndex >= len(g) {
		return ""
	}

	row := g[rowIndex]
	if colIndex < 0 || colIndex >= len(row) {
		return ""
	}

	return row[colIndex]
}

// Row returns the 0-based indexed row, or nil when out of range.
func (g Grid) Row(rowIndex int) []string {
	if rowIndex < 0 || rowIndex >= len(g) {
		return nil
	}

	return g[rowIndex]
}
