// Package statement rebuilds a normalized, date-grouped transaction ledger
// from a raw statement grid and a resolved field mapping, and serializes it
// into the fixed treasury import format.
package statement

import (
	"errors"
	"strings"

	"github.com/kritsw/bankconv/internal/cellref"
	"github.com/kritsw/bankconv/internal/grid"
	"github.com/kritsw/bankconv/internal/mapping"
	"github.com/kritsw/bankconv/internal/template"
)

// ErrNoHeaderDate is returned when the header-date field is not bound to a
// cell. Without it there is no way to locate the data region.
var ErrNoHeaderDate = errors.New("header date mapping does not resolve to a row")

// Row is a re-keyed data row: canonical field -> raw cell value. Fields with
// no resolved mapping are absent, not empty; the engine distinguishes the two
// when deciding whether a transaction is a debit or a credit.
type Row map[template.Field]string

// Rekeyed is the data region of a statement after re-keying.
type Rekeyed struct {
	// HeaderRow is the 1-based sheet row holding the column names.
	HeaderRow int
	// Rows are the re-keyed data rows, in sheet order.
	Rows []Row
	// SheetRows[i] is the 1-based sheet row Rows[i] came from.
	SheetRows []int
}

// Rekey locates the header row via the header-date binding and re-keys every
// row after it by resolved column position. Column lookup goes through the
// header-name vector: two bound columns carrying the same header name
// collapse onto the rightmost occurrence, matching how the mapping UI
// resolves names.
func Rekey(bs mapping.Bindings, g grid.Grid) (*Rekeyed, error) {
	date := bs[template.FieldDateHeader]
	if date.Kind != mapping.PointerBinding || date.Row < 1 {
		return nil, ErrNoHeaderDate
	}

	headerRow := date.Row
	header := g.Row(headerRow - 1)

	// Header name -> column index; rightmost duplicate wins.
	nameIndex := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name != "" {
			nameIndex[name] = i
		}
	}

	// Canonical field -> column index, via the bound column's header name.
	fieldCol := make(map[template.Field]int)
	concatSpecs := make(map[template.Field][]cellref.Ref)

	for _, f := range template.AllFields() {
		b := bs[f]

		if b.Kind == mapping.ValueBinding && mapping.IsConcatSpec(b.Value) {
			concatSpecs[f] = concatRefs(b.Value)
			continue
		}

		if b.Kind != mapping.PointerBinding {
			continue
		}

		colIdx := cellref.ColumnIndex(b.Column)

		name := ""
		if colIdx >= 0 && colIdx < len(header) {
			name = strings.TrimSpace(header[colIdx])
		}

		if idx, ok := nameIndex[name]; ok {
			fieldCol[f] = idx
		} else {
			fieldCol[f] = colIdx
		}
	}

	rk := &Rekeyed{HeaderRow: headerRow}

	for i := headerRow; i < len(g); i++ {
		raw := g.Row(i)
		row := make(Row, len(fieldCol)+len(concatSpecs))

		for f, colIdx := range fieldCol {
			if colIdx < len(raw) {
				row[f] = raw[colIdx]
			}
		}

		for f, refs := range concatSpecs {
			row[f] = concatValue(refs, raw)
		}

		rk.Rows = append(rk.Rows, row)
		rk.SheetRows = append(rk.SheetRows, i+1)
	}

	return rk, nil
}

// concatRefs extracts the cell references from a concat() spec.
func concatRefs(spec string) []cellref.Ref {
	var refs []cellref.Ref

	for _, s := range cellref.FindAll(spec) {
		if ref, ok := cellref.Parse(s); ok {
			refs = append(refs, ref)
		}
	}

	return refs
}

// concatValue joins the referenced columns of one data row. The row part of
// each reference is ignored: concat targets data columns, evaluated once per
// transaction row.
func concatValue(refs []cellref.Ref, raw []string) string {
	parts := make([]string, 0, len(refs))

	for _, ref := range refs {
		idx := ref.ColumnIndex()
		if idx >= 0 && idx < len(raw) {
			if v := strings.TrimSpace(raw[idx]); v != "" {
				parts = append(parts, v)
			}
		}
	}

	return strings.Join(parts, " ")
}
