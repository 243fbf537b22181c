// Package sheet decodes uploaded statement files (XLSX, legacy XLS, CSV)
// into the 2-D string grid the mapping engine works on.
package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/kritsw/bankconv/internal/encoding"
	"github.com/kritsw/bankconv/internal/grid"
)

// Read decodes a statement file into a grid. CSV is chosen by extension;
// anything else is tried as XLSX, then legacy XLS, then CSV as a last
// resort. The first sheet with more than one row wins — banks routinely
// ship cover sheets with a lone title cell.
func Read(r io.Reader, filename string) (grid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return readCSV(data)
	}

	if g, err := readXLSX(data); err == nil {
		return g, nil
	}

	if g, err := readXLS(data); err == nil {
		return g, nil
	}

	g, csvErr := readCSV(data)
	if csvErr != nil {
		return nil, fmt.Errorf("decode %s: not a readable xlsx, xls, or csv file", filename)
	}

	return g, nil
}

func readXLSX(data []byte) (grid.Grid, error) {
	xl, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer xl.Close()

	for _, name := range xl.GetSheetList() {
		rows, err := xl.GetRows(name)
		if err != nil {
			continue
		}

		if len(rows) > 1 {
			return grid.Grid(rows), nil
		}
	}

	return nil, fmt.Errorf("no sheet with data rows")
}

func readXLS(data []byte) (grid.Grid, error) {
	book, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	for i := 0; i < book.GetNumberSheets(); i++ {
		sheet, err := book.GetSheet(i)
		if err != nil || sheet == nil {
			continue
		}

		var g grid.Grid

		for _, row := range sheet.GetRows() {
			var cells []string
			for _, col := range row.GetCols() {
				cells = append(cells, col.GetString())
			}

			g = append(g, cells)
		}

		if len(g) > 1 {
			return g, nil
		}
	}

	return nil, fmt.Errorf("no sheet with data rows")
}

func readCSV(data []byte) (grid.Grid, error) {
	utf8r, err := encoding.NewUTF8Reader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	// Drop fully blank lines; they carry no cells worth addressing.
	g := make(grid.Grid, 0, len(rows))
	for _, row := range rows {
		if blankRow(row) {
			continue
		}

		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}

		g = append(g, row)
	}

	if len(g) == 0 {
		return nil, fmt.Errorf("csv has no rows")
	}

	return g, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
