// Package cellref parses spreadsheet cell references like "[A1]" or "AB12"
// into column/row coordinates.
package cellref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// refPattern matches an optionally bracketed reference: column letters
// followed by a 1-based row number.
var refPattern = regexp.MustCompile(`^\[?([A-Za-z]+)(\d+)\]?$`)

// Ref is a parsed cell reference. Column is the uppercase letter form
// ("A".."Z", "AA"...) and Row is 1-based, matching on-screen row numbers.
type Ref struct {
	Column string
	Row    int
}

// Parse parses a reference string. The second return value is false when the
// string does not match the grammar; callers treat that as "field not bound"
// rather than an error.
func Parse(s string) (Ref, bool) {
	m := refPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Ref{}, false
	}

	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return Ref{}, false
	}

	return Ref{Column: strings.ToUpper(m[1]), Row: row}, true
}

// ColumnIndex returns the 0-based column index (A=0, Z=25, AA=26).
func (r Ref) ColumnIndex() int {
	return ColumnIndex(r.Column)
}

// RowIndex returns the 0-based row index.
func (r Ref) RowIndex() int {
	return r.Row - 1
}

// String renders the reference in bracketed display form, e.g. "[AB12]".
func (r Ref) String() string {
	return fmt.Sprintf("[%s%d]", r.Column, r.Row)
}

// ColumnIndex converts a column label to its 0-based index. Labels are
// base-26 with no zero digit (A=1..Z=26, AA=27...).
func ColumnIndex(label string) int {
	idx := 0

	upper := strings.ToUpper(label)
	for i := 0; i < len(upper); i++ {
		idx = idx*26 + int(upper[i]-'A'+1)
	}

	return idx - 1
}

// ColumnLabel is the inverse of ColumnIndex: 0 -> "A", 25 -> "Z", 26 -> "AA".
func ColumnLabel(index int) string {
	if index < 0 {
		return ""
	}

	var sb strings.Builder

	for index >= 0 {
		sb.WriteByte(byte('A' + index%26))
		index = index/26 - 1
	}

	// The loop emits least-significant letters first.
	b := []byte(sb.String())
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// FindAll returns every bracketed cell reference contained in s, in order of
// appearance. Used to extract operands from calc() and concat() expressions.
func FindAll(s string) []string {
	return embeddedPattern.FindAllString(s, -1)
}

// embeddedPattern matches bracketed references embedded in a larger string.
var embeddedPattern = regexp.MustCompile(`\[[A-Za-z]+\d+\]`)
