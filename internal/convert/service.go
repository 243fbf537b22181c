// Package convert wires decoding, mapping resolution, and statement
// reconstruction into the single conversion operation the transports call.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/kritsw/bankconv/internal/grid"
	"github.com/kritsw/bankconv/internal/mapping"
	"github.com/kritsw/bankconv/internal/sheet"
	"github.com/kritsw/bankconv/internal/statement"
	"github.com/kritsw/bankconv/internal/template"
)

// ValidationError reports the mandatory fields still unbound when a
// conversion was requested. The caller highlights them and retries; the
// loaded grid and mapping survive the failed attempt.
type ValidationError struct {
	Missing []template.Field
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}

	return "mandatory fields not mapped: " + strings.Join(names, ", ")
}

// Result is a completed conversion.
type Result struct {
	// Filename is the output document name derived from the input name.
	Filename string
	// Content is the emitted document.
	Content string
	// Summary reports row counts and excluded rows.
	Summary statement.Summary
	// Bindings is the resolved field set the conversion ran with.
	Bindings mapping.Bindings
}

// Service runs conversions. One conversion is a single synchronous pass over
// its own grid and binding set; nothing is shared across conversions.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Convert decodes the file and converts it using the given field specs.
func (s *Service) Convert(filename string, r io.Reader, specs map[template.Field]string) (*Result, error) {
	g, err := sheet.Read(r, filename)
	if err != nil {
		return nil, fmt.Errorf("decode statement: %w", err)
	}

	return s.ConvertGrid(filename, g, specs)
}

// ConvertGrid converts an already decoded grid. Callers that keep the grid
// loaded across mapping edits (the interactive flow) re-enter here on every
// "convert again".
func (s *Service) ConvertGrid(filename string, g grid.Grid, specs map[template.Field]string) (*Result, error) {
	bindings := mapping.Resolve(specs, g)

	if missing := bindings.Validate(); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	rekeyed, err := statement.Rekey(bindings, g)
	if err != nil {
		return nil, fmt.Errorf("locate data region: %w", err)
	}

	res := statement.Reconstruct(bindings, rekeyed)

	return &Result{
		Filename: statement.OutputFilename(filename),
		Content:  res.Document(),
		Summary:  res.Summary,
		Bindings: bindings,
	}, nil
}

// SpecsFor picks the field specs for a conversion: the named bank template
// when a code is given, else filename-prefix auto-detection. The second
// return value is false when no template matched.
func (s *Service) SpecsFor(bankCode, filename string) (map[template.Field]string, bool) {
	if bankCode != "" {
		b, ok := template.FindByCode(bankCode)
		if !ok {
			return nil, false
		}

		return b.Fields, true
	}

	b, ok := template.FindByFilename(filename)
	if !ok {
		return nil, false
	}

	return b.Fields, true
}
