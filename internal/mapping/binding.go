package mapping

import (
	"fmt"

	"github.com/kritsw/bankconv/internal/template"
)

// BindingKind distinguishes the three states a resolved field can be in.
type BindingKind int

const (
	// Unbound means resolution failed or the spec was empty.
	Unbound BindingKind = iota
	// ValueBinding carries a fixed value used verbatim in the output.
	ValueBinding
	// PointerBinding names a column read for every data row; Row is the
	// header row the column name was taken from.
	PointerBinding
)

// Binding is the resolved state of one canonical field.
type Binding struct {
	Kind   BindingKind
	Value  string
	Column string
	Row    int // 1-based display row
}

// Bound reports whether the field resolved to either a value or a pointer.
func (b Binding) Bound() bool {
	return b.Kind != Unbound
}

// Ref renders a pointer binding in display form ("[A5]"), or "[]" when the
// field is not pointer-bound. Matches what the mapping UI shows for
// unresolved cells.
func (b Binding) Ref() string {
	if b.Kind != PointerBinding {
		return "[]"
	}

	return fmt.Sprintf("[%s%d]", b.Column, b.Row)
}

// Bindings is the full resolved field set for one conversion.
type Bindings map[template.Field]Binding

// Value returns the bound value for a field, or "" when it is not
// value-bound.
func (bs Bindings) Value(f template.Field) string {
	b := bs[f]
	if b.Kind != ValueBinding {
		return ""
	}

	return b.Value
}

// Validate returns the mandatory fields that are still unbound, in canonical
// field order. An empty result means conversion may proceed.
func (bs Bindings) Validate() []template.Field {
	var missing []template.Field

	for _, f := range template.AllFields() {
		if !f.Mandatory() {
			continue
		}

		b := bs[f]
		if b.Kind == ValueBinding && b.Value != "" {
			continue
		}

		if b.Kind == PointerBinding && b.Column != "" {
			continue
		}

		missing = append(missing, f)
	}

	return missing
}
