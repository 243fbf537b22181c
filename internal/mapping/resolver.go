package mapping

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kritsw/bankconv/internal/calc"
	"github.com/kritsw/bankconv/internal/cellref"
	"github.com/kritsw/bankconv/internal/grid"
	"github.com/kritsw/bankconv/internal/normalize"
	"github.com/kritsw/bankconv/internal/template"
)

// idPrefixPattern strips a leading "Account Number:"-style label from
// identifier cells. Banks often prepend it to the account cell itself.
var idPrefixPattern = regexp.MustCompile(`(?i)^Account\s*Number\s*[:\-]?\s*`)

// idFormatPattern matches the formatting characters removed from resolved
// identifiers; they are matched literally downstream.
var idFormatPattern = regexp.MustCompile(`[-,\s]`)

// Resolve evaluates a field-spec table against a grid and returns the
// resulting bindings. Header fields other than the date resolve to values;
// the date header and all transaction fields resolve to column pointers
// (or retained concat specs). Resolution never fails: unparseable or
// unevaluable specs leave the field unbound and conversion degrades
// gracefully.
func Resolve(specs map[template.Field]string, g grid.Grid) Bindings {
	out := make(Bindings, len(specs))

	for _, f := range template.AllFields() {
		raw, ok := specs[f]
		if !ok {
			out[f] = Binding{Kind: Unbound}
			continue
		}

		if f.IsHeader() && f != template.FieldDateHeader {
			out[f] = resolveValue(f, ParseSpec(raw), g)
		} else {
			out[f] = resolvePointer(ParseSpec(raw), g)
		}
	}

	return out
}

// resolveValue produces a value binding for a fixed header field.
func resolveValue(f template.Field, spec Spec, g grid.Grid) Binding {
	var value string

	switch spec.Kind {
	case SpecEmpty:
		return Binding{Kind: Unbound}

	case SpecLiteral:
		value = strings.TrimSpace(spec.Raw)

	case SpecCellRef:
		value = derefCell(spec.Ref, g)

	case SpecCalc:
		result, ok := evalCalc(spec.Expr, g)
		if !ok {
			// Calc specs are a convenience for opening-balance
			// derivation and must not block conversion.
			return Binding{Kind: Unbound}
		}
		value = result

	case SpecConcat:
		// concat() targets data columns; it has no meaning for a fixed
		// header field.
		return Binding{Kind: Unbound}
	}

	if f.IsIdentifier() {
		value = CleanIdentifier(value)
	}

	return Binding{Kind: ValueBinding, Value: value}
}

// resolvePointer produces a pointer binding for the header-date field or a
// transaction field. Concat specs are retained verbatim for per-row
// resolution during re-keying.
func resolvePointer(spec Spec, g grid.Grid) Binding {
	switch spec.Kind {
	case SpecConcat:
		return Binding{Kind: ValueBinding, Value: strings.TrimSpace(spec.Raw)}

	case SpecCellRef:
		return Binding{
			Kind:   PointerBinding,
			Value:  g.ValueAtRef(spec.Ref),
			Column: spec.Ref.Column,
			Row:    spec.Ref.Row,
		}
	}

	return Binding{Kind: Unbound}
}

// derefCell reads a referenced cell and strips any identifier label prefix.
func derefCell(ref cellref.Ref, g grid.Grid) string {
	return strings.TrimSpace(idPrefixPattern.ReplaceAllString(g.ValueAtRef(ref), ""))
}

// evalCalc substitutes every referenced cell's numeric value into the
// expression and evaluates it. Out-of-range cells read as empty and
// normalize to 0, so a partially populated sheet still evaluates.
func evalCalc(expr string, g grid.Grid) (string, bool) {
	for _, refStr := range cellref.FindAll(expr) {
		ref, ok := cellref.Parse(refStr)
		if !ok {
			continue
		}

		value := normalize.ToFloat(g.ValueAtRef(ref))
		expr = strings.Replace(expr, refStr, strconv.FormatFloat(value, 'f', -1, 64), 1)
	}

	result, err := calc.Eval(expr)
	if err != nil {
		return "", false
	}

	return strconv.FormatFloat(result, 'f', -1, 64), true
}

// CleanIdentifier removes hyphens, commas, and whitespace from account and
// statement identifiers.
func CleanIdentifier(s string) string {
	return idFormatPattern.ReplaceAllString(s, "")
}
