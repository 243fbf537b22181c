// Package mapping resolves per-bank field specs against a decoded statement
// grid into the bindings the reconstruction engine consumes.
package mapping

import (
	"strings"

	"github.com/kritsw/bankconv/internal/cellref"
)

// SpecKind identifies which variant of a field spec string is in play.
// Exactly one variant is active per field.
type SpecKind int

const (
	// SpecEmpty is an unbound field: nothing to resolve.
	SpecEmpty SpecKind = iota
	// SpecLiteral is a fixed value used verbatim.
	SpecLiteral
	// SpecCellRef reads one cell from the grid.
	SpecCellRef
	// SpecCalc is an arithmetic expression over cell references.
	SpecCalc
	// SpecConcat joins data columns per transaction row; it is retained
	// verbatim at template-resolution time and resolved during re-keying.
	SpecConcat
)

// Spec is a parsed field spec string.
type Spec struct {
	Kind SpecKind
	// Raw is the original spec string.
	Raw string
	// Ref is set for SpecCellRef.
	Ref cellref.Ref
	// Expr is the inner expression for SpecCalc.
	Expr string
}

// ParseSpec classifies a raw field spec string.
func ParseSpec(raw string) Spec {
	s := strings.TrimSpace(raw)

	switch {
	case s == "":
		return Spec{Kind: SpecEmpty, Raw: raw}

	case strings.HasPrefix(s, "calc(") && strings.HasSuffix(s, ")"):
		return Spec{Kind: SpecCalc, Raw: raw, Expr: s[len("calc(") : len(s)-1]}

	case strings.HasPrefix(s, "concat(") && strings.HasSuffix(s, ")"):
		return Spec{Kind: SpecConcat, Raw: raw}
	}

	if ref, ok := cellref.Parse(s); ok && strings.HasPrefix(s, "[") {
		return Spec{Kind: SpecCellRef, Raw: raw, Ref: ref}
	}

	return Spec{Kind: SpecLiteral, Raw: raw}
}

// IsConcatSpec reports whether a stored binding value is a deferred concat
// spec rather than a plain value.
func IsConcatSpec(value string) bool {
	v := strings.TrimSpace(value)
	return strings.HasPrefix(v, "concat(") && strings.HasSuffix(v, ")")
}
