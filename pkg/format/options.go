package format

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/consts"
)

// Case controls how keywords and identifiers are converted when rendered.
type Case int

const (
	// CaseUpper converts to upper case.
	CaseUpper Case = iota
	// CaseLower converts to lower case.
	CaseLower
	// CasePreserve leaves the source text untouched.
	CasePreserve
)

// ParseCase converts a configuration value (upper, lower or preserve) into a
// Case.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upper":
		return CaseUpper, nil
	case "lower":
		return CaseLower, nil
	case "preserve":
		return CasePreserve, nil
	default:
		return CaseUpper, errors.Errorf("unknown case %q (expected upper, lower or preserve)", s)
	}
}

func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CasePreserve:
		return "preserve"
	default:
		return "upper"
	}
}

// Options controls formatting behavior. A value is threaded through every
// render call; nothing in this package reads global state.
type Options struct {
	// TabSize is the width of a single tab stop
	TabSize int
	// IndentTab renders padding as tab characters when true, spaces otherwise
	IndentTab bool
	// MaxCharPerLine is an informational soft limit (negative disables)
	MaxCharPerLine int

	// ComplementAlias adds `AS <column>` to plain column references in SELECT
	ComplementAlias bool
	// ComplementColumnAsKeyword adds a missing AS before column aliases
	ComplementColumnAsKeyword bool
	// RemoveTableAsKeyword drops AS before table aliases
	RemoveTableAsKeyword bool
	// RemoveRedundantNest collapses doubled parentheses
	RemoveRedundantNest bool
	// ComplementOuterKeyword renders LEFT/RIGHT/FULL JOIN as ... OUTER JOIN
	ComplementOuterKeyword bool
	// ComplementSQLID inserts a statement-id marker once per format run
	ComplementSQLID bool
	// UnifyNotEqual renders != as <>
	UnifyNotEqual bool
	// ConvertDoubleColonCast renders a::t as CAST(a AS t)
	ConvertDoubleColonCast bool
	// TrimBindParam trims whitespace inside bind parameter comments
	TrimBindParam bool

	// KeywordCase applies to keywords, operators and function names
	KeywordCase Case
	// IdentifierCase applies to unquoted identifiers
	IdentifierCase Case

	// Debug dumps both token streams when round-trip validation fails
	Debug bool
}

// DefaultOptions returns standard formatting options
func DefaultOptions() *Options {
	return &Options{
		TabSize:                   consts.DefaultTabSize,
		IndentTab:                 true,
		MaxCharPerLine:            consts.DefaultMaxCharPerLine,
		ComplementAlias:           true,
		ComplementColumnAsKeyword: true,
		RemoveTableAsKeyword:      true,
		RemoveRedundantNest:       true,
		ComplementOuterKeyword:    true,
		ComplementSQLID:           false,
		UnifyNotEqual:             true,
		ConvertDoubleColonCast:    true,
		TrimBindParam:             false,
		KeywordCase:               CaseUpper,
		IdentifierCase:            CaseLower,
	}
}

// NeverComplement returns a copy of the options with every completion,
// removal and conversion disabled. Rendering with these options only reflows
// tokens, which is what round-trip validation compares against.
func (o *Options) NeverComplement() *Options {
	cp := *o
	cp.ComplementAlias = false
	cp.ComplementColumnAsKeyword = false
	cp.RemoveTableAsKeyword = false
	cp.RemoveRedundantNest = false
	cp.ComplementOuterKeyword = false
	cp.ComplementSQLID = false
	cp.UnifyNotEqual = false
	cp.ConvertDoubleColonCast = false
	cp.TrimBindParam = false
	return &cp
}

func (o *Options) tabSize() int {
	if o.TabSize <= 0 {
		return consts.DefaultTabSize
	}
	return o.TabSize
}
