package format

import "strings"

// PrimaryKind classifies the text of a PrimaryExpr for case conversion.
type PrimaryKind int

const (
	// Literal text (numbers, strings) is rendered verbatim.
	Literal PrimaryKind = iota
	// Identifier text follows the identifier case.
	Identifier
	// Keyword text (NULL, TRUE, operators inside sequences) follows the
	// keyword case.
	Keyword
)

// PrimaryExpr is a single token-like element: a literal, an identifier or a
// keyword, optionally preceded by a bind parameter.
type PrimaryExpr struct {
	text string
	kind PrimaryKind
	loc  Location
	head *Comment
}

// NewPrimaryExpr creates a primary expression.
func NewPrimaryExpr(text string, kind PrimaryKind, loc Location) *PrimaryExpr {
	return &PrimaryExpr{text: text, kind: kind, loc: loc}
}

func (p *PrimaryExpr) expr() {}

// Text returns the source text.
func (p *PrimaryExpr) Text() string { return p.text }

// Kind returns the kind of the element.
func (p *PrimaryExpr) Kind() PrimaryKind { return p.kind }

// Loc returns the source span.
func (p *PrimaryExpr) Loc() Location { return p.loc }

// IsIdentifier reports whether the element is a (possibly qualified)
// identifier.
func (p *PrimaryExpr) IsIdentifier() bool { return p.kind == Identifier }

// HeadComment returns the bind parameter, if any.
func (p *PrimaryExpr) HeadComment() *Comment { return p.head }

func (p *PrimaryExpr) hasHeadComment() bool { return p.head != nil }

// SetHeadComment sets the bind parameter rendered directly before the text.
func (p *PrimaryExpr) SetHeadComment(c Comment) {
	p.head = &c
}

func (p *PrimaryExpr) element(o *Options) string {
	switch p.kind {
	case Identifier:
		return o.identifier(p.text)
	case Keyword:
		return o.keyword(p.text)
	default:
		return p.text
	}
}

func (p *PrimaryExpr) Render(o *Options, _ int) (string, error) {
	if p.head == nil {
		return p.element(o), nil
	}
	return p.head.renderBindParam(o) + p.element(o), nil
}

func (p *PrimaryExpr) LastLineLenFromLeft(o *Options, depth, acc int) int {
	s, _ := p.Render(o, depth)
	if p.IsMultiLine() {
		return o.lastLineWidth(s)
	}
	return o.widthFrom(acc, s)
}

// IsMultiLine is true only for literals that contain a newline.
func (p *PrimaryExpr) IsMultiLine() bool {
	return strings.Contains(p.text, "\n")
}

func (p *PrimaryExpr) IsBody() bool { return false }

// AsteriskExpr is `*` or a qualified `tbl.*`.
type AsteriskExpr struct {
	text string
	loc  Location
}

// NewAsteriskExpr creates an asterisk expression.
func NewAsteriskExpr(text string, loc Location) *AsteriskExpr {
	return &AsteriskExpr{text: text, loc: loc}
}

func (a *AsteriskExpr) expr() {}

func (a *AsteriskExpr) Loc() Location { return a.loc }

func (a *AsteriskExpr) Render(o *Options, _ int) (string, error) {
	return o.identifier(a.text), nil
}

func (a *AsteriskExpr) LastLineLenFromLeft(o *Options, depth, acc int) int {
	s, _ := a.Render(o, depth)
	return o.widthFrom(acc, s)
}

func (a *AsteriskExpr) IsMultiLine() bool { return false }

func (a *AsteriskExpr) IsBody() bool { return false }
