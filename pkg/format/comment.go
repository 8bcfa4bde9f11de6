package format

import (
	"regexp"
	"strings"
)

// SQLIDMarker is the statement-id marker inserted by ComplementSQLID.
const SQLIDMarker = "/* _SQL_ID_ */"

var (
	sqlIDPattern     = regexp.MustCompile(`^/\*\s*_SQL_(ID|IDENTIFIER)_\s*\*/$`)
	directivePattern = regexp.MustCompile(`(?i)^/\*\s*(IF|ELIF|ELSE|END|BEGIN|FOR)\b`)
)

// Comment is a block (/* */) or line (--) comment with its source span.
// A comment is moved into exactly one owner by an attachment call.
type Comment struct {
	text string
	loc  Location
}

// NewComment creates a comment from its source text.
func NewComment(text string, loc Location) Comment {
	return Comment{text: text, loc: loc}
}

// Text returns the comment exactly as written in the source.
func (c Comment) Text() string { return c.text }

// Loc returns the source span of the comment.
func (c Comment) Loc() Location { return c.loc }

// IsBlock reports whether this is a /* */ comment.
func (c Comment) IsBlock() bool {
	return strings.HasPrefix(c.text, "/*")
}

// IsHint reports whether this is an optimizer hint (/*+ or --+).
func (c Comment) IsHint() bool {
	return strings.HasPrefix(c.text, "/*+") || strings.HasPrefix(c.text, "--+")
}

// IsTwoWaySQLDirective reports whether this is a branching directive such as
// /*IF cond*/, /*ELSE*/ or /*END*/.
func (c Comment) IsTwoWaySQLDirective() bool {
	return directivePattern.MatchString(c.text)
}

// IsSQLID reports whether this is a /* _SQL_ID_ */ or /* _SQL_IDENTIFIER_ */
// statement-id marker.
func (c Comment) IsSQLID() bool {
	return sqlIDPattern.MatchString(c.text)
}

// IsMultiLine reports whether the comment spans more than one line.
func (c Comment) IsMultiLine() bool {
	return strings.Contains(c.text, "\n")
}

// IsBindParamFor reports whether the comment is a bind parameter placeholder
// of an expression located at loc: a plain block comment with no gap before
// the expression.
func (c Comment) IsBindParamFor(loc Location) bool {
	return c.IsBlock() &&
		!c.IsHint() &&
		!c.IsSQLID() &&
		!c.IsTwoWaySQLDirective() &&
		!c.IsMultiLine() &&
		c.loc.IsNextTo(loc)
}

// renderBindParam renders the comment as a bind parameter prefix.
func (c Comment) renderBindParam(o *Options) string {
	if !o.TrimBindParam || c.IsHint() {
		return c.text
	}

	inner := strings.TrimSpace(c.text[2 : len(c.text)-2])
	return "/*" + inner + "*/"
}

// Render renders the comment for placement at depth. Interior lines of a
// multi-line block comment are re-indented so that the least indented line
// sits at depth; relative indentation and empty lines are kept.
func (c Comment) Render(o *Options, depth int) string {
	if !c.IsBlock() || c.IsHint() || !c.IsMultiLine() {
		return c.text
	}

	lines := strings.Split(c.text, "\n")

	minWidth := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if w := o.leadingWidth(line); minWidth < 0 || w < minWidth {
			minWidth = w
		}
	}

	if minWidth < 0 {
		return c.text
	}

	delta := depth*o.tabSize() - minWidth

	var b strings.Builder
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		if strings.TrimSpace(line) == "" {
			b.WriteString(line)
			continue
		}

		content := strings.TrimLeft(line, " \t")
		b.WriteString(o.whitespace(o.leadingWidth(line) + delta))
		b.WriteString(content)
	}

	return b.String()
}
