package format

import "strings"

// ColumnList is a parenthesized, comma separated list: column names of an
// INSERT, a VALUES row or function arguments. It renders inline unless a
// member spans lines, carries comments, or multi-line output is forced.
type ColumnList struct {
	cols      *SeparatedLines
	head      *Comment
	forceMult bool
	loc       Location
}

// NewColumnList creates an empty list. loc covers both parentheses.
func NewColumnList(loc Location) *ColumnList {
	return &ColumnList{cols: NewSeparatedLines(), loc: loc}
}

func (c *ColumnList) expr() {}

func (c *ColumnList) Loc() Location { return c.loc }

// Len returns the number of members.
func (c *ColumnList) Len() int { return c.cols.Len() }

// AddExpr appends e with the comments written before it.
func (c *ColumnList) AddExpr(e Expr, preceding []Comment) {
	sep := ","
	if c.cols.Len() == 0 {
		sep = ""
	}
	c.cols.AddExpr(toAligned(e), sep, preceding)
}

// AddCommentToChild attaches c to the last member.
func (c *ColumnList) AddCommentToChild(comment Comment) {
	c.cols.AddCommentToChild(comment)
}

// SetForceMultiLine renders one member per line regardless of content.
func (c *ColumnList) SetForceMultiLine(force bool) {
	c.forceMult = force
}

func (c *ColumnList) hasHeadComment() bool { return c.head != nil }

// SetHeadComment sets the bind parameter written before the list.
func (c *ColumnList) SetHeadComment(comment Comment) {
	c.head = &comment
}

func (c *ColumnList) Render(o *Options, depth int) (string, error) {
	var b strings.Builder
	if c.head != nil {
		b.WriteString(c.head.renderBindParam(o))
	}

	if c.IsMultiLine() {
		s, err := c.cols.Render(o, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString("(\n" + s + indent(depth) + ")")
		return b.String(), nil
	}

	parts := make([]string, 0, c.cols.Len())
	for _, it := range c.cols.items {
		s, err := it.expr.Render(o, depth)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	b.WriteString("(" + strings.Join(parts, ", ") + ")")

	return b.String(), nil
}

func (c *ColumnList) LastLineLenFromLeft(o *Options, depth, acc int) int {
	if c.IsMultiLine() {
		return depth*o.tabSize() + 1
	}
	return lastLineByRender(o, c, depth, acc)
}

func (c *ColumnList) IsMultiLine() bool {
	return c.forceMult || c.cols.hasComments()
}

func (c *ColumnList) IsBody() bool { return false }
