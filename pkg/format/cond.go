package format

import "strings"

type condBranch struct {
	whenComments []Comment
	when         *BooleanExpr
	thenComments []Comment
	then         *SeparatedLines
}

// CondExpr is a CASE expression. Every part starts on its own line.
type CondExpr struct {
	operand      Expr
	branches     []*condBranch
	elseComments []Comment
	elseExpr     *SeparatedLines
	endComments  []Comment
	loc          Location
}

// NewCondExpr creates a CASE expression. operand is nil for a searched CASE.
func NewCondExpr(operand Expr, loc Location) *CondExpr {
	return &CondExpr{operand: operand, loc: loc}
}

func (c *CondExpr) expr() {}

func (c *CondExpr) Loc() Location { return c.loc }

// AddWhenThen appends a WHEN/THEN branch. The comments are those written
// before the WHEN and THEN keywords.
func (c *CondExpr) AddWhenThen(when, then Expr, whenComments, thenComments []Comment) {
	w, ok := when.(*BooleanExpr)
	if !ok {
		w = NewBooleanExpr()
		w.AddExpr(when, "", nil)
	}

	t := NewSeparatedLines()
	t.AddExpr(toAligned(then), "", nil)

	c.branches = append(c.branches, &condBranch{
		whenComments: whenComments,
		when:         w,
		thenComments: thenComments,
		then:         t,
	})
	c.loc.Append(t.Loc())
}

// SetElse sets the ELSE branch.
func (c *CondExpr) SetElse(e Expr, comments []Comment) {
	c.elseComments = comments
	c.elseExpr = NewSeparatedLines()
	c.elseExpr.AddExpr(toAligned(e), "", nil)
	c.loc.Append(e.Loc())
}

// AddEndComments adds comments written before END.
func (c *CondExpr) AddEndComments(comments ...Comment) {
	c.endComments = append(c.endComments, comments...)
}

// AddCommentToChild adds c to the part written last.
func (c *CondExpr) AddCommentToChild(comment Comment) {
	switch {
	case c.elseExpr != nil:
		c.elseExpr.AddCommentToChild(comment)
	case len(c.branches) > 0:
		c.branches[len(c.branches)-1].then.AddCommentToChild(comment)
	default:
		c.endComments = append(c.endComments, comment)
	}
}

func (c *CondExpr) Render(o *Options, depth int) (string, error) {
	var b strings.Builder
	b.WriteString(o.keyword("CASE"))

	if c.operand != nil {
		s, err := c.operand.Render(o, depth)
		if err != nil {
			return "", err
		}
		b.WriteString(" " + s)
	}
	b.WriteString("\n")

	comments := func(cs []Comment) {
		for _, cm := range cs {
			b.WriteString(indent(depth+1) + cm.Render(o, depth+1) + "\n")
		}
	}
	part := func(kw string, body Body) error {
		s, err := body.Render(o, depth+2)
		if err != nil {
			return err
		}
		b.WriteString(indent(depth+1) + o.keyword(kw) + "\n" + s)
		return nil
	}

	for _, br := range c.branches {
		comments(br.whenComments)
		if err := part("WHEN", br.when); err != nil {
			return "", err
		}
		comments(br.thenComments)
		if err := part("THEN", br.then); err != nil {
			return "", err
		}
	}

	if c.elseExpr != nil {
		comments(c.elseComments)
		if err := part("ELSE", c.elseExpr); err != nil {
			return "", err
		}
	}

	comments(c.endComments)
	b.WriteString(indent(depth) + o.keyword("END"))

	return b.String(), nil
}

func (c *CondExpr) LastLineLenFromLeft(o *Options, depth, _ int) int {
	return depth*o.tabSize() + o.widthFrom(0, o.keyword("END"))
}

func (c *CondExpr) IsMultiLine() bool { return true }

func (c *CondExpr) IsBody() bool { return false }
