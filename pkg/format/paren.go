package format

import "strings"

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	inner Expr
	start []Comment
	end   []Comment
	head  *Comment
	loc   Location
}

// NewParenExpr wraps inner. loc covers both parentheses.
func NewParenExpr(inner Expr, loc Location) *ParenExpr {
	return &ParenExpr{inner: inner, loc: loc}
}

func (p *ParenExpr) expr() {}

// Inner returns the wrapped expression.
func (p *ParenExpr) Inner() Expr { return p.inner }

func (p *ParenExpr) Loc() Location { return p.loc }

func (p *ParenExpr) hasHeadComment() bool { return p.head != nil }

// SetHeadComment sets the bind parameter rendered before the opening
// parenthesis.
func (p *ParenExpr) SetHeadComment(c Comment) {
	p.head = &c
}

// AddStartComment adds a comment written right after the opening
// parenthesis.
func (p *ParenExpr) AddStartComment(c Comment) {
	p.start = append(p.start, c)
}

// AddCommentToChild adds a comment written after the inner expression.
// Boolean chains take it themselves so it stays with the right member. A
// single-line comment on the row where the inner expression ends trails it;
// anything later is rendered on its own line before the closing parenthesis.
func (p *ParenExpr) AddCommentToChild(c Comment) {
	if b, ok := p.inner.(*BooleanExpr); ok {
		b.AddCommentToChild(c)
		return
	}

	if len(p.end) == 0 && !c.IsMultiLine() && p.inner.Loc().IsSameLine(c.Loc()) {
		if a := toAligned(p.inner); !a.HasTrailingComment() {
			a.SetTrailingComment(c)
			p.inner = a
			return
		}
	}
	p.end = append(p.end, c)
}

func (p *ParenExpr) hasComments() bool {
	return len(p.start) > 0 || len(p.end) > 0
}

// unwrap drops redundant nesting: ((x)) renders as (x).
func (p *ParenExpr) unwrap(o *Options) *ParenExpr {
	cur := p
	for o.RemoveRedundantNest && cur.head == nil && !cur.hasComments() {
		inner, ok := cur.inner.(*ParenExpr)
		if !ok {
			break
		}
		cur = inner
	}
	return cur
}

func (p *ParenExpr) multiLine() bool {
	return p.inner.IsMultiLine() || p.inner.IsBody() || p.hasComments()
}

func (p *ParenExpr) Render(o *Options, depth int) (string, error) {
	if q := p.unwrap(o); q != p {
		return q.Render(o, depth)
	}

	var b strings.Builder
	if p.head != nil {
		b.WriteString(p.head.renderBindParam(o))
	}

	if !p.multiLine() {
		inner, err := p.inner.Render(o, depth)
		if err != nil {
			return "", err
		}
		b.WriteString("(" + inner + ")")
		return b.String(), nil
	}

	b.WriteString("(\n")
	for _, c := range p.start {
		b.WriteString(indent(depth+1) + c.Render(o, depth+1) + "\n")
	}

	inner, err := p.inner.Render(o, depth+1)
	if err != nil {
		return "", err
	}
	if p.inner.IsBody() {
		b.WriteString(inner)
	} else {
		b.WriteString(indent(depth+1) + inner + "\n")
	}

	for _, c := range p.end {
		b.WriteString(indent(depth+1) + c.Render(o, depth+1) + "\n")
	}
	b.WriteString(indent(depth) + ")")

	return b.String(), nil
}

func (p *ParenExpr) LastLineLenFromLeft(o *Options, depth, acc int) int {
	if q := p.unwrap(o); q != p {
		return q.LastLineLenFromLeft(o, depth, acc)
	}
	if p.multiLine() {
		return depth*o.tabSize() + 1
	}
	return lastLineByRender(o, p, depth, acc)
}

func (p *ParenExpr) IsMultiLine() bool { return p.multiLine() }

func (p *ParenExpr) IsBody() bool { return false }

// SubExpr is a parenthesized sub-query.
type SubExpr struct {
	stmt *Statement
	loc  Location
}

// NewSubExpr wraps stmt. loc covers both parentheses.
func NewSubExpr(stmt *Statement, loc Location) *SubExpr {
	return &SubExpr{stmt: stmt, loc: loc}
}

func (s *SubExpr) expr() {}

// Statement returns the inner statement.
func (s *SubExpr) Statement() *Statement { return s.stmt }

func (s *SubExpr) Loc() Location { return s.loc }

// AddCommentToChild adds a comment written before the closing parenthesis.
func (s *SubExpr) AddCommentToChild(c Comment) {
	s.stmt.AddCommentToChild(c)
}

func (s *SubExpr) Render(o *Options, depth int) (string, error) {
	inner, err := s.stmt.render(o, depth+1, nil)
	if err != nil {
		return "", err
	}
	return "(\n" + inner + indent(depth) + ")", nil
}

func (s *SubExpr) LastLineLenFromLeft(o *Options, depth, _ int) int {
	return depth*o.tabSize() + 1
}

func (s *SubExpr) IsMultiLine() bool { return true }

func (s *SubExpr) IsBody() bool { return false }
