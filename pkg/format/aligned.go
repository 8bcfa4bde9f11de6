package format

import (
	"strings"

	"github.com/pseudomuto/sqlalign/pkg/utils"
)

// AliasContext tells an AlignedExpr which alias rules apply to it.
type AliasContext int

const (
	// NoAlias applies no alias completion or removal.
	NoAlias AliasContext = iota
	// ColumnAlias is used for SELECT items.
	ColumnAlias
	// TableAlias is used for FROM and JOIN items.
	TableAlias
)

// AlignedExpr is the unit of column alignment: a left-hand side, an optional
// operator and right-hand side, and optional comments.
type AlignedExpr struct {
	lhs         Expr
	op          string
	rhs         Expr
	lhsTrailing *Comment
	trailing    *Comment
	ctx         AliasContext
	loc         Location
}

// NewAlignedExpr creates an aligned expression with only a left-hand side.
func NewAlignedExpr(lhs Expr) *AlignedExpr {
	return &AlignedExpr{lhs: lhs, loc: lhs.Loc()}
}

// toAligned wraps e unless it already is an AlignedExpr.
func toAligned(e Expr) *AlignedExpr {
	if a, ok := e.(*AlignedExpr); ok {
		return a
	}
	return NewAlignedExpr(e)
}

func (a *AlignedExpr) expr() {}

// LHS returns the left-hand side.
func (a *AlignedExpr) LHS() Expr { return a.lhs }

// RHS returns the right-hand side, or nil.
func (a *AlignedExpr) RHS() Expr { return a.rhs }

// Op returns the operator as written in the source.
func (a *AlignedExpr) Op() string { return a.op }

func (a *AlignedExpr) Loc() Location { return a.loc }

// AddRHS sets the operator and right-hand side. An empty operator is allowed
// (ORDER BY directions, table aliases without AS).
func (a *AlignedExpr) AddRHS(op string, rhs Expr) {
	a.op = op
	a.rhs = rhs
	a.loc.Append(rhs.Loc())
}

// PrefixLHS applies a prefix operator (NOT) to the left-hand side so that
// `NOT a = 1` still aligns on its operator.
func (a *AlignedExpr) PrefixLHS(op string, loc Location) {
	a.lhs = NewUnaryExpr(op, a.lhs, loc)
	a.loc.Start = loc.Start
}

// SetAliasContext selects the alias rules applied at render time.
func (a *AlignedExpr) SetAliasContext(ctx AliasContext) {
	a.ctx = ctx
}

// SetLhsTrailingComment sets a comment written between the left-hand side and
// the operator.
func (a *AlignedExpr) SetLhsTrailingComment(c Comment) {
	a.lhsTrailing = &c
	a.loc.Append(c.Loc())
}

// SetTrailingComment sets the comment written after the whole expression on
// the same line.
func (a *AlignedExpr) SetTrailingComment(c Comment) {
	a.trailing = &c
	a.loc.Append(c.Loc())
}

// HasTrailingComment reports whether a trailing comment is set.
func (a *AlignedExpr) HasTrailingComment() bool { return a.trailing != nil }

// effective returns the operator and right-hand side that will actually be
// rendered once alias rules and operator rewrites are applied.
func (a *AlignedExpr) effective(o *Options) (string, Expr) {
	if a.rhs == nil {
		if a.ctx != ColumnAlias || !o.ComplementAlias || a.lhsTrailing != nil {
			return "", nil
		}

		p, ok := a.lhs.(*PrimaryExpr)
		if !ok || !p.IsIdentifier() || p.hasHeadComment() {
			return "", nil
		}

		alias := NewPrimaryExpr(utils.LastSegment(p.text), Identifier, p.loc)
		return o.keyword("AS"), alias
	}

	op := a.op
	switch a.ctx {
	case ColumnAlias:
		if op == "" && o.ComplementColumnAsKeyword {
			op = "AS"
		}
	case TableAlias:
		if strings.EqualFold(op, "AS") && o.RemoveTableAsKeyword {
			op = ""
		}
	}

	if op == "!=" && o.UnifyNotEqual {
		op = "<>"
	}

	return o.keyword(op), a.rhs
}

// lhsEnd is the column where the left-hand side ends when the expression
// starts at depth.
func (a *AlignedExpr) lhsEnd(o *Options, depth int) int {
	if a.lhs.IsBody() {
		return depth * o.tabSize()
	}
	return a.lhs.LastLineLenFromLeft(o, depth, depth*o.tabSize())
}

// Render renders the expression aligned only with itself.
func (a *AlignedExpr) Render(o *Options, depth int) (string, error) {
	return a.RenderAlign(o, depth, NewAlignInfo(o, depth, a))
}

// RenderAlign renders the expression using the padding widths shared by its
// group. The expression is assumed to start at column depth*TabSize.
func (a *AlignedExpr) RenderAlign(o *Options, depth int, info *AlignInfo) (string, error) {
	var b strings.Builder
	if _, err := a.layout(o, depth, info, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// endColumn is the column where the rendered expression ends, without the
// trailing comment.
func (a *AlignedExpr) endColumn(o *Options, depth int, info *AlignInfo) (int, error) {
	return a.layout(o, depth, info.withoutComments(), nil)
}

// layout walks the expression, writing to b when it is not nil, and returns
// the final column. Measuring and rendering share this walk so they cannot
// disagree.
func (a *AlignedExpr) layout(o *Options, depth int, info *AlignInfo, b *strings.Builder) (int, error) {
	ts := o.tabSize()
	emit := func(s string) {
		if b != nil {
			b.WriteString(s)
		}
	}
	emitExpr := func(e Expr, d int) error {
		if b == nil {
			return nil
		}
		s, err := e.Render(o, d)
		if err != nil {
			return err
		}
		b.WriteString(s)
		return nil
	}

	if a.lhs.IsBody() {
		if b != nil {
			s, err := a.lhs.Render(o, depth+1)
			if err != nil {
				return 0, err
			}
			emit("\n" + s + indent(depth))
		}
	} else if err := emitExpr(a.lhs, depth); err != nil {
		return 0, err
	}
	col := a.lhsEnd(o, depth)

	op, rhs := a.effective(o)
	if rhs == nil && a.lhsTrailing != nil {
		return 0, invariant("trailing comment after left-hand side requires an operator at %s", a.loc)
	}

	if rhs != nil {
		switch {
		case isCond(a.lhs):
			emit("\n" + indent(depth+1))
			col = (depth + 1) * ts
		case a.lhsTrailing != nil:
			if depth == 0 {
				return 0, depthError()
			}
			emit("\t" + a.lhsTrailing.Text() + "\n" + indent(depth-1))
			col = (depth - 1) * ts
			n := padding(o.tabsTo(col, info.toOp(depth)))
			emit(tabs(n))
			col = (col/ts + n) * ts
		default:
			stop := o.toTabNum(col)
			if v, ok := info.MaxToOpTab(); ok {
				stop = v
			}
			n := padding(o.tabsTo(col, stop))
			emit(tabs(n))
			col = (col/ts + n) * ts
		}

		emit(op)
		col = o.widthFrom(col, op)

		switch {
		case isCond(rhs):
			if b != nil {
				s, err := rhs.Render(o, depth+1)
				if err != nil {
					return 0, err
				}
				emit("\n" + indent(depth+1) + s)
			}
			col = rhs.LastLineLenFromLeft(o, depth+1, (depth+1)*ts)
		case rhs.IsBody():
			s, err := rhs.Render(o, depth+1)
			if err != nil {
				return 0, err
			}
			s = "\n" + strings.TrimSuffix(s, "\n")
			emit(s)
			col = o.lastLineWidth(s)
		default:
			w := o.widthFrom(0, op)
			maxOp := o.toTabNum(w)
			if v, ok := info.MaxOpTab(); ok {
				maxOp = v
			}
			n := maxOp - w/ts
			if op != "" {
				n = padding(n)
			}
			if n > 0 {
				emit(tabs(n))
				col = (col/ts + n) * ts
			}
			if err := emitExpr(rhs, depth); err != nil {
				return 0, err
			}
			col = rhs.LastLineLenFromLeft(o, depth, col)
		}
	}

	if a.trailing != nil {
		stop := o.toTabNum(col)
		if v, ok := info.MaxToCommentTab(); ok {
			stop = v
		}
		emit(tabs(padding(o.tabsTo(col, stop))) + a.trailing.Text())
	}

	return col, nil
}

// padding never lets a gap collapse.
func padding(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (a *AlignedExpr) LastLineLenFromLeft(o *Options, depth, acc int) int {
	return lastLineByRender(o, a, depth, acc)
}

func (a *AlignedExpr) IsMultiLine() bool {
	if a.trailing != nil || a.lhsTrailing != nil {
		return true
	}
	if a.lhs.IsMultiLine() {
		return true
	}
	return a.rhs != nil && a.rhs.IsMultiLine()
}

func (a *AlignedExpr) IsBody() bool { return false }
