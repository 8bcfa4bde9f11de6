package format

import "strings"

// Expr is the closed set of expression nodes. Every variant owns its
// sub-expressions; there is no sharing between nodes.
//
// Variants: *PrimaryExpr, *AlignedExpr, *BooleanExpr, *SubExpr, *ParenExpr,
// *AsteriskExpr, *CondExpr, *UnaryExpr, *ColumnList, *FunctionCall,
// *ExprSeq and *TypeCast.
type Expr interface {
	// Loc returns the source span covered by the expression.
	Loc() Location
	// Render renders the expression. The first line starts at the current
	// column; later lines carry their own indentation relative to depth.
	Render(o *Options, depth int) (string, error)
	// LastLineLenFromLeft returns the column where the last rendered line
	// ends, given that rendering at depth starts at column acc.
	LastLineLenFromLeft(o *Options, depth, acc int) int
	// IsMultiLine reports whether rendering spans more than one line.
	IsMultiLine() bool
	// IsBody reports whether the expression renders its own leading
	// indentation and trailing newline.
	IsBody() bool

	expr()
}

// headCommentHolder is implemented by expressions that can carry a bind
// parameter directly in front of them.
type headCommentHolder interface {
	Expr
	hasHeadComment() bool
	SetHeadComment(c Comment)
}

// attachBindParam attaches c as the bind parameter of the leftmost
// expression of e. It reports false when no expression can take it.
func attachBindParam(e Expr, c Comment) bool {
	switch x := e.(type) {
	case *AlignedExpr:
		return attachBindParam(x.lhs, c)
	case *ExprSeq:
		if len(x.exprs) == 0 {
			return false
		}
		return attachBindParam(x.exprs[0], c)
	case *TypeCast:
		return attachBindParam(x.value, c)
	case headCommentHolder:
		if x.hasHeadComment() {
			return false
		}
		x.SetHeadComment(c)
		return true
	default:
		return false
	}
}

func isCond(e Expr) bool {
	_, ok := e.(*CondExpr)
	return ok
}

// lastLineByRender measures the last line by rendering. Used where the
// layout of the last line depends on several children.
func lastLineByRender(o *Options, e Expr, depth, acc int) int {
	s, err := e.Render(o, depth)
	if err != nil {
		return acc
	}
	if strings.Contains(s, "\n") {
		return o.lastLineWidth(s)
	}
	return o.widthFrom(acc, s)
}
