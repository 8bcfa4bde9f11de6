package format

import "slices"

// BooleanExpr is an AND/OR chain. Nested chains are flattened into a single
// member list so every condition aligns with its siblings.
type BooleanExpr struct {
	lines
}

// NewBooleanExpr creates an empty chain.
func NewBooleanExpr() *BooleanExpr {
	return &BooleanExpr{}
}

func (e *BooleanExpr) expr() {}
func (e *BooleanExpr) body() {}

func (e *BooleanExpr) Loc() Location { return e.loc }

// Len returns the number of members.
func (e *BooleanExpr) Len() int { return len(e.items) }

// AddExpr appends expr with the given separator (empty for the first
// member). A BooleanExpr argument is merged instead of nested.
func (e *BooleanExpr) AddExpr(expr Expr, sep string, preceding []Comment) {
	if other, ok := expr.(*BooleanExpr); ok {
		e.Merge(other, sep, preceding)
		return
	}
	e.add(toAligned(expr), sep, preceding)
}

// Merge moves every member of other to the end of e. The first absorbed
// member takes sep; the rest keep their own separators.
func (e *BooleanExpr) Merge(other *BooleanExpr, sep string, preceding []Comment) {
	preceding = slices.Concat(preceding, other.pending)

	for i, it := range other.items {
		if i == 0 {
			it.sep = sep
			it.preceding = slices.Concat(preceding, it.preceding)
		}

		if len(e.items) == 0 && len(e.pending) > 0 {
			it.preceding = slices.Concat(e.pending, it.preceding)
			e.pending = nil
		}
		if i == 0 {
			it.preceding = bindLast(it.expr, it.preceding)
		}

		for _, c := range it.preceding {
			e.extend(c.Loc())
		}
		e.extend(it.expr.Loc())
		for _, c := range it.following {
			e.extend(c.Loc())
		}
		e.items = append(e.items, it)
	}
}

// AddCommentToChild attaches c to the last member added.
func (e *BooleanExpr) AddCommentToChild(c Comment) {
	e.addCommentToChild(c)
}

func (e *BooleanExpr) Render(o *Options, depth int) (string, error) {
	return e.render(o, depth, true)
}

// LastLineLenFromLeft is always zero since the chain ends with a newline.
func (e *BooleanExpr) LastLineLenFromLeft(*Options, int, int) int { return 0 }

func (e *BooleanExpr) IsMultiLine() bool { return true }

func (e *BooleanExpr) IsBody() bool { return true }
