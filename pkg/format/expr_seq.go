package format

import "strings"

// ExprSeq is a run of expressions separated by single spaces, used for
// arithmetic, BETWEEN operands, ORDER BY modifiers and similar.
type ExprSeq struct {
	exprs []Expr
	loc   Location
}

// NewExprSeq creates a sequence. It must not be empty.
func NewExprSeq(exprs ...Expr) *ExprSeq {
	s := &ExprSeq{exprs: exprs}
	for i, e := range exprs {
		if i == 0 {
			s.loc = e.Loc()
			continue
		}
		s.loc.Append(e.Loc())
	}
	return s
}

func (s *ExprSeq) expr() {}

// Exprs returns the members.
func (s *ExprSeq) Exprs() []Expr { return s.exprs }

func (s *ExprSeq) Loc() Location { return s.loc }

func (s *ExprSeq) Render(o *Options, depth int) (string, error) {
	parts := make([]string, len(s.exprs))
	for i, e := range s.exprs {
		out, err := e.Render(o, depth)
		if err != nil {
			return "", err
		}
		parts[i] = out
	}
	return strings.Join(parts, " "), nil
}

func (s *ExprSeq) LastLineLenFromLeft(o *Options, depth, acc int) int {
	col := acc
	for i, e := range s.exprs {
		if i > 0 {
			col++
		}
		col = e.LastLineLenFromLeft(o, depth, col)
	}
	return col
}

func (s *ExprSeq) IsMultiLine() bool {
	for _, e := range s.exprs {
		if e.IsMultiLine() {
			return true
		}
	}
	return false
}

func (s *ExprSeq) IsBody() bool { return false }
