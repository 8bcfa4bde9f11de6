package format

import "unicode"

// UnaryExpr is a prefix operator applied to an operand: -x, NOT x,
// EXISTS (...).
type UnaryExpr struct {
	op      string
	operand Expr
	loc     Location
}

// NewUnaryExpr creates a unary expression. loc is the location of op.
func NewUnaryExpr(op string, operand Expr, loc Location) *UnaryExpr {
	loc.Append(operand.Loc())
	return &UnaryExpr{op: op, operand: operand, loc: loc}
}

func (u *UnaryExpr) expr() {}

func (u *UnaryExpr) Loc() Location { return u.loc }

// prefix is the operator and, for word operators, the separating space.
func (u *UnaryExpr) prefix(o *Options) string {
	for _, r := range u.op {
		if unicode.IsLetter(r) {
			return o.keyword(u.op) + " "
		}
	}
	return u.op
}

func (u *UnaryExpr) Render(o *Options, depth int) (string, error) {
	s, err := u.operand.Render(o, depth)
	if err != nil {
		return "", err
	}
	return u.prefix(o) + s, nil
}

func (u *UnaryExpr) LastLineLenFromLeft(o *Options, depth, acc int) int {
	return u.operand.LastLineLenFromLeft(o, depth, o.widthFrom(acc, u.prefix(o)))
}

func (u *UnaryExpr) IsMultiLine() bool { return u.operand.IsMultiLine() }

func (u *UnaryExpr) IsBody() bool { return false }
