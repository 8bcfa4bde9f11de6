package format_test

import (
	. "github.com/pseudomuto/sqlalign/pkg/format"
)

func at(row, col, width int) Location {
	return NewLocation(row, col, row, col+width)
}

func ident(name string, row, col int) *PrimaryExpr {
	return NewPrimaryExpr(name, Identifier, at(row, col, len(name)))
}

func lit(text string, row, col int) *PrimaryExpr {
	return NewPrimaryExpr(text, Literal, at(row, col, len(text)))
}

func cmp(lhs Expr, op string, rhs Expr) *AlignedExpr {
	a := NewAlignedExpr(lhs)
	a.AddRHS(op, rhs)
	return a
}

func column(e Expr) *AlignedExpr {
	a := NewAlignedExpr(e)
	a.SetAliasContext(ColumnAlias)
	return a
}

func clause(kw string, body Body) *Clause {
	c := NewClause(at(0, 0, len(kw)), kw)
	if body != nil {
		c.SetBody(body)
	}
	return c
}

func list(exprs ...*AlignedExpr) *SeparatedLines {
	l := NewSeparatedLines()
	for i, e := range exprs {
		sep := ","
		if i == 0 {
			sep = ""
		}
		l.AddExpr(e, sep, nil)
	}
	return l
}

func statement(clauses ...*Clause) *Statement {
	s := NewStatement()
	for _, c := range clauses {
		s.AddClause(c)
	}
	return s
}

func noComplement() *Options {
	return DefaultOptions().NeverComplement()
}
