package format_test

import (
	"testing"

	. "github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestExprs_Render(t *testing.T) {
	opts := DefaultOptions()

	boolean := NewBooleanExpr()
	boolean.AddExpr(cmp(ident("a", 0, 1), "=", lit("1", 0, 5)), "", nil)
	boolean.AddExpr(cmp(ident("b", 0, 10), "=", lit("2", 0, 14)), "OR", nil)

	args := NewColumnList(at(0, 3, 2))
	args.AddExpr(NewAsteriskExpr("*", at(0, 6, 1)), nil)

	cols := NewColumnList(at(0, 0, 6))
	cols.AddExpr(ident("A", 0, 1), nil)
	cols.AddExpr(ident("b", 0, 4), nil)

	forced := NewColumnList(at(0, 0, 6))
	forced.AddExpr(ident("a", 0, 1), nil)
	forced.AddExpr(ident("b", 0, 4), nil)
	forced.SetForceMultiLine(true)

	window := NewFunctionCall("row_number", NewColumnList(at(0, 10, 2)), at(0, 0, 12))
	window.SetOver([]*Clause{
		clause("PARTITION BY", list(NewAlignedExpr(ident("x", 0, 30)))),
		clause("ORDER BY", list(NewAlignedExpr(ident("y", 0, 41)))),
	}, at(0, 13, 30))

	sub := NewSubExpr(statement(clause("SELECT", list(NewAlignedExpr(lit("1", 0, 8))))), at(0, 0, 10))

	tests := []struct {
		name string
		expr Expr
		opts *Options
		want string
	}{
		{name: "redundant nest", expr: NewParenExpr(NewParenExpr(ident("a", 0, 2), at(0, 1, 3)), at(0, 0, 5)), opts: opts, want: "(a)"},
		{name: "nest kept", expr: NewParenExpr(NewParenExpr(ident("a", 0, 2), at(0, 1, 3)), at(0, 0, 5)), opts: noComplement(), want: "((a))"},
		{name: "paren boolean", expr: NewParenExpr(boolean, at(0, 0, 16)), opts: opts, want: "(\n\t\ta\t=\t1\n\tOR\tb\t=\t2\n\t)"},
		{name: "double colon", expr: NewTypeCast(ident("a", 0, 0), "int", false, at(0, 0, 6)), opts: noComplement(), want: "a::INT"},
		{name: "converted cast", expr: NewTypeCast(ident("a", 0, 0), "int", false, at(0, 0, 6)), opts: opts, want: "CAST(a AS INT)"},
		{name: "cast kept", expr: NewTypeCast(ident("a", 0, 5), "text", true, at(0, 0, 15)), opts: noComplement(), want: "CAST(a AS TEXT)"},
		{name: "word unary", expr: NewUnaryExpr("not", ident("a", 0, 4), at(0, 0, 3)), opts: opts, want: "NOT a"},
		{name: "symbol unary", expr: NewUnaryExpr("-", lit("1", 0, 1), at(0, 0, 1)), opts: opts, want: "-1"},
		{name: "function", expr: NewFunctionCall("count", args, at(0, 0, 8)), opts: opts, want: "COUNT(*)"},
		{name: "inline list", expr: cols, opts: opts, want: "(a, b)"},
		{name: "forced list", expr: forced, opts: opts, want: "(\n\t\ta\n\t,\tb\n\t)"},
		{name: "window", expr: window, opts: opts, want: "ROW_NUMBER() OVER(\n\t\tPARTITION BY\n\t\t\tx\n\t\tORDER BY\n\t\t\ty\n\t)"},
		{name: "sequence", expr: NewExprSeq(ident("a", 0, 0), NewPrimaryExpr("+", Keyword, at(0, 2, 1)), lit("1", 0, 4)), opts: opts, want: "a + 1"},
		{name: "sub query", expr: sub, opts: opts, want: "(\n\t\tSELECT\n\t\t\t1\n\t)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := test.expr.Render(test.opts, 1)
			require.NoError(t, err)
			require.Equal(t, test.want, out)
		})
	}
}

func TestExprs_LastLineLenFromLeft(t *testing.T) {
	opts := DefaultOptions()

	sub := NewSubExpr(statement(clause("SELECT", list(NewAlignedExpr(lit("1", 0, 8))))), at(0, 0, 10))
	require.Equal(t, 5, sub.LastLineLenFromLeft(opts, 1, 17))

	cond := NewCondExpr(nil, at(0, 0, 4))
	cond.AddWhenThen(lit("1", 0, 10), lit("2", 0, 17), nil, nil)
	require.Equal(t, 11, cond.LastLineLenFromLeft(opts, 2, 0))

	seq := NewExprSeq(ident("ab", 0, 0), NewPrimaryExpr("||", Keyword, at(0, 3, 2)), ident("c", 0, 6))
	require.Equal(t, 11, seq.LastLineLenFromLeft(opts, 1, 4))
	require.False(t, seq.IsMultiLine())
	require.True(t, cond.IsMultiLine())
	require.True(t, NewBooleanExpr().IsBody())
}
