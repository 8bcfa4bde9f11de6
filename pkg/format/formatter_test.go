package format_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Alignment(t *testing.T) {
	stmt := statement(
		clause("SELECT", list(column(ident("a", 0, 7)), column(ident("bbbbb", 0, 10)))),
		clause("FROM", list(NewAlignedExpr(ident("t", 0, 21)))),
	)

	t.Run("no completion", func(t *testing.T) {
		out, err := New(noComplement()).Render(stmt)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n\ta\n,\tbbbbb\nFROM\n\tt\n", out)
	})

	t.Run("alias completion aligns AS", func(t *testing.T) {
		out, err := NewDefault().Render(stmt)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n\ta\t\tAS\ta\n,\tbbbbb\tAS\tbbbbb\nFROM\n\tt\n", out)
	})

	t.Run("spaces", func(t *testing.T) {
		opts := DefaultOptions()
		opts.IndentTab = false

		out, err := New(opts).Render(stmt)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n    a       AS  a\n,   bbbbb   AS  bbbbb\nFROM\n    t\n", out)
	})
}

func TestFormatter_TrailingComment(t *testing.T) {
	build := func() *Statement {
		cols := list(column(ident("a", 0, 7)))
		cols.AddCommentToChild(NewComment("-- c", at(0, 9, 4)))
		return statement(
			clause("SELECT", cols),
			clause("FROM", list(NewAlignedExpr(ident("t", 1, 5)))),
		)
	}

	out, err := New(noComplement()).Render(build())
	require.NoError(t, err)
	require.Equal(t, "SELECT\n\ta\t-- c\nFROM\n\tt\n", out)

	out, err = NewDefault().Render(build())
	require.NoError(t, err)
	require.Equal(t, "SELECT\n\ta\tAS\ta\t-- c\nFROM\n\tt\n", out)
}

func TestFormatter_CommentOnNextLine(t *testing.T) {
	cols := list(column(ident("a", 0, 7)))
	cols.AddCommentToChild(NewComment("-- c", at(1, 0, 4)))

	out, err := New(noComplement()).Render(statement(clause("SELECT", cols)))
	require.NoError(t, err)
	require.Equal(t, "SELECT\n\ta\n\t-- c\n", out)
}

func TestFormatter_BindParam(t *testing.T) {
	tests := []struct {
		name    string
		comment Comment
		trim    bool
		want    string
	}{
		{
			name:    "adjacent",
			comment: NewComment("/*param*/", at(0, 7, 9)),
			want:    "SELECT\n\t/*param*/1\n",
		},
		{
			name:    "adjacent trimmed",
			comment: NewComment("/* param */", at(0, 5, 11)),
			trim:    true,
			want:    "SELECT\n\t/*param*/1\n",
		},
		{
			name:    "separated by a space",
			comment: NewComment("/*param*/", at(0, 6, 9)),
			want:    "SELECT\n\t/*param*/\n\t1\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cols := NewSeparatedLines()
			cols.AddExpr(column(lit("1", 0, 16)), "", []Comment{test.comment})

			opts := noComplement()
			opts.TrimBindParam = test.trim

			out, err := New(opts).Render(statement(clause("SELECT", cols)))
			require.NoError(t, err)
			require.Equal(t, test.want, out)
		})
	}
}

func TestFormatter_CaseOnRightHandSide(t *testing.T) {
	cond := NewCondExpr(nil, at(0, 17, 4))
	cond.AddWhenThen(cmp(ident("a", 0, 27), "=", lit("1", 0, 31)), lit("2", 0, 38), nil, nil)

	stmt := statement(
		clause("UPDATE", list(NewAlignedExpr(ident("t", 0, 7)))),
		clause("SET", list(cmp(ident("x", 0, 13), "=", cond))),
	)

	out, err := NewDefault().Render(stmt)
	require.NoError(t, err)
	require.Equal(t, "UPDATE\n\tt\nSET\n\tx\t=\n\t\tCASE\n\t\t\tWHEN\n\t\t\t\ta\t=\t1\n\t\t\tTHEN\n\t\t\t\t2\n\t\tEND\n", out)
}

func TestFormatter_CaseOnLeftHandSide(t *testing.T) {
	cond := NewCondExpr(ident("k", 0, 12), at(0, 7, 4))
	cond.AddWhenThen(lit("1", 0, 19), lit("'x'", 0, 26), nil, nil)
	cond.SetElse(lit("'y'", 0, 35), nil)

	item := NewAlignedExpr(cond)
	item.AddRHS("AS", ident("v", 0, 46))

	out, err := NewDefault().Render(statement(clause("SELECT", list(item))))
	require.NoError(t, err)
	require.Equal(t, "SELECT\n\tCASE k\n\t\tWHEN\n\t\t\t1\n\t\tTHEN\n\t\t\t'x'\n\t\tELSE\n\t\t\t'y'\n\tEND\n\t\tAS\tv\n", out)
}

func TestFormatter_BooleanMerge(t *testing.T) {
	inner := NewBooleanExpr()
	inner.AddExpr(cmp(ident("b", 1, 4), "=", lit("2", 1, 8)), "", nil)
	inner.AddExpr(cmp(ident("ccc", 1, 13), "!=", lit("3", 1, 20)), "or", nil)

	where := NewBooleanExpr()
	where.AddExpr(cmp(ident("a", 0, 6), "=", lit("1", 0, 10)), "", nil)
	where.AddExpr(inner, "and", nil)
	require.Equal(t, 3, where.Len())

	out, err := NewDefault().Render(statement(clause("WHERE", where)))
	require.NoError(t, err)
	require.Equal(t, "WHERE\n\ta\t=\t1\nAND\tb\t=\t2\nOR\tccc\t<>\t3\n", out)
}

func TestFormatter_BooleanMergeCopiesComments(t *testing.T) {
	keep := NewComment("-- keep", at(5, 0, 7))
	backing := []Comment{NewComment("-- outer", at(1, 0, 8)), keep}

	inner := NewBooleanExpr()
	inner.AddExpr(cmp(ident("b", 3, 0), "=", lit("2", 3, 4)), "", []Comment{NewComment("-- inner", at(2, 0, 8))})

	where := NewBooleanExpr()
	where.AddExpr(cmp(ident("a", 0, 0), "=", lit("1", 0, 4)), "", nil)
	where.Merge(inner, "and", backing[:1])

	require.Equal(t, 2, where.Len())
	require.Equal(t, keep, backing[1])
}

func TestFormatter_TrailingCommentAfterSubQuery(t *testing.T) {
	sub := statement(
		clause("SELECT", list(NewAlignedExpr(ident("b", 0, 35)))),
		clause("FROM", list(NewAlignedExpr(ident("u", 0, 42)))),
	)

	in := cmp(ident("a", 0, 22), "IN", NewSubExpr(sub, at(0, 27, 17)))
	in.SetTrailingComment(NewComment("-- c", at(0, 45, 4)))

	eq := cmp(ident("dd", 1, 4), "=", lit("1", 1, 9))
	eq.SetTrailingComment(NewComment("-- d", at(1, 11, 4)))

	where := NewBooleanExpr()
	where.AddExpr(in, "", nil)
	where.AddExpr(eq, "and", nil)

	out, err := New(noComplement()).Render(statement(clause("WHERE", where)))
	require.NoError(t, err)
	require.Equal(t,
		"WHERE\n\ta\tIN\t(\n\t\tSELECT\n\t\t\tb\n\t\tFROM\n\t\t\tu\n\t)\t\t\t-- c\nAND\tdd\t=\t1\t-- d\n",
		out,
	)
}

func TestFormatter_OperatorTabStops(t *testing.T) {
	opts := DefaultOptions()
	short := cmp(ident("a", 0, 0), "=", lit("1", 0, 4))
	long := cmp(ident("b", 1, 0), "NOT LIKE", lit("'x'", 1, 11))

	info := NewAlignInfo(opts, 1, short, long)

	maxOp, ok := info.MaxOpTab()
	require.True(t, ok)
	require.Equal(t, ToTabNum(len("NOT LIKE"), opts.TabSize), maxOp)

	_, ok = info.MaxToCommentTab()
	require.False(t, ok)

	out, err := NewDefault().Render(statement(clause("WHERE", list(short, long))))
	require.NoError(t, err)
	require.Equal(t, "WHERE\n\ta\t=\t\t\t1\n,\tb\tNOT LIKE\t'x'\n", out)
}

func TestFormatter_NoOperatorGroup(t *testing.T) {
	info := NewAlignInfo(DefaultOptions(), 1, NewAlignedExpr(ident("a", 0, 0)))

	_, ok := info.MaxOpTab()
	require.False(t, ok)
	_, ok = info.MaxToOpTab()
	require.False(t, ok)
}

func TestFormatter_LhsTrailingComment(t *testing.T) {
	t.Run("breaks before the operator", func(t *testing.T) {
		set := cmp(ident("x", 0, 4), "=", lit("1", 1, 2))
		set.SetLhsTrailingComment(NewComment("-- c", at(0, 6, 4)))

		out, err := NewDefault().Render(statement(clause("SET", list(set))))
		require.NoError(t, err)
		require.Equal(t, "SET\n\tx\t-- c\n\t=\t1\n", out)
	})

	t.Run("requires an operator", func(t *testing.T) {
		e := NewAlignedExpr(ident("x", 0, 0))
		e.SetLhsTrailingComment(NewComment("-- c", at(0, 2, 4)))

		_, err := e.Render(noComplement(), 1)
		var inv *InvariantError
		require.True(t, errors.As(err, &inv))
	})

	t.Run("requires depth", func(t *testing.T) {
		e := cmp(ident("x", 0, 0), "=", lit("1", 1, 2))
		e.SetLhsTrailingComment(NewComment("-- c", at(0, 2, 4)))

		_, err := e.Render(DefaultOptions(), 0)
		var inv *InvariantError
		require.True(t, errors.As(err, &inv))
		require.Equal(t, "depth must be > 0", inv.Msg)
	})
}

func TestFormatter_AliasRules(t *testing.T) {
	tests := []struct {
		name string
		ctx  AliasContext
		op   string
		opts *Options
		want string
	}{
		{name: "table AS removed", ctx: TableAlias, op: "AS", opts: DefaultOptions(), want: "\tt\tx\n"},
		{name: "table AS kept", ctx: TableAlias, op: "as", opts: noComplement(), want: "\tt\tAS\tx\n"},
		{name: "column AS added", ctx: ColumnAlias, op: "", opts: DefaultOptions(), want: "\tt\tAS\tx\n"},
		{name: "column AS not added", ctx: ColumnAlias, op: "", opts: noComplement(), want: "\tt\tx\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := cmp(ident("t", 0, 0), test.op, ident("x", 0, 5))
			e.SetAliasContext(test.ctx)

			out, err := list(e).Render(test.opts, 1)
			require.NoError(t, err)
			require.Equal(t, test.want, out)
		})
	}
}

func TestFormatter_SQLID(t *testing.T) {
	build := func() []*Statement {
		first := statement(clause("SELECT", list(column(lit("1", 0, 7)))))
		first.SetSemicolon(at(0, 8, 1))
		second := statement(clause("SELECT", list(column(lit("2", 1, 7)))))
		second.SetSemicolon(at(1, 8, 1))
		return []*Statement{first, second}
	}

	opts := DefaultOptions()
	opts.ComplementSQLID = true

	t.Run("inserted once", func(t *testing.T) {
		out, err := New(opts).Render(build()...)
		require.NoError(t, err)
		require.Equal(t, "SELECT /* _SQL_ID_ */\n\t1\n;\n\nSELECT\n\t2\n;\n", out)
	})

	t.Run("existing marker", func(t *testing.T) {
		stmts := build()
		stmts[1].Clauses()[0].SetSQLID(NewComment("/* _SQL_IDENTIFIER_ */", at(1, 7, 22)))

		out, err := New(opts).Render(stmts...)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n\t1\n;\n\nSELECT /* _SQL_IDENTIFIER_ */\n\t2\n;\n", out)
	})

	t.Run("not eligible", func(t *testing.T) {
		with := statement(clause("WITH", nil))

		out, err := New(opts).Render(with)
		require.NoError(t, err)
		require.Equal(t, "WITH\n", out)
	})
}

func TestFormatter_Clauses(t *testing.T) {
	t.Run("outer join", func(t *testing.T) {
		join := NewClause(at(0, 0, 4), "left", "join")
		join.SetBody(list(NewAlignedExpr(ident("t", 0, 10))))

		out, err := NewDefault().Render(statement(join))
		require.NoError(t, err)
		require.Equal(t, "LEFT OUTER JOIN\n\tt\n", out)

		out, err = New(noComplement()).Render(statement(join))
		require.NoError(t, err)
		require.Equal(t, "LEFT JOIN\n\tt\n", out)
	})

	t.Run("single line", func(t *testing.T) {
		out, err := NewDefault().Render(statement(clause("LIMIT", NewSingleLine(lit("10", 0, 6)))))
		require.NoError(t, err)
		require.Equal(t, "LIMIT\t10\n", out)
	})

	t.Run("comment before body", func(t *testing.T) {
		sel := NewClause(at(0, 0, 6), "SELECT")
		sel.AddCommentToChild(NewComment("-- c", at(0, 7, 4)))
		sel.SetBody(list(NewAlignedExpr(lit("1", 1, 0))))

		out, err := NewDefault().Render(statement(sel))
		require.NoError(t, err)
		require.Equal(t, "SELECT\n\t-- c\n\t1\n", out)
	})
}

func TestFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Format(&buf, nil, statement(clause("SELECT", list(NewAlignedExpr(lit("1", 0, 7)))))))
	require.Equal(t, "SELECT\n\t1\n", buf.String())
}
