package parser_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/format"
	. "github.com/pseudomuto/sqlalign/pkg/parser"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, src string, opts *format.Options) string {
	t.Helper()

	stmts, err := ParseString(src)
	require.NoError(t, err)

	out, err := format.New(opts).Render(stmts...)
	require.NoError(t, err)
	return out
}

func reflow() *format.Options {
	return format.DefaultOptions().NeverComplement()
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "select with conditions",
			sql:  "select a, b from t where x = 1 and y <> 2;",
			want: "SELECT\n\ta\n,\tb\nFROM\n\tt\nWHERE\n\tx\t=\t1\nAND\ty\t<>\t2\n;\n",
		},
		{
			name: "in list and between",
			sql:  "SELECT a FROM t WHERE a IN (1, 2) AND b BETWEEN 1 AND 10",
			want: "SELECT\n\ta\nFROM\n\tt\nWHERE\n\ta\tIN\t\t(1, 2)\nAND\tb\tBETWEEN\t1 AND 10\n",
		},
		{
			name: "parenthesized condition",
			sql:  "SELECT a FROM t WHERE (a = 1 OR b = 2) AND c = 3",
			want: "SELECT\n\ta\nFROM\n\tt\nWHERE\n\t(\n\t\ta\t=\t1\n\tOR\tb\t=\t2\n\t)\nAND\tc\t=\t3\n",
		},
		{
			name: "sub-query in from",
			sql:  "SELECT a FROM (SELECT b FROM u) x",
			want: "SELECT\n\ta\nFROM\n\t(\n\t\tSELECT\n\t\t\tb\n\t\tFROM\n\t\t\tu\n\t)\tx\n",
		},
		{
			name: "case expression",
			sql:  "SELECT CASE WHEN a = 1 THEN 'x' END FROM t",
			want: "SELECT\n\tCASE\n\t\tWHEN\n\t\t\ta\t=\t1\n\t\tTHEN\n\t\t\t'x'\n\tEND\nFROM\n\tt\n",
		},
		{
			name: "comment only",
			sql:  "-- nothing here\n",
			want: "-- nothing here\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, render(t, test.sql, reflow()))
		})
	}
}

func TestParseString_Comments(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "trailing comment stays on its member",
			sql:  "SELECT a -- c\nFROM t",
			want: "SELECT\n\ta\t-- c\nFROM\n\tt\n",
		},
		{
			name: "comment after comma belongs to the previous member",
			sql:  "SELECT a, -- c\n b FROM t",
			want: "SELECT\n\ta\t-- c\n,\tb\nFROM\n\tt\n",
		},
		{
			name: "bind parameter",
			sql:  "SELECT * FROM t WHERE id = /*id*/1",
			want: "SELECT\n\t*\nFROM\n\tt\nWHERE\n\tid\t=\t/*id*/1\n",
		},
		{
			name: "bind parameter on a column",
			sql:  "SELECT /*param*/1",
			want: "SELECT\n\t/*param*/1\n",
		},
		{
			name: "statement id marker",
			sql:  "SELECT /* _SQL_ID_ */ a FROM t",
			want: "SELECT /* _SQL_ID_ */\n\ta\nFROM\n\tt\n",
		},
		{
			name: "comments trailing case branches",
			sql:  "SELECT CASE WHEN a = 1 -- d\nTHEN 1 -- e\nELSE 2 -- f\nEND FROM t",
			want: "SELECT\n\tCASE\n\t\tWHEN\n\t\t\ta\t=\t1\t-- d\n\t\tTHEN\n\t\t\t1\t-- e\n\t\tELSE\n\t\t\t2\t-- f\n\tEND\nFROM\n\tt\n",
		},
		{
			name: "comment trailing a parenthesized value",
			sql:  "SELECT (a -- c\n) FROM t",
			want: "SELECT\n\t(\n\t\ta\t-- c\n\t)\nFROM\n\tt\n",
		},
		{
			name: "comments around semicolons",
			sql:  "SELECT 1; -- one\n-- two\nSELECT 2",
			want: "SELECT\n\t1\n;\t-- one\n\n-- two\nSELECT\n\t2\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, render(t, test.sql, reflow()))
		})
	}
}

func TestParseString_Statements(t *testing.T) {
	stmts, err := ParseString("SELECT 1;\nINSERT INTO t (a) VALUES (1);\nUPDATE t SET a = 2;\nDELETE FROM t")
	require.NoError(t, err)
	require.Len(t, stmts, 4)

	keywords := make([]string, 0, len(stmts))
	for _, s := range stmts {
		keywords = append(keywords, s.Clauses()[0].Keyword())
	}
	require.Equal(t, []string{"SELECT", "INSERT INTO", "UPDATE", "DELETE"}, keywords)

	require.True(t, stmts[0].HasSemicolon())
	require.False(t, stmts[3].HasSemicolon())
}

func TestParseString_WithBeforeDML(t *testing.T) {
	tests := []struct {
		sql  string
		want []string
	}{
		{sql: "WITH x AS (SELECT 1) INSERT INTO t SELECT * FROM x", want: []string{"WITH", "INSERT INTO", "SELECT", "FROM"}},
		{sql: "WITH x AS (SELECT 1) UPDATE t SET a = 1", want: []string{"WITH", "UPDATE", "SET"}},
		{sql: "WITH x AS (SELECT 1) DELETE FROM t", want: []string{"WITH", "DELETE", "FROM"}},
	}

	for _, test := range tests {
		t.Run(test.sql, func(t *testing.T) {
			stmts, err := ParseString(test.sql)
			require.NoError(t, err)
			require.Len(t, stmts, 1)

			keywords := make([]string, 0, len(test.want))
			for _, c := range stmts[0].Clauses() {
				keywords = append(keywords, c.Keyword())
			}
			require.Equal(t, test.want, keywords)
		})
	}
}

func TestParseString_ExistingSQLID(t *testing.T) {
	opts := reflow()
	opts.ComplementSQLID = true

	tests := []struct {
		name string
		sql  string
	}{
		{name: "inside a sub-query", sql: "SELECT a FROM (SELECT /* _SQL_ID_ */ b FROM u) x"},
		{name: "trailing the statement", sql: "SELECT a FROM t WHERE a = 1 /* _SQL_ID_ */"},
		{name: "after the semicolon", sql: "SELECT a FROM t; /* _SQL_ID_ */"},
		{name: "after the last statement", sql: "SELECT a FROM t;\n/* _SQL_ID_ */\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := render(t, test.sql, opts)
			require.Equal(t, 1, strings.Count(out, "_SQL_ID_"), out)
		})
	}

	t.Run("still inserted when absent", func(t *testing.T) {
		out := render(t, "SELECT a FROM (SELECT b FROM u) x", opts)
		require.Equal(t, 1, strings.Count(out, "_SQL_ID_"), out)
	})
}

func TestParseString_Errors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := ParseString("SELECT FROM t")
		require.Error(t, err)

		var syntaxErr *SyntaxError
		require.True(t, errors.As(err, &syntaxErr))
		require.Contains(t, syntaxErr.Msg, "expected expression")
	})

	t.Run("unsupported statement", func(t *testing.T) {
		_, err := ParseString("CREATE TABLE t (a int)")
		require.Error(t, err)

		var unimpl *format.UnimplementedError
		require.True(t, errors.As(err, &unimpl))
	})

	t.Run("comment inside expression", func(t *testing.T) {
		_, err := ParseString("SELECT a + /* x */ /* y */ b FROM t")
		require.Error(t, err)

		var unimpl *format.UnimplementedError
		require.True(t, errors.As(err, &unimpl))
	})

	t.Run("lexer", func(t *testing.T) {
		_, err := ParseString("SELECT 'unterminated")
		require.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	stmts, err := Parse(strings.NewReader("SELECT a FROM t"))
	require.NoError(t, err)
	require.Len(t, stmts, 1)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(path, []byte("SELECT a FROM t;\n"), 0o600))

	stmts, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.sql"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read file")
}
