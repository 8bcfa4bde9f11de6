// Package parser builds format statement trees from SQL text.
//
// The parser is a small recursive-descent builder over lexer tokens. It
// covers the common DML surface (SELECT with joins, set operators and
// CTEs, INSERT, UPDATE, DELETE) and the expression forms they use. Anything
// else is reported with a *format.UnimplementedError so callers can leave the
// source untouched.
//
// Comments never reach the grammar. They are buffered in front of the token
// they precede and placed once the surrounding construct is known:
//
//   - a block comment touching the following value becomes its bind
//     parameter (/*id*/1)
//   - a comment on the row where a list member ends becomes that member's
//     trailing comment, including a line comment written after the comma
//   - a statement-id marker right after the first keyword is kept on the
//     clause
//   - everything else is rendered on its own line where it was written
//
// Basic usage:
//
//	stmts, err := parser.ParseString("select a, b from t where x = /*x*/1")
//	if err != nil {
//		return err
//	}
//
//	out, err := format.NewDefault().Render(stmts...)
package parser
