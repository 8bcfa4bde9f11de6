// Package format renders SQL statement trees into an aligned, tab-stop based
// layout.
//
// A tree is built by an adapter (see the parser package) out of Statement,
// Clause, Body and Expr values with every comment already attached. Rendering
// is a pure function of the tree and an Options value:
//
//   - every clause keyword sits on its own line and its body is indented one
//     level deeper
//   - list members start with their separator (",", AND, OR) followed by a
//     tab, so the members themselves line up
//   - operators, aliases and trailing comments of sibling members are aligned
//     on shared tab stops computed by AlignInfo
//   - bind parameters (/*name*/value) stay glued to their value and hints are
//     never rewritten
//
// Example:
//
//	stmts, err := parser.ParseString("select a, bbbbb as b from t")
//	if err != nil {
//		return err
//	}
//
//	out, err := format.NewDefault().Render(stmts...)
//
// Output (tabs expanded to spaces):
//
//	SELECT
//	    a       AS  a
//	,   bbbbb   AS  b
//	FROM
//	    t
//
// Widths are always measured in whole tab stops, so the same text aligns
// whether it is written with tabs or expanded to spaces (IndentTab).
package format
