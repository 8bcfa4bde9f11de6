package format

import "strings"

// FunctionCall is name(args) with an optional OVER(...) window.
type FunctionCall struct {
	name string
	args *ColumnList
	over []*Clause
	loc  Location
}

// NewFunctionCall creates a call. loc covers the name and arguments.
func NewFunctionCall(name string, args *ColumnList, loc Location) *FunctionCall {
	return &FunctionCall{name: name, args: args, loc: loc}
}

func (f *FunctionCall) expr() {}

// Name returns the function name as written.
func (f *FunctionCall) Name() string { return f.name }

func (f *FunctionCall) Loc() Location { return f.loc }

// SetOver sets the window clauses (PARTITION BY, ORDER BY). An empty,
// non-nil slice renders OVER().
func (f *FunctionCall) SetOver(clauses []*Clause, loc Location) {
	if clauses == nil {
		clauses = []*Clause{}
	}
	f.over = clauses
	f.loc.Append(loc)
}

func (f *FunctionCall) Render(o *Options, depth int) (string, error) {
	args, err := f.args.Render(o, depth)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(o.keyword(f.name) + args)

	if f.over == nil {
		return b.String(), nil
	}

	b.WriteString(" " + o.keyword("OVER") + "(")
	if len(f.over) == 0 {
		b.WriteString(")")
		return b.String(), nil
	}

	b.WriteString("\n")
	for _, c := range f.over {
		s, err := c.render(o, depth+1, false)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteString(indent(depth) + ")")

	return b.String(), nil
}

func (f *FunctionCall) LastLineLenFromLeft(o *Options, depth, acc int) int {
	if len(f.over) > 0 {
		return depth*o.tabSize() + 1
	}
	return lastLineByRender(o, f, depth, acc)
}

func (f *FunctionCall) IsMultiLine() bool {
	return len(f.over) > 0 || f.args.IsMultiLine()
}

func (f *FunctionCall) IsBody() bool { return false }
