package format

import "strings"

type line struct {
	sep       string
	expr      *AlignedExpr
	preceding []Comment
	following []Comment
}

// lines is the member list shared by SeparatedLines and BooleanExpr.
type lines struct {
	items   []*line
	pending []Comment
	loc     Location
	hasLoc  bool
}

func (l *lines) extend(loc Location) {
	if !l.hasLoc {
		l.loc = loc
		l.hasLoc = true
		return
	}
	l.loc.Append(loc)
}

// add appends a member. Comments received before the first member are
// prepended to its preceding comments, and the last preceding comment
// becomes the bind parameter of expr when it touches it.
func (l *lines) add(expr *AlignedExpr, sep string, preceding []Comment) {
	if len(l.pending) > 0 {
		preceding = append(l.pending, preceding...)
		l.pending = nil
	}

	preceding = bindLast(expr, preceding)

	for _, c := range preceding {
		l.extend(c.Loc())
	}
	l.extend(expr.Loc())

	l.items = append(l.items, &line{sep: sep, expr: expr, preceding: preceding})
}

// bindLast makes the last preceding comment the bind parameter of expr when
// it touches it and returns the comments left over.
func bindLast(expr *AlignedExpr, preceding []Comment) []Comment {
	n := len(preceding)
	if n == 0 {
		return preceding
	}
	if last := preceding[n-1]; last.IsBindParamFor(expr.Loc()) && attachBindParam(expr, last) {
		return preceding[:n-1]
	}
	return preceding
}

// addCommentToChild attaches c to the last member: as its trailing comment
// when c is a single-line comment on the row where the member ends, as a
// following comment otherwise.
func (l *lines) addCommentToChild(c Comment) {
	if len(l.items) == 0 {
		l.pending = append(l.pending, c)
		return
	}

	last := l.items[len(l.items)-1]
	if !c.IsMultiLine() &&
		last.expr.Loc().IsSameLine(c.Loc()) &&
		!last.expr.HasTrailingComment() &&
		len(last.following) == 0 {
		last.expr.SetTrailingComment(c)
	} else {
		last.following = append(last.following, c)
	}
	l.extend(c.Loc())
}

func (l *lines) hasComments() bool {
	if len(l.pending) > 0 {
		return true
	}
	for _, it := range l.items {
		if len(it.preceding) > 0 || len(it.following) > 0 || it.expr.IsMultiLine() {
			return true
		}
	}
	return false
}

func (l *lines) exprs() []*AlignedExpr {
	exprs := make([]*AlignedExpr, len(l.items))
	for i, it := range l.items {
		exprs[i] = it.expr
	}
	return exprs
}

// memberDepth is the depth where members start: one stop after the widest
// separator written at depth-1. Separators narrower than a tab stop keep it
// at depth.
func (l *lines) memberDepth(o *Options, depth int) int {
	md := depth
	for _, it := range l.items {
		md = max(md, depth-1+o.toTabNum(o.widthFrom(0, it.sep)))
	}
	return md
}

// render emits one member per line: the separator at depth-1, then tabs to
// the member column, then the member aligned against the whole group.
func (l *lines) render(o *Options, depth int, sepCase bool) (string, error) {
	if depth < 1 {
		return "", depthError()
	}

	md := l.memberDepth(o, depth)
	info := NewAlignInfo(o, md, l.exprs()...)

	var b strings.Builder
	for _, c := range l.pending {
		b.WriteString(indent(md) + c.Render(o, md) + "\n")
	}

	for _, it := range l.items {
		sep := it.sep
		if sepCase {
			sep = o.keyword(sep)
		}

		lead := indent(depth-1) + sep
		b.WriteString(lead + tabs(o.tabsTo(o.widthFrom(0, lead), md)))
		for _, c := range it.preceding {
			b.WriteString(c.Render(o, md) + "\n" + indent(md))
		}

		s, err := it.expr.RenderAlign(o, md, info)
		if err != nil {
			return "", err
		}
		b.WriteString(s + "\n")

		for _, c := range it.following {
			b.WriteString(indent(md) + c.Render(o, md) + "\n")
		}
	}

	return b.String(), nil
}
