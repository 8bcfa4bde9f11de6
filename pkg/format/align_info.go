package format

// AlignInfo holds the padding widths shared by a group of AlignedExpr
// rendered together. Every width is measured in tab stops from the start of
// the line. A missing width means no member of the group has that feature
// and the corresponding padding pass is skipped.
type AlignInfo struct {
	maxOpTab        *int
	maxToOpTab      *int
	maxToCommentTab *int
}

// NewAlignInfo computes the shared widths for exprs rendered at depth.
func NewAlignInfo(o *Options, depth int, exprs ...*AlignedExpr) *AlignInfo {
	info := &AlignInfo{}

	for _, e := range exprs {
		op, rhs := e.effective(o)
		if rhs == nil {
			continue
		}

		info.maxOpTab = maxOf(info.maxOpTab, o.toTabNum(o.widthFrom(0, op)))

		switch {
		case isCond(e.lhs):
			// CASE breaks the line before its operator
		case e.lhsTrailing != nil:
			info.maxToOpTab = maxOf(info.maxToOpTab, depth)
		default:
			info.maxToOpTab = maxOf(info.maxToOpTab, o.toTabNum(e.lhsEnd(o, depth)))
		}
	}

	hasComment := false
	for _, e := range exprs {
		if e.trailing != nil {
			hasComment = true
			break
		}
	}
	if !hasComment {
		return info
	}

	for _, e := range exprs {
		col, err := e.endColumn(o, depth, info)
		if err != nil {
			// surfaced again by the render itself
			continue
		}
		info.maxToCommentTab = maxOf(info.maxToCommentTab, o.toTabNum(col))
	}

	return info
}

func maxOf(cur *int, v int) *int {
	if cur == nil || v > *cur {
		return &v
	}
	return cur
}

// MaxOpTab returns the widest operator, in tab stops.
func (i *AlignInfo) MaxOpTab() (int, bool) {
	if i == nil || i.maxOpTab == nil {
		return 0, false
	}
	return *i.maxOpTab, true
}

// MaxToOpTab returns the tab stop where operators start.
func (i *AlignInfo) MaxToOpTab() (int, bool) {
	if i == nil || i.maxToOpTab == nil {
		return 0, false
	}
	return *i.maxToOpTab, true
}

// MaxToCommentTab returns the tab stop where trailing comments start.
func (i *AlignInfo) MaxToCommentTab() (int, bool) {
	if i == nil || i.maxToCommentTab == nil {
		return 0, false
	}
	return *i.maxToCommentTab, true
}

func (i *AlignInfo) toOp(depth int) int {
	if v, ok := i.MaxToOpTab(); ok {
		return v
	}
	return depth
}

func (i *AlignInfo) withoutComments() *AlignInfo {
	if i == nil {
		return nil
	}
	return &AlignInfo{maxOpTab: i.maxOpTab, maxToOpTab: i.maxToOpTab}
}
