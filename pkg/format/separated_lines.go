package format

// SeparatedLines is a comma separated list rendered one member per line with
// the separator leading each line after the first.
type SeparatedLines struct {
	lines
}

// NewSeparatedLines creates an empty list.
func NewSeparatedLines() *SeparatedLines {
	return &SeparatedLines{}
}

func (s *SeparatedLines) body() {}

// Loc returns the span of every member and comment added so far.
func (s *SeparatedLines) Loc() Location { return s.loc }

// Len returns the number of members.
func (s *SeparatedLines) Len() int { return len(s.items) }

// AddExpr appends expr. sep is empty for the first member.
func (s *SeparatedLines) AddExpr(expr *AlignedExpr, sep string, preceding []Comment) {
	s.add(expr, sep, preceding)
}

// AddCommentToChild attaches c to the last member added.
func (s *SeparatedLines) AddCommentToChild(c Comment) {
	s.addCommentToChild(c)
}

func (s *SeparatedLines) Render(o *Options, depth int) (string, error) {
	return s.render(o, depth, false)
}
