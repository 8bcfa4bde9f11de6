package format

import "strings"

// Body is the content of a clause. Implementations render complete lines,
// including leading indentation and the final newline, except SingleLine
// which continues the keyword line.
//
// Variants: *SeparatedLines, *BooleanExpr and *SingleLine.
type Body interface {
	Loc() Location
	Render(o *Options, depth int) (string, error)
	AddCommentToChild(c Comment)

	body()
}

// SingleLine is a body rendered on the same line as its clause keyword, such
// as the value of LIMIT.
type SingleLine struct {
	expr      *AlignedExpr
	following []Comment
	loc       Location
}

// NewSingleLine creates a single line body.
func NewSingleLine(expr Expr) *SingleLine {
	a := toAligned(expr)
	return &SingleLine{expr: a, loc: a.Loc()}
}

func (s *SingleLine) body() {}

func (s *SingleLine) Loc() Location { return s.loc }

// Expr returns the wrapped expression.
func (s *SingleLine) Expr() *AlignedExpr { return s.expr }

// AddCommentToChild makes c the trailing comment when it is on the same row,
// a following comment otherwise.
func (s *SingleLine) AddCommentToChild(c Comment) {
	if !c.IsMultiLine() &&
		s.expr.Loc().IsSameLine(c.Loc()) &&
		!s.expr.HasTrailingComment() &&
		len(s.following) == 0 {
		s.expr.SetTrailingComment(c)
	} else {
		s.following = append(s.following, c)
	}
	s.loc.Append(c.Loc())
}

// Render renders the expression assuming it starts at tab stop depth of the
// current line, followed by its comments on separate lines.
func (s *SingleLine) Render(o *Options, depth int) (string, error) {
	out, err := s.expr.Render(o, depth)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(out + "\n")
	for _, c := range s.following {
		b.WriteString(indent(depth) + c.Render(o, depth) + "\n")
	}
	return b.String(), nil
}
