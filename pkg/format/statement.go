package format

import "strings"

var sqlIDKeywords = map[string]bool{
	"SELECT": true,
	"INSERT": true,
	"UPDATE": true,
	"DELETE": true,
}

// sqlIDState tracks statement-id completion for one Render call.
type sqlIDState struct {
	pending bool
}

// Statement is an ordered list of clauses with optional leading comments, a
// terminating semicolon and comments after it.
type Statement struct {
	clauses   []*Clause
	leading   []Comment
	semicolon *Location
	trailing  []Comment
	following []Comment
	sqlIDSeen bool
	loc       Location
	hasLoc    bool
}

// NewStatement creates an empty statement.
func NewStatement() *Statement {
	return &Statement{}
}

func (s *Statement) extend(loc Location) {
	if !s.hasLoc {
		s.loc = loc
		s.hasLoc = true
		return
	}
	s.loc.Append(loc)
}

// Loc returns the source span of the statement.
func (s *Statement) Loc() Location { return s.loc }

// Clauses returns the clauses in order.
func (s *Statement) Clauses() []*Clause { return s.clauses }

// HasSemicolon reports whether the statement is terminated.
func (s *Statement) HasSemicolon() bool { return s.semicolon != nil }

// AddClause appends a clause.
func (s *Statement) AddClause(c *Clause) {
	s.clauses = append(s.clauses, c)
	s.extend(c.Loc())
}

// SetSemicolon marks the statement as terminated at loc.
func (s *Statement) SetSemicolon(loc Location) {
	s.semicolon = &loc
	s.extend(loc)
}

// AddCommentToChild attaches c to the statement. Before any clause it is a
// leading comment. After the semicolon it stays on the semicolon line when it
// starts there and is rendered below otherwise. Anything else goes to the
// last clause.
func (s *Statement) AddCommentToChild(c Comment) {
	defer s.extend(c.Loc())

	switch {
	case s.semicolon != nil:
		if len(s.following) == 0 && s.semicolon.IsSameLine(c.Loc()) && !c.IsMultiLine() {
			s.trailing = append(s.trailing, c)
			return
		}
		s.following = append(s.following, c)
	case len(s.clauses) == 0:
		s.leading = append(s.leading, c)
	default:
		s.clauses[len(s.clauses)-1].AddCommentToChild(c)
	}
}

// MarkSQLID records that a statement-id marker was written somewhere in the
// statement, including places the tree keeps as ordinary comments such as
// sub-queries or trailing comments.
func (s *Statement) MarkSQLID() {
	s.sqlIDSeen = true
}

// hasSQLID reports whether a statement-id marker is already present.
func (s *Statement) hasSQLID() bool {
	if s.sqlIDSeen {
		return true
	}
	for _, c := range s.leading {
		if c.IsSQLID() {
			return true
		}
	}
	for _, c := range s.clauses {
		if c.sqlID != nil {
			return true
		}
	}
	return false
}

func (s *Statement) acceptsSQLID() bool {
	if len(s.clauses) == 0 || len(s.clauses[0].keywords) == 0 {
		return false
	}
	return sqlIDKeywords[strings.ToUpper(s.clauses[0].keywords[0])]
}

func (s *Statement) render(o *Options, depth int, st *sqlIDState) (string, error) {
	var b strings.Builder

	for _, c := range s.leading {
		b.WriteString(indent(depth) + c.Render(o, depth) + "\n")
	}

	inject := st != nil && st.pending && s.acceptsSQLID()
	if inject {
		st.pending = false
	}

	for i, c := range s.clauses {
		out, err := c.render(o, depth, inject && i == 0)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}

	if s.semicolon != nil {
		b.WriteString(indent(depth) + ";")
		for _, c := range s.trailing {
			b.WriteString("\t" + c.Text())
		}
		b.WriteString("\n")
	}

	for _, c := range s.following {
		b.WriteString(indent(depth) + c.Render(o, depth) + "\n")
	}

	return b.String(), nil
}
