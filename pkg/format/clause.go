package format

import "strings"

var outerJoinSides = map[string]bool{"LEFT": true, "RIGHT": true, "FULL": true}

// Clause is a keyword line (SELECT, FROM, LEFT JOIN, ...) and its body.
type Clause struct {
	keywords []string
	body     Body
	sqlID    *Comment
	comments []Comment
	loc      Location
}

// NewClause creates a clause from one or more keywords.
func NewClause(loc Location, keywords ...string) *Clause {
	return &Clause{keywords: keywords, loc: loc}
}

// Keyword returns the keywords joined by a space, as written.
func (c *Clause) Keyword() string {
	return strings.Join(c.keywords, " ")
}

// Loc returns the source span of the clause.
func (c *Clause) Loc() Location { return c.loc }

// Body returns the body, or nil.
func (c *Clause) Body() Body { return c.body }

// SQLID returns the statement-id marker attached to the clause, or nil.
func (c *Clause) SQLID() *Comment { return c.sqlID }

// ExtendKeyword appends a keyword (DISTINCT, ALL, RECURSIVE, ...).
func (c *Clause) ExtendKeyword(kw string, loc Location) {
	c.keywords = append(c.keywords, kw)
	c.loc.Append(loc)
}

// SetBody sets the clause body.
func (c *Clause) SetBody(b Body) {
	c.body = b
	c.loc.Append(b.Loc())
}

// SetSQLID attaches a statement-id marker.
func (c *Clause) SetSQLID(comment Comment) {
	c.sqlID = &comment
}

// AddCommentToChild hands c to the body. Comments arriving before a body is
// set are rendered below the keyword.
func (c *Clause) AddCommentToChild(comment Comment) {
	if c.body != nil {
		c.body.AddCommentToChild(comment)
	} else {
		c.comments = append(c.comments, comment)
	}
	c.loc.Append(comment.Loc())
}

func (c *Clause) keyword(o *Options) string {
	kws := c.keywords
	if o.ComplementOuterKeyword && len(kws) >= 2 &&
		outerJoinSides[strings.ToUpper(kws[0])] &&
		strings.EqualFold(kws[1], "JOIN") {
		kws = append([]string{kws[0], "OUTER"}, kws[1:]...)
	}
	return o.keyword(strings.Join(kws, " "))
}

func (c *Clause) render(o *Options, depth int, injectSQLID bool) (string, error) {
	var b strings.Builder
	b.WriteString(indent(depth))
	b.WriteString(c.keyword(o))

	switch {
	case c.sqlID != nil:
		b.WriteString(" " + c.sqlID.Text())
	case injectSQLID:
		b.WriteString(" " + SQLIDMarker)
	}

	if sl, ok := c.body.(*SingleLine); ok && len(c.comments) == 0 {
		stop := o.toTabNum(o.widthFrom(0, b.String()))
		s, err := sl.Render(o, stop)
		if err != nil {
			return "", err
		}
		b.WriteString("\t" + s)
		return b.String(), nil
	}

	b.WriteString("\n")
	for _, comment := range c.comments {
		b.WriteString(indent(depth+1) + comment.Render(o, depth+1) + "\n")
	}

	if c.body == nil {
		return b.String(), nil
	}

	s, err := c.body.Render(o, depth+1)
	if err != nil {
		return "", err
	}
	if _, ok := c.body.(*SingleLine); ok {
		s = indent(depth+1) + s
	}
	b.WriteString(s)

	return b.String(), nil
}
