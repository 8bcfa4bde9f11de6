package parser

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/pseudomuto/sqlalign/pkg/lexer"
)

// Parse reads SQL from reader and builds its statements.
func Parse(reader io.Reader) ([]*format.Statement, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sql")
	}

	return ParseString(string(data))
}

// ParseFile reads and parses the SQL file at path.
func ParseFile(path string) ([]*format.Statement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	stmts, err := ParseString(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse file: %s", path)
	}

	return stmts, nil
}

// ParseString builds the statements of src. An input holding only comments
// yields a single statement without clauses.
func ParseString(src string) ([]*format.Statement, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := newParser(tokens)
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse sql")
	}

	return stmts, nil
}

// SyntaxError reports input that does not follow the supported grammar.
type SyntaxError struct {
	Msg string
	Loc format.Location
}

func (e *SyntaxError) Error() string {
	return e.Loc.String() + ": " + e.Msg
}

// parser walks the non-comment tokens. comments[i] holds the comments
// written before tokens[i]; the last token is an EOF sentinel.
type parser struct {
	tokens   []lexer.Token
	comments [][]format.Comment
	sqlID    []bool
	pos      int
}

func newParser(all []lexer.Token) *parser {
	p := &parser{}

	var pending []format.Comment
	for _, t := range all {
		if t.IsComment() {
			pending = append(pending, t.Comment())
			continue
		}
		p.tokens = append(p.tokens, t)
		p.comments = append(p.comments, pending)
		p.sqlID = append(p.sqlID, containsSQLID(pending))
		pending = nil
	}

	eof := lexer.Token{}
	if n := len(all); n > 0 {
		end := all[n-1].Loc.End
		eof.Loc = format.Location{Start: end, End: end}
	}
	p.tokens = append(p.tokens, eof)
	p.comments = append(p.comments, pending)
	p.sqlID = append(p.sqlID, containsSQLID(pending))

	return p
}

func containsSQLID(cs []format.Comment) bool {
	for _, c := range cs {
		if c.IsSQLID() {
			return true
		}
	}
	return false
}

// sqlIDWithin reports whether a statement-id marker was written before any
// token in positions from..to, inclusive.
func (p *parser) sqlIDWithin(from, to int) bool {
	for i := from; i <= to && i < len(p.sqlID); i++ {
		if p.sqlID[i] {
			return true
		}
	}
	return false
}

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) lexer.Token {
	if i := p.pos + n; i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) eof() bool {
	return p.pos == len(p.tokens)-1
}

// at reports whether the next token is one of texts.
func (p *parser) at(texts ...string) bool {
	t := p.peek()
	for _, text := range texts {
		if t.Is(text) {
			return true
		}
	}
	return false
}

// atSeq reports whether the next tokens are texts, in order.
func (p *parser) atSeq(texts ...string) bool {
	for i, text := range texts {
		if !p.peekAt(i).Is(text) {
			return false
		}
	}
	return true
}

func (p *parser) next() lexer.Token {
	t := p.tokens[p.pos]
	if !p.eof() {
		p.pos++
	}
	return t
}

// expect consumes the next token if it is text.
func (p *parser) expect(text string) (lexer.Token, error) {
	if !p.at(text) {
		return lexer.Token{}, p.unexpected(text)
	}
	return p.next(), nil
}

func (p *parser) unexpected(want string) error {
	t := p.peek()
	found := t.Text
	if p.eof() {
		found = "end of input"
	}
	return errors.WithStack(&SyntaxError{
		Msg: "expected " + want + ", found " + found,
		Loc: t.Loc,
	})
}

func (p *parser) unimplemented(construct string) error {
	return format.NewUnimplementedError(construct, p.peek().Loc)
}

// hasComments reports whether comments precede the next token.
func (p *parser) hasComments() bool {
	return len(p.comments[p.pos]) > 0
}

// takeComments removes and returns the comments before the next token.
func (p *parser) takeComments() []format.Comment {
	cs := p.comments[p.pos]
	p.comments[p.pos] = nil
	return cs
}

// leadingComments is takeComments, except that a bind parameter touching the
// next token is left for the value it belongs to.
func (p *parser) leadingComments() []format.Comment {
	cs := p.comments[p.pos]
	if n := len(cs); n > 0 && cs[n-1].IsBindParamFor(p.peek().Loc) {
		p.comments[p.pos] = cs[n-1:]
		return cs[:n-1]
	}
	p.comments[p.pos] = nil
	return cs
}

// trailingComments removes and returns the single-line comments written on
// the row where loc ends. Comments on later rows stay for the next token.
func (p *parser) trailingComments(loc format.Location) []format.Comment {
	cs := p.comments[p.pos]

	n := 0
	for n < len(cs) && !cs[n].IsMultiLine() && loc.IsSameLine(cs[n].Loc()) {
		n++
	}

	p.comments[p.pos] = cs[n:]
	return cs[:n]
}

// noComments fails when comments precede the next token; used where the tree
// has nowhere to keep them.
func (p *parser) noComments() error {
	if p.hasComments() {
		c := p.comments[p.pos][0]
		return format.NewUnimplementedError("comment in this position", c.Loc())
	}
	return nil
}

// commaComments handles the comments after a comma. A plain line comment on
// the comma's row is handed to attach (it trails the previous member); the
// rest are returned for the next member.
func (p *parser) commaComments(comma lexer.Token, attach func(format.Comment)) []format.Comment {
	cs := p.takeComments()
	if len(cs) > 0 && !cs[0].IsBlock() && !cs[0].IsHint() && comma.Loc.IsSameLine(cs[0].Loc()) {
		attach(cs[0])
		cs = cs[1:]
	}
	return cs
}

func span(start, end format.Location) format.Location {
	return format.Location{Start: start.Start, End: end.End}
}
