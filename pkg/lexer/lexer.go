// Package lexer splits SQL text into the leaf tokens used to build statement
// trees and to compare a formatted statement against its source.
package lexer

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/format"
)

// Kind is the class of a token. Validation compares kinds, not text.
type Kind string

const (
	LineComment  Kind = "LineComment"
	BlockComment Kind = "BlockComment"
	String       Kind = "String"
	QuotedIdent  Kind = "QuotedIdent"
	Number       Kind = "Number"
	Ident        Kind = "Ident"
	Param        Kind = "Param"
	Operator     Kind = "Operator"
	Punct        Kind = "Punct"
)

var (
	// sqlLexer defines the lexer for SQL statements. Rules are tried in order.
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `\s+`},
		{Name: string(LineComment), Pattern: `--[^\r\n]*`},
		{Name: string(BlockComment), Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: string(String), Pattern: `[eEnN]?'([^']|'')*'`},
		{Name: string(QuotedIdent), Pattern: "\"([^\"]|\"\")*\"|`[^`]*`"},
		{Name: string(Number), Pattern: `(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`},
		{Name: string(Ident), Pattern: `[\p{L}_][\p{L}\p{N}_$#]*`},
		{Name: string(Param), Pattern: `[:@$][\p{L}\p{N}_]+|\?`},
		{Name: string(Operator), Pattern: `::|<>|!=|<=|>=|\|\||->>|->|=>`},
		{Name: string(Punct), Pattern: `[(),.;=+\-*/%<>!~^&|\[\]]`},
	})

	kinds = func() map[lexer.TokenType]Kind {
		m := make(map[lexer.TokenType]Kind)
		for name, tt := range sqlLexer.Symbols() {
			m[tt] = Kind(name)
		}
		return m
	}()

	whitespace = sqlLexer.Symbols()["Whitespace"]
)

// Token is a single non-whitespace token.
type Token struct {
	Kind Kind
	Text string
	Loc  format.Location
}

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == BlockComment
}

// Comment converts a comment token.
func (t Token) Comment() format.Comment {
	return format.NewComment(t.Text, t.Loc)
}

// Is reports whether the token is the given keyword or punctuation,
// ignoring case.
func (t Token) Is(text string) bool {
	switch t.Kind {
	case Ident, Operator, Punct:
		return strings.EqualFold(t.Text, text)
	default:
		return false
	}
}

func (t Token) String() string {
	return string(t.Kind) + "(" + t.Text + ")@" + t.Loc.String()
}

// Tokenize splits src into tokens. Whitespace is dropped; comments are kept.
func Tokenize(src string) ([]Token, error) {
	lex, err := sqlLexer.LexString("", src)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize sql")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize sql")
	}

	pos := newPositioner(src)
	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() || t.Type == whitespace {
			continue
		}

		start := pos.at(t.Pos.Offset)
		end := pos.at(t.Pos.Offset + len(t.Value))
		tokens = append(tokens, Token{
			Kind: kinds[t.Type],
			Text: t.Value,
			Loc: format.Location{
				Start: start,
				End:   end,
			},
		})
	}

	return tokens, nil
}

// positioner maps byte offsets to rows and rune columns.
type positioner struct {
	src        string
	lineStarts []int
}

func newPositioner(src string) *positioner {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &positioner{src: src, lineStarts: starts}
}

func (p *positioner) at(offset int) format.Position {
	row := sort.Search(len(p.lineStarts), func(i int) bool {
		return p.lineStarts[i] > offset
	}) - 1

	return format.Position{
		Row: row,
		Col: utf8.RuneCountInString(p.src[p.lineStarts[row]:offset]),
	}
}
