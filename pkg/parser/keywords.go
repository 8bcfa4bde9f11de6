package parser

import (
	"strings"

	"github.com/pseudomuto/sqlalign/pkg/lexer"
)

// reserved words never start an alias or an identifier expression.
var reserved = toSet(
	"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CROSS", "DESC",
	"DISTINCT", "ELSE", "END", "EXCEPT", "FETCH", "FOR", "FROM", "FULL",
	"GROUP", "HAVING", "ILIKE", "IN", "INNER", "INTERSECT", "INTO", "IS",
	"JOIN", "LEFT", "LIKE", "LIMIT", "NATURAL", "NOT", "NULLS", "OFFSET",
	"ON", "OR", "ORDER", "OUTER", "OVER", "PARTITION", "RETURNING", "RIGHT",
	"SELECT", "SET", "SIMILAR", "THEN", "UNION", "USING", "VALUES", "WHEN",
	"WHERE", "WINDOW", "WITH",
)

// literalKeywords are rendered with the keyword case.
var literalKeywords = toSet(
	"NULL", "TRUE", "FALSE", "DEFAULT", "CURRENT_DATE", "CURRENT_TIME",
	"CURRENT_TIMESTAMP", "CURRENT_USER", "LOCALTIME", "LOCALTIMESTAMP",
	"SESSION_USER", "UNKNOWN",
)

// typedLiterals prefix a string literal: DATE '2024-01-01'.
var typedLiterals = toSet("DATE", "TIME", "TIMESTAMP", "INTERVAL")

var comparisonOps = toSet("=", "<>", "!=", "<", ">", "<=", ">=")

var arithmeticOps = toSet("+", "-", "*", "/", "%", "||", "&", "|", "^", "->", "->>")

var unaryOps = toSet("-", "+", "~")

var joinWords = toSet("JOIN", "INNER", "LEFT", "RIGHT", "FULL", "CROSS", "NATURAL", "OUTER")

var setOperators = toSet("UNION", "INTERSECT", "EXCEPT")

func toSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func word(t lexer.Token) string {
	if t.Kind != lexer.Ident {
		return ""
	}
	return strings.ToUpper(t.Text)
}

func isReserved(t lexer.Token) bool {
	return reserved[word(t)]
}

// isName reports whether t can start an identifier.
func isName(t lexer.Token) bool {
	switch t.Kind {
	case lexer.QuotedIdent:
		return true
	case lexer.Ident:
		return !isReserved(t)
	default:
		return false
	}
}
