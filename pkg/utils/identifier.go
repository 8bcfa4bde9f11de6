package utils

import "strings"

// IsQuoted checks if a single identifier part is wrapped in double quotes or
// backticks. Quoted identifiers are case-sensitive and must never be case
// converted.
//
// Examples:
//   - `"UserId"` -> true
//   - "`order`" -> true
//   - "user_id" -> false
//   - `"a"."b"` -> false (qualified name, not a single quoted part)
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}

	q := s[0]
	if (q != '"' && q != '`') || s[len(s)-1] != q {
		return false
	}

	return !strings.ContainsRune(s[1:len(s)-1], rune(q))
}

// SplitQualified splits a dotted identifier into its parts while respecting
// quoted parts that contain dots.
//
// Examples:
//   - "db.tbl.col" -> ["db", "tbl", "col"]
//   - `t."a.b"` -> ["t", `"a.b"`]
//   - "" -> []
func SplitQualified(name string) []string {
	if name == "" {
		return nil
	}

	var (
		parts []string
		start int
		quote byte
	)

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '`':
			quote = c
		case c == '.':
			parts = append(parts, name[start:i])
			start = i + 1
		}
	}

	return append(parts, name[start:])
}

// LastSegment returns the last part of a dotted identifier.
//
// Examples:
//   - "tbl.col" -> "col"
//   - "col" -> "col"
//   - `t."Col"` -> `"Col"`
func LastSegment(name string) string {
	parts := SplitQualified(name)
	if len(parts) == 0 {
		return ""
	}

	return parts[len(parts)-1]
}

// MapUnquoted applies fn to every unquoted part of a dotted identifier and
// joins the result back together. Quoted parts are left untouched.
func MapUnquoted(name string, fn func(string) string) string {
	parts := SplitQualified(name)
	for i, part := range parts {
		if !IsQuoted(part) {
			parts[i] = fn(part)
		}
	}

	return strings.Join(parts, ".")
}
