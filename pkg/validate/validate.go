package validate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/compare"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/pseudomuto/sqlalign/pkg/lexer"
)

// ValidationError reports that the formatted text is not token-equivalent to
// its source.
type ValidationError struct {
	// FormatResult is the formatted text that failed validation.
	FormatResult string
	// ErrorMsg is a human readable description with a source excerpt.
	ErrorMsg string
}

func (e *ValidationError) Error() string {
	return e.ErrorMsg
}

// Tokens flattens src into its ordered leaf tokens, comments included.
func Tokens(src string) ([]lexer.Token, error) {
	return lexer.Tokenize(src)
}

// SwapCommaComment returns a copy of tokens where every comma directly
// followed by a plain line comment on the same row is swapped with that
// comment.
func SwapCommaComment(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, len(tokens))
	copy(out, tokens)

	for i := 0; i+1 < len(out); i++ {
		comma, next := out[i], out[i+1]
		if !comma.Is(",") || next.Kind != lexer.LineComment {
			continue
		}
		if next.Comment().IsHint() || !comma.Loc.IsSameLine(next.Loc) {
			continue
		}

		out[i], out[i+1] = next, comma
		i++
	}

	return out
}

func isHint(t lexer.Token) bool {
	return t.IsComment() && t.Comment().IsHint()
}

func equivalent(src, formatted lexer.Token) bool {
	if src.Kind != formatted.Kind {
		return false
	}
	return !isHint(src) || isHint(formatted)
}

// Validate compares the tokens of src and formatted. It returns a
// *ValidationError carrying formatted and an annotated excerpt when they
// differ.
func Validate(src, formatted string, opts *format.Options) error {
	want, err := Tokens(src)
	if err != nil {
		return errors.Wrap(err, "failed to tokenize source")
	}

	got, err := Tokens(formatted)
	if err != nil {
		return errors.Wrap(err, "failed to tokenize formatted output")
	}

	want = SwapCommaComment(want)

	i, mismatch := compare.FirstMismatch(want, got, equivalent)
	if !mismatch {
		return nil
	}

	if opts != nil && opts.Debug {
		slog.Debug("round-trip token streams differ",
			"index", i,
			"diff", cmp.Diff(summarize(want), summarize(got)),
		)
	}

	return errors.WithStack(&ValidationError{
		FormatResult: formatted,
		ErrorMsg:     describe(src, formatted, want, got, i),
	})
}

func describe(src, formatted string, want, got []lexer.Token, i int) string {
	switch {
	case i >= len(got):
		t := want[i]
		return Annotate(src, t.Loc, fmt.Sprintf("%s %q is missing from the formatted output", t.Kind, t.Text))
	case i >= len(want):
		t := got[i]
		return Annotate(formatted, t.Loc, fmt.Sprintf("unexpected %s %q in the formatted output", t.Kind, t.Text))
	}

	w, g := want[i], got[i]
	label := fmt.Sprintf("expected %s %q, formatted output has %s %q", w.Kind, w.Text, g.Kind, g.Text)
	if w.Kind == g.Kind {
		label = fmt.Sprintf("hint comment %q lost its sigil (%q)", w.Text, g.Text)
	}

	return Annotate(src, w.Loc, label) + "\n" + Annotate(formatted, g.Loc, "formatted here")
}

// summarize renders tokens as Kind(text), one per entry, for diffing.
func summarize(tokens []lexer.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t.Kind) + "(" + t.Text + ")"
	}
	return out
}

// Annotate renders the source line holding loc with a caret underline and
// label:
//
//	   3 | WHERE a == 1
//	     |         ^^ label
func Annotate(src string, loc format.Location, label string) string {
	lines := strings.Split(src, "\n")

	row := loc.Start.Row
	if row < 0 || row >= len(lines) {
		return label
	}
	line := strings.TrimRight(lines[row], "\r")
	runes := []rune(line)

	start := min(loc.Start.Col, len(runes))
	end := len(runes)
	if loc.End.Row == loc.Start.Row {
		end = min(loc.End.Col, len(runes))
	}
	width := max(end-start, 1)

	var pad strings.Builder
	for _, r := range runes[:start] {
		if r == '\t' {
			pad.WriteRune('\t')
		} else {
			pad.WriteByte(' ')
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%4d | %s\n", row+1, line)
	fmt.Fprintf(&b, "%4s | %s%s %s\n", "", pad.String(), strings.Repeat("^", width), label)

	return b.String()
}
