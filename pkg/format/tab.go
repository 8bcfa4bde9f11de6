package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ToTabNum converts a width into the number of tab stops it occupies. Every
// non-empty field occupies at least one whole stop:
//
//	ToTabNum(0, 4) == 0
//	ToTabNum(3, 4) == 1
//	ToTabNum(4, 4) == 2
func ToTabNum(width, tabSize int) int {
	if width == 0 {
		return 0
	}
	return width/tabSize + 1
}

func (o *Options) toTabNum(width int) int {
	return ToTabNum(width, o.tabSize())
}

// indent returns depth tab characters.
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("\t", depth)
}

// tabs returns n tab characters, or nothing for n <= 0.
func tabs(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("\t", n)
}

// tabsTo is the number of tabs needed to move from column col to tab stop
// number stop.
func (o *Options) tabsTo(col, stop int) int {
	return stop - col/o.tabSize()
}

// widthFrom returns the column reached after writing s starting at column
// acc. Tabs advance to the next stop and newlines reset the column.
func (o *Options) widthFrom(acc int, s string) int {
	ts := o.tabSize()
	col := acc
	for _, r := range s {
		switch r {
		case '\n':
			col = 0
		case '\t':
			col = (col/ts + 1) * ts
		default:
			col += runewidth.RuneWidth(r)
		}
	}
	return col
}

// leadingWidth is the tab-aware width of the leading whitespace of s.
func (o *Options) leadingWidth(s string) int {
	trimmed := strings.TrimLeft(s, " \t")
	return o.widthFrom(0, s[:len(s)-len(trimmed)])
}

// whitespace renders a run of leading whitespace width columns wide.
func (o *Options) whitespace(width int) string {
	ts := o.tabSize()
	return tabs(width/ts) + strings.Repeat(" ", width%ts)
}

// lastLineWidth is the column at which the final line of a rendered,
// multi-line string ends.
func (o *Options) lastLineWidth(s string) int {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return o.widthFrom(0, s)
}

// ExpandTabs replaces every tab with the spaces needed to reach the next tab
// stop, so the layout is identical whether tabs or spaces are used.
func ExpandTabs(text string, tabSize int) string {
	if tabSize <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	col := 0
	for _, r := range text {
		switch r {
		case '\n':
			b.WriteRune(r)
			col = 0
		case '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}

	return b.String()
}

// LongLines returns the 1-based numbers of lines wider than
// MaxCharPerLine. It is informational only; nothing is rewrapped.
func LongLines(text string, opts *Options) []int {
	if opts == nil || opts.MaxCharPerLine < 0 {
		return nil
	}

	var long []int
	for i, line := range strings.Split(text, "\n") {
		if opts.widthFrom(0, line) > opts.MaxCharPerLine {
			long = append(long, i+1)
		}
	}
	return long
}
