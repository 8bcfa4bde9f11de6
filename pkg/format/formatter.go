package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Formatter renders statement trees with a fixed set of options.
type Formatter struct {
	options *Options
}

// New creates a new Formatter with the specified options
func New(options *Options) *Formatter {
	if options == nil {
		options = DefaultOptions()
	}
	return &Formatter{options: options}
}

// NewDefault creates a new Formatter with default options
func NewDefault() *Formatter {
	return New(DefaultOptions())
}

// Options returns the options used by the formatter.
func (f *Formatter) Options() *Options {
	return f.options
}

// Render renders stmts separated by a blank line. When ComplementSQLID is set
// and no statement carries a marker yet, the first SELECT, INSERT, UPDATE or
// DELETE statement receives one.
func (f *Formatter) Render(stmts ...*Statement) (string, error) {
	st := &sqlIDState{pending: f.options.ComplementSQLID}
	for _, s := range stmts {
		if s.hasSQLID() {
			st.pending = false
			break
		}
	}

	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		out, err := s.render(f.options, 0, st)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}

	text := strings.Join(parts, "\n")
	if !f.options.IndentTab {
		text = ExpandTabs(text, f.options.tabSize())
	}

	return text, nil
}

// Format writes the rendered statements to w.
func (f *Formatter) Format(w io.Writer, stmts ...*Statement) error {
	text, err := f.Render(stmts...)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, text); err != nil {
		return errors.Wrap(err, "failed to write formatted sql")
	}
	return nil
}

// Format renders stmts with opts and writes them to w (convenience function).
func Format(w io.Writer, opts *Options, stmts ...*Statement) error {
	return New(opts).Format(w, stmts...)
}
