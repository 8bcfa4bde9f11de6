package sqlfmt

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlalign/pkg/format"
	"github.com/pseudomuto/sqlalign/pkg/parser"
	"github.com/pseudomuto/sqlalign/pkg/validate"
)

// Pipeline formats SQL text with a fixed set of options.
type Pipeline struct {
	options  *format.Options
	validate bool
}

// New creates a pipeline. When validate is set every result is checked
// against its source before it is returned.
func New(options *format.Options, validate bool) *Pipeline {
	if options == nil {
		options = format.DefaultOptions()
	}
	return &Pipeline{options: options, validate: validate}
}

// Options returns the rendering options.
func (p *Pipeline) Options() *format.Options {
	return p.options
}

// Format formats src. On a validation failure the returned error is a
// *validate.ValidationError whose FormatResult is the rejected output.
func (p *Pipeline) Format(src string) (string, error) {
	stmts, err := parser.ParseString(src)
	if err != nil {
		return "", err
	}

	out, err := format.New(p.options).Render(stmts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to render sql")
	}

	for _, n := range format.LongLines(out, p.options) {
		slog.Warn("Line exceeds max_char_per_line", "line", n, "max", p.options.MaxCharPerLine)
	}

	if !p.validate {
		return out, nil
	}

	reflowed, err := format.New(p.options.NeverComplement()).Render(stmts...)
	if err != nil {
		return "", errors.Wrap(err, "failed to render sql for validation")
	}

	if err := validate.Validate(src, reflowed, p.options); err != nil {
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			verr.FormatResult = out
		}
		return "", err
	}

	return out, nil
}

// Format formats src with opts and validates the result.
func Format(src string, opts *format.Options) (string, error) {
	return New(opts, true).Format(src)
}
