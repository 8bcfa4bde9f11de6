package format

import (
	"github.com/pseudomuto/sqlalign/pkg/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func convertCase(c Case, s string) string {
	switch c {
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	default:
		return s
	}
}

// keyword formats a keyword according to the formatter options
func (o *Options) keyword(kw string) string {
	return convertCase(o.KeywordCase, kw)
}

// identifier formats a possibly qualified identifier, leaving quoted parts
// untouched.
func (o *Options) identifier(name string) string {
	if o.IdentifierCase == CasePreserve {
		return name
	}
	return utils.MapUnquoted(name, func(part string) string {
		return convertCase(o.IdentifierCase, part)
	})
}
