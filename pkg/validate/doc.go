// Package validate checks that formatting only moved tokens around.
//
// The source and the formatted text are both tokenized. The streams are then
// compared position by position: every token must keep its kind, and a hint
// comment must still be a hint comment. The formatter relocates a trailing
// comment written after a comma in front of that comma, so the source stream
// is adjusted for that single case before comparing.
//
// The formatted text handed to Validate should be rendered without any of the
// completion or removal rules, otherwise legitimate additions (an AS keyword,
// an OUTER keyword, ...) are reported as differences.
//
//	reflowed, _ := format.New(opts.NeverComplement()).Render(stmts...)
//	if err := validate.Validate(src, reflowed, opts); err != nil {
//	    var verr *validate.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Println(verr.ErrorMsg)
//	    }
//	}
package validate
