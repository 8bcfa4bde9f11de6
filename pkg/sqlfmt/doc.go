// Package sqlfmt is the formatting pipeline: parse the source, render it,
// and optionally prove that the rendering only moved tokens around.
//
// Basic usage:
//
//	out, err := sqlfmt.Format("select a, b from t where x = 1", format.DefaultOptions())
//	if err != nil {
//	    var verr *validate.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.FormatResult holds the rejected output
//	    }
//	    return err
//	}
//
// Validation renders the statements a second time with every completion rule
// disabled and compares that text with the source. Validation can be turned
// off with New(opts, false).
package sqlfmt
