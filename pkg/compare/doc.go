// Package compare provides generic helpers for walking two sequences side by
// side.
//
// The round-trip validator uses them to line up the token stream of the
// source with the token stream of the formatted output:
//
//	for _, p := range compare.ZipLongest(src, formatted) {
//	    switch {
//	    case p.Left == nil:
//	        // the output has extra tokens
//	    case p.Right == nil:
//	        // tokens were dropped
//	    }
//	}
//
// FirstMismatch reports where two sequences stop agreeing.
package compare
