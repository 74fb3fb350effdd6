// Package template generates random data from declarative templates.
//
// A template is an ordinary Go value. Object keys may carry a rule suffix
// after the last '|':
//
//	"name|min-max"           repeat or sample min..max times
//	"name|count"             repeat or sample exactly count times
//	"name|min-max.dmin-dmax" float with dmin..dmax fraction digits
//	"name|+step"             increment numbers, cycle through arrays
//
// What a rule means depends on the kind of the value it is attached to:
//
//	array    |1 picks one element, |+1 cycles, |n and |min-max repeat
//	object   |n and |min-max keep a random subset of the keys
//	number   |min-max draws an integer, .dmin-dmax adds fraction digits
//	boolean  |min-max gives the odds of keeping the template value
//	string   |n and |min-max repeat the text
//	pattern  |n and |min-max repeat the expression
//
// # Placeholders
//
// Strings may embed placeholders: @name or @name(args). A placeholder is
// resolved against, in order:
//
//   - an already generated sibling with that key
//   - an absolute (@/a/b) or relative (@../a/b) path into the output
//   - a sibling template key not generated yet, realized on demand
//   - a generator of the configured Provider (case-insensitive)
//
// Anything else is left in the output verbatim. A string consisting of a
// single placeholder takes the placeholder's value with its native type,
// so "@integer(1, 10)" generates an int. A backslash before '@' escapes
// the placeholder.
//
// # State
//
// Increment offsets and array cursors persist across Generate calls in
// the Engine's StateStore, keyed by template node identity. Templates
// themselves are never modified.
package template
