// Package value holds the data model shared by templates and generated
// output: an insertion-ordered Object, kind classification, container
// lookups and conversions to and from JSON and YAML.
//
// Templates are ordinary Go values:
//
//	[]any            array template
//	*value.Object    object template (key order is preserved)
//	map[string]any   object template (keys visited in sorted order)
//	int, float64...  number template
//	bool             boolean template
//	string           string template
//	func             function template
//	*regexp.Regexp   pattern template
//
// Anything else is classified as KindOther and passed through unchanged.
package value
