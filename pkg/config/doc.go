// Package config loads template documents from JSON and YAML files.
//
// Object key order is preserved, since it decides generation order and
// therefore which placeholders see which siblings. YAML documents may use
// two application tags:
//
//	id: !regexp '[A-Z]{2}\d{6}'      # pattern template
//	code: !regexp /[a-f]{4}/i        # slash form with flags
//	total: !expr 'this.price * this.qty'
//
// An !expr value becomes a function template evaluated with expr-lang.
// Its environment holds this (the object being generated), root, name,
// path, and mock(s), which expands placeholders in s in place.
//
// Documents can be named by path or by glob, including ** patterns:
//
//	docs, err := config.LoadAll([]string{"templates/**/*.yaml"})
package config
