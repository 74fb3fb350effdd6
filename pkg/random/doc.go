// Package random is the catalogue of named value generators that
// placeholders such as @name, @integer(1, 10) or @date("yyyy") resolve to.
//
// A Random holds a registry of entries keyed by case-insensitive name.
// An entry is either a function taking the parsed placeholder arguments or
// a pool from which one element is picked:
//
//	r := random.New(random.WithSeed(42))
//	r.Register("sku", func(args ...any) any { return "SKU-" + r.String(6) })
//	r.RegisterPool("tier", []any{"free", "pro", "enterprise"})
//
// Without a seed every Random draws from the global math/rand/v2 source
// and is safe for concurrent use. A seeded Random owns a single PCG stream
// and must not be shared between goroutines; give each goroutine its own.
package random
