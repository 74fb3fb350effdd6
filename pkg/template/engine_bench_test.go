package template

import (
	"testing"

	"github.com/getmockd/mockdata/pkg/value"
)

func benchTemplate() *value.Object {
	return value.ObjectOf(
		"id|+1", 1,
		"name", "@name",
		"email", "@email",
		"age|18-65", 0,
		"score|1-100.2", 0,
		"tags|1-5", []any{"@word"},
		"address", value.ObjectOf("city", "@city", "zip", "@zip", "line", "@city, @zip"),
		"ref", "@address/city",
	)
}

func BenchmarkGenerateObject(b *testing.B) {
	e := newTestEngine(1)
	tmpl := benchTemplate()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Generate(tmpl)
	}
}

func BenchmarkGenerateRepeated(b *testing.B) {
	e := newTestEngine(1)
	tmpl := value.ObjectOf("items|100", []any{benchTemplate()})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Generate(tmpl)
	}
}

func BenchmarkSubstitute(b *testing.B) {
	e := newTestEngine(1)
	tmpl := "@first @last <@email> from @city, born @date('yyyy-MM-dd')"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Generate(tmpl)
	}
}

func BenchmarkParseRule(b *testing.B) {
	ints := maxInts{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseRule("price|1-100.2-4", ints)
	}
}

func BenchmarkTokenize(b *testing.B) {
	s := `hello @name, your code is @string("upper", 6) \@literal @integer(1, @natural(5))`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(s)
	}
}
