package random

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (r *Random) registerText() {
	r.Register("word", func(args ...any) any { return r.word(r.lengthArgs(args, 0, 3, 10)) })
	r.Register("sentence", func(args ...any) any { return r.sentence(r.lengthArgs(args, 0, 12, 18)) })
	r.Register("paragraph", func(args ...any) any { return r.paragraph(r.lengthArgs(args, 0, 3, 7)) })
	r.Register("title", r.title)
	r.Register("cword", r.cword)
	r.Register("csentence", func(args ...any) any { return r.csentence(r.lengthArgs(args, 0, 12, 18)) })
	r.Register("cparagraph", func(args ...any) any {
		n := r.lengthArgs(args, 0, 3, 7)
		parts := make([]string, n)
		for i := range parts {
			parts[i] = r.csentence(r.between(12, 18))
		}
		return strings.Join(parts, "")
	})
	r.Register("ctitle", func(args ...any) any { return r.stringFrom(hanzi, r.lengthArgs(args, 0, 3, 7)) })
}

// word builds a lower-case word of exactly n letters.
func (r *Random) word(n int) string {
	var sb strings.Builder
	for sb.Len() < n {
		sb.WriteString(pickString(r, syllables))
	}
	return sb.String()[:max(n, 0)]
}

func (r *Random) sentence(words int) string {
	parts := make([]string, max(words, 0))
	for i := range parts {
		parts[i] = r.word(r.between(3, 10))
	}
	return capitalize(strings.Join(parts, " ")) + "."
}

func (r *Random) paragraph(sentences int) string {
	parts := make([]string, max(sentences, 0))
	for i := range parts {
		parts[i] = r.sentence(r.between(12, 18))
	}
	return strings.Join(parts, " ")
}

// title(min?, max?) builds a title of random capitalized words.
// title("some text") title-cases the given text instead.
func (r *Random) title(args ...any) any {
	if s, ok := stringArg(args, 0); ok {
		return cases.Title(language.Und).String(s)
	}
	n := r.lengthArgs(args, 0, 3, 7)
	parts := make([]string, max(n, 0))
	for i := range parts {
		parts[i] = capitalize(r.word(r.between(3, 10)))
	}
	return strings.Join(parts, " ")
}

// cword(pool?, min?, max?) returns Chinese characters, one by default.
func (r *Random) cword(args ...any) any {
	pool := hanzi
	if p, ok := stringArg(args, 0); ok {
		pool = p
		args = args[1:]
	}
	return r.stringFrom(pool, r.lengthArgs(args, 0, 1, 1))
}

func (r *Random) csentence(n int) string {
	return r.stringFrom(hanzi, n) + "。"
}

// capitalize upper-cases the first letter and leaves the rest alone.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first := []rune(s)[0]
	return cases.Upper(language.Und).String(string(first)) + s[len(string(first)):]
}
