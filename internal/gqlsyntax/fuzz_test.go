package gqlsyntax

import "testing"

// FuzzParse checks that Parse never panics on arbitrary input: it must
// either return a usable document or a *ParseError, nothing else.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"{ hello }",
		"query Q($x: Int = 1) { field(arg: $x) @dir { sub } }",
		"type T implements A & B { f(a: Int = 1): [String!]! }",
		"# comment\nquery { a }",
		`"""block string""" scalar Foo`,
		"{",
		"}}}",
		"$",
		"...",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		doc, err := Parse(src)
		if err != nil {
			if _, ok := err.(*ParseError); !ok {
				t.Fatalf("Parse(%q) returned non-ParseError error: %v (%T)", src, err, err)
			}
			return
		}
		if doc == nil {
			t.Fatalf("Parse(%q) returned nil doc with nil error", src)
		}
	})
}
