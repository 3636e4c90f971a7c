// Package ignore implements the ignore-comment scanner: a node whose
// leading trivia's last comment is the configured ignore directive is
// emitted as a verbatim slice of the original source instead of being
// rebuilt from its CST, so that hand-formatted code can opt out of
// reformatting one construct at a time.
package ignore

import (
	"strings"

	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/printdoc"
	"github.com/donaldgifford/prettygql/internal/trivia"
)

// Is reports whether node's leading trivia ends with a comment
// matching directive, with nothing else attached between that
// comment and the node — the same "two-hop" adjacency the comment
// must satisfy to count: it has to be the node's own leading trivia,
// not trivia that was later reattached to something in between.
func Is(node *gqlsyntax.Node, directive string) bool {
	if node == nil || directive == "" {
		return false
	}
	first := node.FirstToken()
	if first == nil || len(first.Leading) == 0 {
		return false
	}
	last := first.Leading[len(first.Leading)-1]
	if last.Kind != gqlsyntax.TriviaComment {
		return false
	}
	body := strings.TrimPrefix(last.Text, "#")
	body = strings.TrimLeft(body, " \t")
	if body == directive {
		return true
	}
	return strings.HasPrefix(body, directive+" ") || strings.HasPrefix(body, directive+"\t")
}

// Verbatim renders node as its leading trivia (including the ignore
// comment itself) followed by an exact slice of src spanning the
// node's first through last token. Embedded line breaks in that
// slice are emitted as plain text, so only the node's first line is
// placed at the surrounding indent; every following line keeps its
// original source indentation untouched.
func Verbatim(node *gqlsyntax.Node, src string, formatComments bool) printdoc.Doc {
	first := node.FirstToken()
	last := node.LastToken()
	if first == nil || last == nil {
		return printdoc.Nil()
	}
	return printdoc.Concat(
		trivia.Leading(first, formatComments),
		printdoc.Text(src[first.Start:last.End]),
		trivia.Trailing(last, formatComments),
	)
}
