// Package trivia turns the comments and blank-line markers the lexer
// already attached to each token (internal/gqlsyntax classifies
// leading vs. trailing and collapses blank-line runs at scan time)
// into the Doc fragments that surround that token's own text. Because
// every token, including delimiter punctuation, carries its own
// trivia, rendering a node's dangling comment (one that sits between
// the last child and a closing delimiter) falls out for free: it is
// simply the closing token's leading trivia, attached at the node's
// boundary because the closing token *is* the node's boundary.
package trivia

import (
	"strings"

	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

// Leading renders a token's leading comments and blank-line markers
// as a Doc that ends with a hard line break, ready to precede the
// token's own text. formatComments controls whether "#foo" is
// renormalized to "# foo".
func Leading(tok *gqlsyntax.Token, formatComments bool) printdoc.Doc {
	if tok == nil || len(tok.Leading) == 0 {
		return printdoc.Nil()
	}
	parts := make([]printdoc.Doc, 0, len(tok.Leading)*2)
	for _, triv := range tok.Leading {
		switch triv.Kind {
		case gqlsyntax.TriviaBlankLine:
			parts = append(parts, printdoc.BlankLineIfBreaking())
		case gqlsyntax.TriviaComment:
			parts = append(parts, commentText(triv.Text, formatComments), printdoc.HardLine())
		}
	}
	return printdoc.Concat(parts...)
}

// Trailing renders a token's same-line trailing comment, deferred via
// LineSuffix so it lands after whatever text follows it on the same
// output line instead of splitting that line in two.
func Trailing(tok *gqlsyntax.Token, formatComments bool) printdoc.Doc {
	if tok == nil || len(tok.Trailing) == 0 {
		return printdoc.Nil()
	}
	return printdoc.LineSuffix(printdoc.Concat(
		printdoc.Text(" "),
		commentText(tok.Trailing[0].Text, formatComments),
	))
}

// Token renders a token with its leading and trailing trivia: the
// one primitive the document builder uses for every leaf it emits so
// trivia attachment never needs a separate tree-walking pass.
func Token(tok *gqlsyntax.Token, formatComments bool) printdoc.Doc {
	if tok == nil {
		return printdoc.Nil()
	}
	return printdoc.Concat(
		Leading(tok, formatComments),
		printdoc.Text(tok.Text),
		Trailing(tok, formatComments),
	)
}

func commentText(raw string, normalize bool) printdoc.Doc {
	if !normalize {
		return printdoc.Text(strings.TrimRight(raw, " \t"))
	}
	rest := raw[1:]
	if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
		return printdoc.Text(strings.TrimRight("#"+rest, " \t"))
	}
	return printdoc.Text("# " + strings.TrimRight(rest, " \t"))
}
