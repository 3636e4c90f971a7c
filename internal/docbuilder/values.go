package docbuilder

import (
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

// buildScalarLeaf renders Int/Float/String/BlockString/Boolean/Null/
// Enum values, which are each a thin wrapper around a single token.
// Block strings are emitted verbatim: their internal indentation is
// semantically meaningful and this formatter never touches it.
func (b *Builder) buildScalarLeaf(n *gqlsyntax.Node) printdoc.Doc {
	tok := n.Children[0].(*gqlsyntax.Token)
	return b.tok(tok)
}

func (b *Builder) buildListValue(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "[", "]")
	return b.list(gqlsyntax.KindListValue, open, close, items)
}

func (b *Builder) buildObjectValue(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindObjectField {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "{", "}")
	return b.list(gqlsyntax.KindObjectValue, open, close, items)
}

func (b *Builder) buildObjectField(n *gqlsyntax.Node) printdoc.Doc {
	name := n.Token(gqlsyntax.TokName)
	colon := n.TokenText(gqlsyntax.TokPunct, ":")
	val := lastNode(n)
	return printdoc.Group(printdoc.Concat(b.tok(name), b.tok(colon), printdoc.Text(" "), b.build(val)))
}
