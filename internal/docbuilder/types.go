package docbuilder

import (
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

func (b *Builder) buildNamedType(n *gqlsyntax.Node) printdoc.Doc {
	return b.tok(n.Token(gqlsyntax.TokName))
}

func (b *Builder) buildListType(n *gqlsyntax.Node) printdoc.Doc {
	open := n.TokenText(gqlsyntax.TokPunct, "[")
	close := n.TokenText(gqlsyntax.TokPunct, "]")
	elem := lastNode(n)
	return printdoc.Concat(b.tok(open), b.build(elem), b.tok(close))
}

func (b *Builder) buildNonNullType(n *gqlsyntax.Node) printdoc.Doc {
	bang := n.TokenText(gqlsyntax.TokPunct, "!")
	inner := n.Children[0].(*gqlsyntax.Node)
	return printdoc.Concat(b.build(inner), b.tok(bang))
}
