package docbuilder

import (
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

func (b *Builder) buildOperationDefinition(n *gqlsyntax.Node) printdoc.Doc {
	if len(n.Children) == 1 {
		if sel, ok := n.Children[0].(*gqlsyntax.Node); ok && sel.Kind == gqlsyntax.KindSelectionSet {
			return b.build(sel)
		}
	}

	var parts []printdoc.Doc
	for i, c := range n.Children {
		switch e := c.(type) {
		case *gqlsyntax.Token:
			parts = append(parts, b.tok(e))
			// The operation name is followed directly by its variable list.
			if i > 0 && i+1 < len(n.Children) {
				if next, ok := n.Children[i+1].(*gqlsyntax.Node); ok && next.Kind == gqlsyntax.KindVariableDefinitions {
					continue
				}
			}
			parts = append(parts, printdoc.Text(" "))
		case *gqlsyntax.Node:
			switch e.Kind {
			case gqlsyntax.KindVariableDefinitions, gqlsyntax.KindDirectives:
				parts = append(parts, b.build(e), printdoc.Text(" "))
			case gqlsyntax.KindSelectionSet:
				parts = append(parts, b.build(e))
			}
		}
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildFragmentDefinition(n *gqlsyntax.Node) printdoc.Doc {
	// children in source order: "fragment" keyword, fragment name,
	// TypeCondition, Directives?, SelectionSet.
	toks := tokensOf(n)
	cond := n.NodeOfKind(gqlsyntax.KindTypeCondition)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	sel := n.NodeOfKind(gqlsyntax.KindSelectionSet)

	parts := []printdoc.Doc{b.tok(toks[0]), printdoc.Text(" "), b.tok(toks[1]), printdoc.Text(" "), b.build(cond)}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	parts = append(parts, printdoc.Text(" "), b.build(sel))
	return printdoc.Concat(parts...)
}

func tokensOf(n *gqlsyntax.Node) []*gqlsyntax.Token {
	var out []*gqlsyntax.Token
	for _, c := range n.Children {
		if t, ok := c.(*gqlsyntax.Token); ok {
			out = append(out, t)
		}
	}
	return out
}

func (b *Builder) buildVariableDefinitions(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindVariableDefinition {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "(", ")")
	return b.list(gqlsyntax.KindVariableDefinitions, open, close, items)
}

func (b *Builder) buildVariableDefinition(n *gqlsyntax.Node) printdoc.Doc {
	variable := n.NodeOfKind(gqlsyntax.KindVariable)
	colon := n.TokenText(gqlsyntax.TokPunct, ":")
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	eq := n.TokenText(gqlsyntax.TokPunct, "=")

	typeAndDefault := afterColon(n)

	parts := []printdoc.Doc{b.build(variable), b.tok(colon), printdoc.Text(" "), b.build(typeAndDefault.typ)}
	if eq != nil {
		parts = append(parts, printdoc.Text(" "), b.tok(eq), printdoc.Text(" "), b.build(typeAndDefault.def))
	}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Concat(parts...)
}

type typeDefaultPair struct {
	typ *gqlsyntax.Node
	def *gqlsyntax.Node
}

// afterColon locates the Type node and the optional default-value
// Value node in a VariableDefinition/InputValueDefinition's children.
// The Type node is whichever type-kind node appears; the default, if
// present, is the node-kind child appearing after it that is not
// Directives.
func afterColon(n *gqlsyntax.Node) typeDefaultPair {
	var out typeDefaultPair
	seenType := false
	for _, c := range n.Children {
		nd, ok := c.(*gqlsyntax.Node)
		if !ok {
			continue
		}
		switch nd.Kind {
		case gqlsyntax.KindNamedType, gqlsyntax.KindListType, gqlsyntax.KindNonNullType:
			if !seenType {
				out.typ = nd
				seenType = true
			}
		case gqlsyntax.KindDirectives:
			// not the default value
		default:
			if seenType && out.def == nil {
				out.def = nd
			}
		}
	}
	return out
}

func (b *Builder) buildVariable(n *gqlsyntax.Node) printdoc.Doc {
	dollar := n.TokenText(gqlsyntax.TokPunct, "$")
	name := n.Token(gqlsyntax.TokName)
	return printdoc.Concat(b.tok(dollar), b.tok(name))
}

func (b *Builder) buildSelectionSet(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "{", "}")
	return b.list(gqlsyntax.KindSelectionSet, open, close, items)
}

func (b *Builder) buildField(n *gqlsyntax.Node) printdoc.Doc {
	alias := n.NodeOfKind(gqlsyntax.KindAlias)
	args := n.NodeOfKind(gqlsyntax.KindArguments)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	sel := n.NodeOfKind(gqlsyntax.KindSelectionSet)

	// The field's own name is the Name token that is not part of Alias.
	var name *gqlsyntax.Token
	aliasToks := map[*gqlsyntax.Token]bool{}
	if alias != nil {
		for _, t := range tokensOf(alias) {
			aliasToks[t] = true
		}
	}
	for _, t := range tokensOf(n) {
		if t.Kind == gqlsyntax.TokName && !aliasToks[t] {
			name = t
			break
		}
	}

	var parts []printdoc.Doc
	if alias != nil {
		parts = append(parts, b.build(alias), printdoc.Text(" "))
	}
	parts = append(parts, b.tok(name))
	if args != nil {
		parts = append(parts, b.build(args))
	}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if sel != nil {
		parts = append(parts, printdoc.Text(" "), b.build(sel))
	}
	return printdoc.Group(printdoc.Concat(parts...))
}

func (b *Builder) buildArgument(n *gqlsyntax.Node) printdoc.Doc {
	name := n.Token(gqlsyntax.TokName)
	colon := n.TokenText(gqlsyntax.TokPunct, ":")
	val := lastNode(n)
	return printdoc.Group(printdoc.Concat(b.tok(name), b.tok(colon), printdoc.Text(" "), b.build(val)))
}

func lastNode(n *gqlsyntax.Node) *gqlsyntax.Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if nd, ok := n.Children[i].(*gqlsyntax.Node); ok {
			return nd
		}
	}
	return nil
}

func (b *Builder) buildArguments(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindArgument {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "(", ")")
	return b.list(gqlsyntax.KindArguments, open, close, items)
}

func (b *Builder) buildFragmentSpread(n *gqlsyntax.Node) printdoc.Doc {
	dots := n.TokenText(gqlsyntax.TokPunct, "...")
	name := n.Token(gqlsyntax.TokName)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	parts := []printdoc.Doc{b.tok(dots), b.tok(name)}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildInlineFragment(n *gqlsyntax.Node) printdoc.Doc {
	dots := n.TokenText(gqlsyntax.TokPunct, "...")
	cond := n.NodeOfKind(gqlsyntax.KindTypeCondition)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	sel := n.NodeOfKind(gqlsyntax.KindSelectionSet)

	parts := []printdoc.Doc{b.tok(dots)}
	if cond != nil {
		parts = append(parts, printdoc.Text(" "), b.build(cond))
	}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	parts = append(parts, printdoc.Text(" "), b.build(sel))
	return printdoc.Concat(parts...)
}

func (b *Builder) buildDirective(n *gqlsyntax.Node) printdoc.Doc {
	at := n.TokenText(gqlsyntax.TokPunct, "@")
	name := n.Token(gqlsyntax.TokName)
	args := n.NodeOfKind(gqlsyntax.KindArguments)
	parts := []printdoc.Doc{b.tok(at), b.tok(name)}
	if args != nil {
		parts = append(parts, b.build(args))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildDirectives(n *gqlsyntax.Node) printdoc.Doc {
	dirs := n.AllNodesOfKind(gqlsyntax.KindDirective)
	var parts []printdoc.Doc
	for i, d := range dirs {
		if i > 0 {
			parts = append(parts, printdoc.Line())
		}
		parts = append(parts, b.build(d))
	}
	return printdoc.Group(printdoc.Indent(printdoc.Concat(parts...)))
}

func (b *Builder) buildAlias(n *gqlsyntax.Node) printdoc.Doc {
	toks := tokensOf(n)
	return printdoc.Concat(b.tok(toks[0]), b.tok(toks[1]))
}

func (b *Builder) buildTypeCondition(n *gqlsyntax.Node) printdoc.Doc {
	on := n.Token(gqlsyntax.TokName)
	named := n.NodeOfKind(gqlsyntax.KindNamedType)
	return printdoc.Concat(b.tok(on), printdoc.Text(" "), b.build(named))
}

func (b *Builder) buildDescription(n *gqlsyntax.Node) printdoc.Doc {
	return printdoc.Concat(b.build(lastNode(n)), printdoc.HardLine())
}
