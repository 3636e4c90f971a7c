package docbuilder

import (
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

func (b *Builder) buildSchemaDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	kw := n.Token(gqlsyntax.TokName)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	open, close := delims(n, "{", "}")
	parts = append(parts, printdoc.Text(" "), b.list(gqlsyntax.KindSchemaDefinition, open, close, b.rootOpItems(n)))
	return printdoc.Concat(parts...)
}

func (b *Builder) rootOpItems(n *gqlsyntax.Node) []printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindRootOperationTypeDefinition {
			items = append(items, b.build(nd))
		}
	}
	return items
}

func (b *Builder) buildSchemaExtension(n *gqlsyntax.Node) printdoc.Doc {
	extend := n.Token(gqlsyntax.TokName)
	toks := tokensOf(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	hasBody := n.TokenText(gqlsyntax.TokPunct, "{") != nil

	parts := []printdoc.Doc{b.tok(extend), printdoc.Text(" "), b.tok(toks[1])}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if hasBody {
		open, close := delims(n, "{", "}")
		parts = append(parts, printdoc.Text(" "), b.list(gqlsyntax.KindSchemaExtension, open, close, b.rootOpItems(n)))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildRootOperationTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	opTok := n.Token(gqlsyntax.TokName)
	colon := n.TokenText(gqlsyntax.TokPunct, ":")
	named := n.NodeOfKind(gqlsyntax.KindNamedType)
	return printdoc.Concat(b.tok(opTok), b.tok(colon), printdoc.Text(" "), b.build(named))
}

func (b *Builder) buildScalarTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	kw := n.Token(gqlsyntax.TokName)
	name := lastToken(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw), printdoc.Text(" "), b.tok(name))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildScalarTypeExtension(n *gqlsyntax.Node) printdoc.Doc {
	toks := tokensOf(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	parts := []printdoc.Doc{b.tok(toks[0]), printdoc.Text(" "), b.tok(toks[1]), printdoc.Text(" "), b.tok(toks[2])}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Concat(parts...)
}

// lastToken returns the last Token child in source order.
func lastToken(n *gqlsyntax.Node) *gqlsyntax.Token {
	toks := tokensOf(n)
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1]
}

func (b *Builder) buildObjectTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	return b.objectLikeDefinition(n, "type")
}

func (b *Builder) buildInterfaceTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	return b.objectLikeDefinition(n, "interface")
}

// objectLikeDefinition renders ObjectTypeDefinition and
// InterfaceTypeDefinition, which share an identical shape:
// Description? keyword Name ImplementsInterfaces? Directives?
// FieldsDefinition?.
func (b *Builder) objectLikeDefinition(n *gqlsyntax.Node, _ string) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	kw := n.Token(gqlsyntax.TokName)
	impl := n.NodeOfKind(gqlsyntax.KindImplementsInterfaces)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	fields := n.NodeOfKind(gqlsyntax.KindFieldsDefinition)

	name := secondName(n)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw), printdoc.Text(" "), b.tok(name))
	if impl != nil {
		parts = append(parts, printdoc.Text(" "), b.build(impl))
	}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if fields != nil {
		parts = append(parts, printdoc.Text(" "), b.build(fields))
	}
	return printdoc.Concat(parts...)
}

// objectName returns the first Name token child, or nil if there is
// none. secondName falls back to it when a node has fewer than two
// Name token children.
func objectName(n *gqlsyntax.Node, _ *gqlsyntax.Node) *gqlsyntax.Token {
	for _, c := range n.Children {
		if t, ok := c.(*gqlsyntax.Token); ok && t.Kind == gqlsyntax.TokName {
			return t
		}
	}
	return nil
}

func (b *Builder) buildObjectTypeExtension(n *gqlsyntax.Node) printdoc.Doc {
	return b.extensionWithFields(n)
}

func (b *Builder) buildInterfaceTypeExtension(n *gqlsyntax.Node) printdoc.Doc {
	return b.extensionWithFields(n)
}

func (b *Builder) extensionWithFields(n *gqlsyntax.Node) printdoc.Doc {
	extend := n.Token(gqlsyntax.TokName)
	kw := secondToken(n)
	name := thirdToken(n)
	impl := n.NodeOfKind(gqlsyntax.KindImplementsInterfaces)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	fields := n.NodeOfKind(gqlsyntax.KindFieldsDefinition)

	parts := []printdoc.Doc{b.tok(extend), printdoc.Text(" "), b.tok(kw), printdoc.Text(" "), b.tok(name)}
	if impl != nil {
		parts = append(parts, printdoc.Text(" "), b.build(impl))
	}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if fields != nil {
		parts = append(parts, printdoc.Text(" "), b.build(fields))
	}
	return printdoc.Concat(parts...)
}

func secondToken(n *gqlsyntax.Node) *gqlsyntax.Token {
	toks := tokensOf(n)
	if len(toks) < 2 {
		return nil
	}
	return toks[1]
}

func thirdToken(n *gqlsyntax.Node) *gqlsyntax.Token {
	toks := tokensOf(n)
	if len(toks) < 3 {
		return nil
	}
	return toks[2]
}

func (b *Builder) buildImplementsInterfaces(n *gqlsyntax.Node) printdoc.Doc {
	kw := n.Token(gqlsyntax.TokName)
	named := n.AllNodesOfKind(gqlsyntax.KindNamedType)
	var items []printdoc.Doc
	for _, t := range named {
		items = append(items, b.build(t))
	}
	return printdoc.Group(printdoc.Concat(b.tok(kw), printdoc.Text(" "),
		printdoc.Join(printdoc.Concat(printdoc.Text(" &"), printdoc.Line()), items)))
}

func (b *Builder) buildFieldsDefinition(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindFieldDefinition {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "{", "}")
	return b.list(gqlsyntax.KindFieldsDefinition, open, close, items)
}

func (b *Builder) buildFieldDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	name := n.Token(gqlsyntax.TokName)
	argsDef := n.NodeOfKind(gqlsyntax.KindArgumentsDefinition)
	colon := n.TokenText(gqlsyntax.TokPunct, ":")
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)

	var typ *gqlsyntax.Node
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok {
			switch nd.Kind {
			case gqlsyntax.KindNamedType, gqlsyntax.KindListType, gqlsyntax.KindNonNullType:
				typ = nd
			}
		}
	}

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(name))
	if argsDef != nil {
		parts = append(parts, b.build(argsDef))
	}
	parts = append(parts, b.tok(colon), printdoc.Text(" "), b.build(typ))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Group(printdoc.Concat(parts...))
}

func (b *Builder) buildArgumentsDefinition(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindInputValueDefinition {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "(", ")")
	return b.list(gqlsyntax.KindArgumentsDefinition, open, close, items)
}

func (b *Builder) buildInputValueDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	name := n.Token(gqlsyntax.TokName)
	colon := n.TokenText(gqlsyntax.TokPunct, ":")
	eq := n.TokenText(gqlsyntax.TokPunct, "=")
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	pair := afterColon(n)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(name), b.tok(colon), printdoc.Text(" "), b.build(pair.typ))
	if eq != nil {
		parts = append(parts, printdoc.Text(" "), b.tok(eq), printdoc.Text(" "), b.build(pair.def))
	}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Group(printdoc.Concat(parts...))
}

func (b *Builder) buildUnionTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	kw := n.Token(gqlsyntax.TokName)
	name := secondName(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	members := n.NodeOfKind(gqlsyntax.KindUnionMemberTypes)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw), printdoc.Text(" "), b.tok(name))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if members != nil {
		parts = append(parts, printdoc.Text(" "), b.build(members))
	}
	return printdoc.Concat(parts...)
}

func secondName(n *gqlsyntax.Node) *gqlsyntax.Token {
	var seen int
	for _, c := range n.Children {
		if t, ok := c.(*gqlsyntax.Token); ok && t.Kind == gqlsyntax.TokName {
			seen++
			if seen == 1 {
				continue
			}
			return t
		}
	}
	return objectName(n, nil)
}

func (b *Builder) buildUnionTypeExtension(n *gqlsyntax.Node) printdoc.Doc {
	toks := tokensOf(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	members := n.NodeOfKind(gqlsyntax.KindUnionMemberTypes)

	parts := []printdoc.Doc{b.tok(toks[0]), printdoc.Text(" "), b.tok(toks[1]), printdoc.Text(" "), b.tok(toks[2])}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if members != nil {
		parts = append(parts, printdoc.Text(" "), b.build(members))
	}
	return printdoc.Concat(parts...)
}

// buildUnionMemberTypes: the leading "|" is a broken-form-only
// decoration, added whenever the list breaks regardless of whether
// the source had one, and never present in flat form.
func (b *Builder) buildUnionMemberTypes(n *gqlsyntax.Node) printdoc.Doc {
	eq := n.TokenText(gqlsyntax.TokPunct, "=")
	named := n.AllNodesOfKind(gqlsyntax.KindNamedType)
	var items []printdoc.Doc
	for _, t := range named {
		items = append(items, b.build(t))
	}
	members := printdoc.Join(printdoc.Concat(printdoc.Line(), printdoc.Text("| ")), items)
	leading := printdoc.IfBreak(printdoc.Text("| "), printdoc.Text(""))
	return printdoc.Group(printdoc.Concat(b.tok(eq), printdoc.Text(" "),
		printdoc.Indent(printdoc.Concat(leading, members))))
}

func (b *Builder) buildEnumTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	kw := n.Token(gqlsyntax.TokName)
	name := secondName(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	values := n.NodeOfKind(gqlsyntax.KindEnumValuesDefinition)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw), printdoc.Text(" "), b.tok(name))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if values != nil {
		parts = append(parts, printdoc.Text(" "), b.build(values))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildEnumTypeExtension(n *gqlsyntax.Node) printdoc.Doc {
	toks := tokensOf(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	values := n.NodeOfKind(gqlsyntax.KindEnumValuesDefinition)

	parts := []printdoc.Doc{b.tok(toks[0]), printdoc.Text(" "), b.tok(toks[1]), printdoc.Text(" "), b.tok(toks[2])}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if values != nil {
		parts = append(parts, printdoc.Text(" "), b.build(values))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildEnumValuesDefinition(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindEnumValueDefinition {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "{", "}")
	return b.list(gqlsyntax.KindEnumValuesDefinition, open, close, items)
}

func (b *Builder) buildEnumValueDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	val := n.NodeOfKind(gqlsyntax.KindEnumValue)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.build(val))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildInputObjectTypeDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	kw := n.Token(gqlsyntax.TokName)
	name := secondName(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	fields := n.NodeOfKind(gqlsyntax.KindInputFieldsDefinition)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw), printdoc.Text(" "), b.tok(name))
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if fields != nil {
		parts = append(parts, printdoc.Text(" "), b.build(fields))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildInputObjectTypeExtension(n *gqlsyntax.Node) printdoc.Doc {
	toks := tokensOf(n)
	dirs := n.NodeOfKind(gqlsyntax.KindDirectives)
	fields := n.NodeOfKind(gqlsyntax.KindInputFieldsDefinition)

	parts := []printdoc.Doc{b.tok(toks[0]), printdoc.Text(" "), b.tok(toks[1]), printdoc.Text(" "), b.tok(toks[2])}
	if dirs != nil {
		parts = append(parts, printdoc.Text(" "), b.build(dirs))
	}
	if fields != nil {
		parts = append(parts, printdoc.Text(" "), b.build(fields))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) buildInputFieldsDefinition(n *gqlsyntax.Node) printdoc.Doc {
	var items []printdoc.Doc
	for _, c := range n.Children {
		if nd, ok := c.(*gqlsyntax.Node); ok && nd.Kind == gqlsyntax.KindInputValueDefinition {
			items = append(items, b.build(nd))
		}
	}
	open, close := delims(n, "{", "}")
	return b.list(gqlsyntax.KindInputFieldsDefinition, open, close, items)
}

func (b *Builder) buildDirectiveDefinition(n *gqlsyntax.Node) printdoc.Doc {
	desc := n.NodeOfKind(gqlsyntax.KindDescription)
	kw := n.Token(gqlsyntax.TokName)
	at := n.TokenText(gqlsyntax.TokPunct, "@")
	name := secondName(n)
	argsDef := n.NodeOfKind(gqlsyntax.KindArgumentsDefinition)
	on := keywordToken(n, "on")
	repeatable := keywordToken(n, "repeatable")
	locs := n.NodeOfKind(gqlsyntax.KindDirectiveLocations)

	var parts []printdoc.Doc
	if desc != nil {
		parts = append(parts, b.build(desc))
	}
	parts = append(parts, b.tok(kw), printdoc.Text(" "), b.tok(at), b.tok(name))
	if argsDef != nil {
		parts = append(parts, b.build(argsDef))
	}
	if repeatable != nil {
		parts = append(parts, printdoc.Text(" "), b.tok(repeatable))
	}
	parts = append(parts, printdoc.Text(" "), b.tok(on), printdoc.Text(" "), b.build(locs))
	return printdoc.Concat(parts...)
}

func keywordToken(n *gqlsyntax.Node, text string) *gqlsyntax.Token {
	for _, t := range tokensOf(n) {
		if t.Kind == gqlsyntax.TokName && t.Text == text {
			return t
		}
	}
	return nil
}

func (b *Builder) buildDirectiveLocations(n *gqlsyntax.Node) printdoc.Doc {
	locs := n.AllNodesOfKind(gqlsyntax.KindDirectiveLocation)
	var items []printdoc.Doc
	for _, l := range locs {
		items = append(items, b.build(l))
	}
	return printdoc.Group(printdoc.Indent(
		printdoc.Join(printdoc.Concat(printdoc.Line(), printdoc.Text("| ")), items)))
}

func (b *Builder) buildDirectiveLocation(n *gqlsyntax.Node) printdoc.Doc {
	return b.tok(n.Token(gqlsyntax.TokName))
}
