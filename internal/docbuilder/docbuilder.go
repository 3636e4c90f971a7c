// Package docbuilder implements the document builder: one formatting
// rule per CST node kind, each producing a printdoc.Doc that the
// layout engine renders. It is the largest component, composing the
// list formatter for every delimited construct and the trivia helpers
// for every leaf it emits.
package docbuilder

import (
	"fmt"

	"github.com/donaldgifford/prettygql/internal/config"
	"github.com/donaldgifford/prettygql/internal/doclist"
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/ignore"
	"github.com/donaldgifford/prettygql/internal/printdoc"
	"github.com/donaldgifford/prettygql/internal/trivia"
)

// Builder holds the resolved configuration and original source text
// (the latter needed only to emit ignored nodes verbatim).
type Builder struct {
	res *config.Resolver
	src string
}

// New creates a Builder over a resolved configuration and the source
// text the CST was parsed from.
func New(res *config.Resolver, src string) *Builder {
	return &Builder{res: res, src: src}
}

// BuildDocument renders an entire Document node: its definitions
// separated by one or two hard line breaks depending on whether the
// source had a blank line between them, followed by the file's
// trailing trivia (attached to the synthetic EOF token).
func (b *Builder) BuildDocument(doc *gqlsyntax.Node) printdoc.Doc {
	defs := doc.Nodes()
	var parts []printdoc.Doc
	for i, def := range defs {
		if i > 0 {
			parts = append(parts, printdoc.HardLine())
		}
		parts = append(parts, b.buildDefinition(def))
	}
	if eof := doc.Token(gqlsyntax.TokEOF); eof != nil {
		parts = append(parts, trivia.Leading(eof, b.formatComments()))
	}
	return printdoc.Concat(parts...)
}

func (b *Builder) formatComments() bool { return b.res.FormatComments() }

// tok renders a single token's own text wrapped in its trivia.
func (b *Builder) tok(t *gqlsyntax.Token) printdoc.Doc {
	return trivia.Token(t, b.formatComments())
}

// build dispatches a node to its formatting rule, substituting the
// verbatim ignore rendering when the node carries an ignore directive
// as its leading comment.
func (b *Builder) build(n *gqlsyntax.Node) printdoc.Doc {
	if n == nil {
		return printdoc.Nil()
	}
	if ignore.Is(n, b.res.IgnoreCommentDirective()) {
		return ignore.Verbatim(n, b.src, b.formatComments())
	}
	switch n.Kind {
	case gqlsyntax.KindOperationDefinition:
		return b.buildOperationDefinition(n)
	case gqlsyntax.KindFragmentDefinition:
		return b.buildFragmentDefinition(n)
	case gqlsyntax.KindVariableDefinitions:
		return b.buildVariableDefinitions(n)
	case gqlsyntax.KindVariableDefinition:
		return b.buildVariableDefinition(n)
	case gqlsyntax.KindVariable:
		return b.buildVariable(n)
	case gqlsyntax.KindSelectionSet:
		return b.buildSelectionSet(n)
	case gqlsyntax.KindField:
		return b.buildField(n)
	case gqlsyntax.KindAlias:
		return b.buildAlias(n)
	case gqlsyntax.KindTypeCondition:
		return b.buildTypeCondition(n)
	case gqlsyntax.KindArgument:
		return b.buildArgument(n)
	case gqlsyntax.KindArguments:
		return b.buildArguments(n)
	case gqlsyntax.KindFragmentSpread:
		return b.buildFragmentSpread(n)
	case gqlsyntax.KindInlineFragment:
		return b.buildInlineFragment(n)
	case gqlsyntax.KindDirective:
		return b.buildDirective(n)
	case gqlsyntax.KindDirectives:
		return b.buildDirectives(n)
	case gqlsyntax.KindIntValue, gqlsyntax.KindFloatValue, gqlsyntax.KindStringValue,
		gqlsyntax.KindBlockStringValue, gqlsyntax.KindBooleanValue, gqlsyntax.KindNullValue,
		gqlsyntax.KindEnumValue:
		return b.buildScalarLeaf(n)
	case gqlsyntax.KindListValue:
		return b.buildListValue(n)
	case gqlsyntax.KindObjectValue:
		return b.buildObjectValue(n)
	case gqlsyntax.KindObjectField:
		return b.buildObjectField(n)
	case gqlsyntax.KindNamedType:
		return b.buildNamedType(n)
	case gqlsyntax.KindListType:
		return b.buildListType(n)
	case gqlsyntax.KindNonNullType:
		return b.buildNonNullType(n)
	case gqlsyntax.KindSchemaDefinition:
		return b.buildSchemaDefinition(n)
	case gqlsyntax.KindSchemaExtension:
		return b.buildSchemaExtension(n)
	case gqlsyntax.KindRootOperationTypeDefinition:
		return b.buildRootOperationTypeDefinition(n)
	case gqlsyntax.KindScalarTypeDefinition:
		return b.buildScalarTypeDefinition(n)
	case gqlsyntax.KindScalarTypeExtension:
		return b.buildScalarTypeExtension(n)
	case gqlsyntax.KindObjectTypeDefinition:
		return b.buildObjectTypeDefinition(n)
	case gqlsyntax.KindObjectTypeExtension:
		return b.buildObjectTypeExtension(n)
	case gqlsyntax.KindInterfaceTypeDefinition:
		return b.buildInterfaceTypeDefinition(n)
	case gqlsyntax.KindInterfaceTypeExtension:
		return b.buildInterfaceTypeExtension(n)
	case gqlsyntax.KindUnionTypeDefinition:
		return b.buildUnionTypeDefinition(n)
	case gqlsyntax.KindUnionTypeExtension:
		return b.buildUnionTypeExtension(n)
	case gqlsyntax.KindEnumTypeDefinition:
		return b.buildEnumTypeDefinition(n)
	case gqlsyntax.KindEnumTypeExtension:
		return b.buildEnumTypeExtension(n)
	case gqlsyntax.KindInputObjectTypeDefinition:
		return b.buildInputObjectTypeDefinition(n)
	case gqlsyntax.KindInputObjectTypeExtension:
		return b.buildInputObjectTypeExtension(n)
	case gqlsyntax.KindFieldsDefinition:
		return b.buildFieldsDefinition(n)
	case gqlsyntax.KindFieldDefinition:
		return b.buildFieldDefinition(n)
	case gqlsyntax.KindInputFieldsDefinition:
		return b.buildInputFieldsDefinition(n)
	case gqlsyntax.KindInputValueDefinition:
		return b.buildInputValueDefinition(n)
	case gqlsyntax.KindArgumentsDefinition:
		return b.buildArgumentsDefinition(n)
	case gqlsyntax.KindEnumValuesDefinition:
		return b.buildEnumValuesDefinition(n)
	case gqlsyntax.KindEnumValueDefinition:
		return b.buildEnumValueDefinition(n)
	case gqlsyntax.KindUnionMemberTypes:
		return b.buildUnionMemberTypes(n)
	case gqlsyntax.KindImplementsInterfaces:
		return b.buildImplementsInterfaces(n)
	case gqlsyntax.KindDescription:
		return b.buildDescription(n)
	case gqlsyntax.KindDirectiveDefinition:
		return b.buildDirectiveDefinition(n)
	case gqlsyntax.KindDirectiveLocations:
		return b.buildDirectiveLocations(n)
	case gqlsyntax.KindDirectiveLocation:
		return b.buildDirectiveLocation(n)
	}
	panic(fmt.Sprintf("docbuilder: unreachable node kind %d", n.Kind))
}

func (b *Builder) buildDefinition(n *gqlsyntax.Node) printdoc.Doc {
	return b.build(n)
}

// list builds a delimited, separated construct through the shared
// list formatter, resolving comma/singleLine/spacing policy for kind
// from the configuration. open and close are the node's own delimiter
// tokens, rendered with their trivia so a comment dangling before the
// closing delimiter is never dropped.
func (b *Builder) list(kind gqlsyntax.NodeKind, open, close *gqlsyntax.Token, items []printdoc.Doc) printdoc.Doc {
	return doclist.Build(items, doclist.Options{
		Open:       b.tok(open),
		Close:      b.tok(close),
		Comma:      b.res.Comma(kind),
		SingleLine: b.res.SingleLine(kind),
		Spacing:    b.spacingFor(kind),
	})
}

// delims finds a node's own opening and closing punctuator tokens by
// text. Delimiters are always direct Token children, never nested
// inside a child Node, so TokenText never reaches past the node's own
// boundary.
func delims(n *gqlsyntax.Node, open, close string) (*gqlsyntax.Token, *gqlsyntax.Token) {
	return n.TokenText(gqlsyntax.TokPunct, open), n.TokenText(gqlsyntax.TokPunct, close)
}

func (b *Builder) spacingFor(kind gqlsyntax.NodeKind) bool {
	switch kind {
	case gqlsyntax.KindArguments, gqlsyntax.KindArgumentsDefinition, gqlsyntax.KindVariableDefinitions:
		return b.res.ParenSpacing(kind)
	case gqlsyntax.KindListValue:
		return b.res.BracketSpacing(kind)
	default:
		return b.res.BraceSpacing(kind)
	}
}
