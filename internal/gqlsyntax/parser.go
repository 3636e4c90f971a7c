package gqlsyntax

// Parse lexes and parses a GraphQL document, returning the root
// Document node. Parsing stops and returns an error at the first
// syntax problem; there is no error-recovery pass, per the Non-goals
// this pretty-printer carries forward from the grammar it formats.
func Parse(src string) (*Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseDocument()
}

type parser struct {
	toks []*Token
	pos  int
}

func (p *parser) cur() *Token { return p.toks[p.pos] }

func (p *parser) advance() *Token {
	t := p.toks[p.pos]
	if t.Kind != TokEOF {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool { return p.cur().Kind == TokEOF }

func (p *parser) atPunct(text string) bool {
	t := p.cur()
	return t.Kind == TokPunct && t.Text == text
}

func (p *parser) atName(text string) bool {
	t := p.cur()
	return t.Kind == TokName && t.Text == text
}

func (p *parser) errf(msg string) *ParseError {
	t := p.cur()
	return &ParseError{Line: t.Line, Col: t.Col, Message: msg}
}

func (p *parser) expectPunct(text string) (*Token, error) {
	if !p.atPunct(text) {
		return nil, p.errf("expected '" + text + "'")
	}
	return p.advance(), nil
}

func (p *parser) expectName() (*Token, error) {
	if p.cur().Kind != TokName {
		return nil, p.errf("expected a name")
	}
	return p.advance(), nil
}

func (p *parser) expectKeyword(kw string) (*Token, error) {
	if !p.atName(kw) {
		return nil, p.errf("expected '" + kw + "'")
	}
	return p.advance(), nil
}

func (p *parser) parseDocument() (*Node, error) {
	n := &Node{Kind: KindDocument}
	if p.atEOF() {
		return nil, p.errf("expected a definition")
	}
	for !p.atEOF() {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, def)
	}
	n.Children = append(n.Children, p.advance()) // EOF, carries trailing trivia of the file
	return n, nil
}

func (p *parser) parseDefinition() (*Node, error) {
	if p.atPunct("{") {
		return p.parseOperationDefinition()
	}
	if p.cur().Kind == TokName {
		switch p.cur().Text {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		case "extend":
			return p.parseTypeExtension()
		case "schema":
			return p.parseSchemaDefinition(nil)
		case "scalar":
			return p.parseScalarTypeDefinition(nil)
		case "type":
			return p.parseObjectTypeDefinition(nil)
		case "interface":
			return p.parseInterfaceTypeDefinition(nil)
		case "union":
			return p.parseUnionTypeDefinition(nil)
		case "enum":
			return p.parseEnumTypeDefinition(nil)
		case "input":
			return p.parseInputObjectTypeDefinition(nil)
		case "directive":
			return p.parseDirectiveDefinition(nil)
		}
	}
	if p.cur().Kind == TokStringValue || p.cur().Kind == TokBlockStringValue {
		desc := p.parseDescription()
		if p.cur().Kind != TokName {
			return nil, p.errf("expected a type system definition after description")
		}
		switch p.cur().Text {
		case "schema":
			return p.parseSchemaDefinition(desc)
		case "scalar":
			return p.parseScalarTypeDefinition(desc)
		case "type":
			return p.parseObjectTypeDefinition(desc)
		case "interface":
			return p.parseInterfaceTypeDefinition(desc)
		case "union":
			return p.parseUnionTypeDefinition(desc)
		case "enum":
			return p.parseEnumTypeDefinition(desc)
		case "input":
			return p.parseInputObjectTypeDefinition(desc)
		case "directive":
			return p.parseDirectiveDefinition(desc)
		}
		return nil, p.errf("unexpected keyword after description")
	}
	return nil, p.errf("expected a definition")
}

func (p *parser) parseDescription() *Node {
	if p.cur().Kind != TokStringValue && p.cur().Kind != TokBlockStringValue {
		return nil
	}
	return NewNode(KindDescription, p.parseValueLeaf())
}

// parseValueLeaf consumes a single scalar/enum value token and wraps
// it in the matching leaf node kind.
func (p *parser) parseValueLeaf() *Node {
	t := p.cur()
	switch t.Kind {
	case TokStringValue:
		p.advance()
		return NewNode(KindStringValue, t)
	case TokBlockStringValue:
		p.advance()
		return NewNode(KindBlockStringValue, t)
	case TokIntValue:
		p.advance()
		return NewNode(KindIntValue, t)
	case TokFloatValue:
		p.advance()
		return NewNode(KindFloatValue, t)
	case TokName:
		switch t.Text {
		case "true", "false":
			p.advance()
			return NewNode(KindBooleanValue, t)
		case "null":
			p.advance()
			return NewNode(KindNullValue, t)
		default:
			p.advance()
			return NewNode(KindEnumValue, t)
		}
	}
	return nil
}

func (p *parser) parseOperationDefinition() (*Node, error) {
	if p.atPunct("{") {
		sel, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return NewNode(KindOperationDefinition, sel), nil
	}
	opTok := p.advance() // query | mutation | subscription

	var name *Token
	if p.cur().Kind == TokName {
		name = p.advance()
	}
	var varDefs *Node
	if p.atPunct("(") {
		var err error
		varDefs, err = p.parseVariableDefinitions()
		if err != nil {
			return nil, err
		}
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	sel, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return NewNode(KindOperationDefinition, opTok, name, varDefs, dirs, sel), nil
}

func (p *parser) parseVariableDefinitions() (*Node, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindVariableDefinitions, Children: []Element{open}}
	for !p.atPunct(")") {
		vd, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, vd)
	}
	close, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseVariableDefinition() (*Node, error) {
	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	var eq *Token
	var def *Node
	if p.atPunct("=") {
		eq = p.advance()
		def, err = p.parseValue()
		if err != nil {
			return nil, err
		}
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	return NewNode(KindVariableDefinition, variable, colon, typ, eq, def, dirs), nil
}

func (p *parser) parseVariable() (*Node, error) {
	dollar, err := p.expectPunct("$")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return NewNode(KindVariable, dollar, name), nil
}

func (p *parser) parseSelectionSet() (*Node, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindSelectionSet, Children: []Element{open}}
	for !p.atPunct("}") {
		sel, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, sel)
	}
	close, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseSelection() (*Node, error) {
	if p.atPunct("...") {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *parser) parseField() (*Node, error) {
	first, err := p.expectName()
	if err != nil {
		return nil, err
	}
	var alias *Node
	name := first
	if p.atPunct(":") {
		colon := p.advance()
		second, err := p.expectName()
		if err != nil {
			return nil, err
		}
		alias = NewNode(KindAlias, first, colon)
		name = second
	}
	var args *Node
	if p.atPunct("(") {
		args, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var sel *Node
	if p.atPunct("{") {
		sel, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindField, alias, name, args, dirs, sel), nil
}

func (p *parser) parseArguments() (*Node, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindArguments, Children: []Element{open}}
	for !p.atPunct(")") {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, arg)
	}
	close, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseArgument() (*Node, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return NewNode(KindArgument, name, colon, val), nil
}

func (p *parser) parseFragment() (*Node, error) {
	dots, err := p.expectPunct("...")
	if err != nil {
		return nil, err
	}
	if p.atName("on") {
		cond, err := p.parseTypeCondition()
		if err != nil {
			return nil, err
		}
		dirs, err := p.parseOptionalDirectives()
		if err != nil {
			return nil, err
		}
		sel, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return NewNode(KindInlineFragment, dots, cond, dirs, sel), nil
	}
	if p.atPunct("@") || p.atPunct("{") {
		dirs, err := p.parseOptionalDirectives()
		if err != nil {
			return nil, err
		}
		sel, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return NewNode(KindInlineFragment, dots, dirs, sel), nil
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	return NewNode(KindFragmentSpread, dots, name, dirs), nil
}

func (p *parser) parseTypeCondition() (*Node, error) {
	on, err := p.expectKeyword("on")
	if err != nil {
		return nil, err
	}
	named, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return NewNode(KindTypeCondition, on, named), nil
}

func (p *parser) parseFragmentDefinition() (*Node, error) {
	kw, err := p.expectKeyword("fragment")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	cond, err := p.parseTypeCondition()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	sel, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return NewNode(KindFragmentDefinition, kw, name, cond, dirs, sel), nil
}

func (p *parser) parseOptionalDirectives() (*Node, error) {
	if !p.atPunct("@") {
		return nil, nil
	}
	n := &Node{Kind: KindDirectives}
	for p.atPunct("@") {
		d, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, d)
	}
	return n, nil
}

func (p *parser) parseDirective() (*Node, error) {
	at, err := p.expectPunct("@")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	var args *Node
	if p.atPunct("(") {
		args, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindDirective, at, name, args), nil
}

func (p *parser) parseValue() (*Node, error) {
	if p.atPunct("$") {
		return p.parseVariable()
	}
	if p.atPunct("[") {
		return p.parseListValue()
	}
	if p.atPunct("{") {
		return p.parseObjectValue()
	}
	leaf := p.parseValueLeaf()
	if leaf == nil {
		return nil, p.errf("expected a value")
	}
	return leaf, nil
}

func (p *parser) parseListValue() (*Node, error) {
	open, err := p.expectPunct("[")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindListValue, Children: []Element{open}}
	for !p.atPunct("]") {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, v)
	}
	close, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseObjectValue() (*Node, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindObjectValue, Children: []Element{open}}
	for !p.atPunct("}") {
		f, err := p.parseObjectField()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, f)
	}
	close, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseObjectField() (*Node, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}
	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return NewNode(KindObjectField, name, colon, val), nil
}

func (p *parser) parseType() (*Node, error) {
	var inner *Node
	var err error
	if p.atPunct("[") {
		inner, err = p.parseListType()
	} else {
		inner, err = p.parseNamedType()
	}
	if err != nil {
		return nil, err
	}
	if p.atPunct("!") {
		bang := p.advance()
		return NewNode(KindNonNullType, inner, bang), nil
	}
	return inner, nil
}

func (p *parser) parseNamedType() (*Node, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return NewNode(KindNamedType, name), nil
}

func (p *parser) parseListType() (*Node, error) {
	open, err := p.expectPunct("[")
	if err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	close, err := p.expectPunct("]")
	if err != nil {
		return nil, err
	}
	return NewNode(KindListType, open, elem, close), nil
}
