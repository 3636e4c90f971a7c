package gqlsyntax

// parseTypeExtension dispatches on the keyword following "extend".
func (p *parser) parseTypeExtension() (*Node, error) {
	extend, err := p.expectKeyword("extend")
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != TokName {
		return nil, p.errf("expected a type system definition keyword after 'extend'")
	}
	switch p.cur().Text {
	case "schema":
		return p.parseSchemaExtension(extend)
	case "scalar":
		return p.parseScalarTypeExtension(extend)
	case "type":
		return p.parseObjectTypeExtension(extend)
	case "interface":
		return p.parseInterfaceTypeExtension(extend)
	case "union":
		return p.parseUnionTypeExtension(extend)
	case "enum":
		return p.parseEnumTypeExtension(extend)
	case "input":
		return p.parseInputObjectTypeExtension(extend)
	}
	return nil, p.errf("unknown extension keyword")
}

func (p *parser) parseSchemaDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("schema")
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindSchemaDefinition}
	n.Children = appendNonNil(n.Children, desc, kw, dirs, open)
	for !p.atPunct("}") {
		rot, err := p.parseRootOperationTypeDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, rot)
	}
	close, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseSchemaExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("schema")
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindSchemaExtension}
	n.Children = appendNonNil(n.Children, extend, kw, dirs)
	if p.atPunct("{") {
		open := p.advance()
		n.Children = append(n.Children, open)
		for !p.atPunct("}") {
			rot, err := p.parseRootOperationTypeDefinition()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, rot)
		}
		close, err := p.expectPunct("}")
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, close)
	}
	return n, nil
}

func (p *parser) parseRootOperationTypeDefinition() (*Node, error) {
	opTok := p.advance()
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}
	named, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return NewNode(KindRootOperationTypeDefinition, opTok, colon, named), nil
}

func (p *parser) parseScalarTypeDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("scalar")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	return NewNode(KindScalarTypeDefinition, desc, kw, name, dirs), nil
}

func (p *parser) parseScalarTypeExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("scalar")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	return NewNode(KindScalarTypeExtension, extend, kw, name, dirs), nil
}

func (p *parser) parseObjectTypeDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("type")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	impl, err := p.parseOptionalImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var fields *Node
	if p.atPunct("{") {
		fields, err = p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindObjectTypeDefinition, desc, kw, name, impl, dirs, fields), nil
}

func (p *parser) parseObjectTypeExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("type")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	impl, err := p.parseOptionalImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var fields *Node
	if p.atPunct("{") {
		fields, err = p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindObjectTypeExtension, extend, kw, name, impl, dirs, fields), nil
}

func (p *parser) parseOptionalImplementsInterfaces() (*Node, error) {
	if !p.atName("implements") {
		return nil, nil
	}
	kw := p.advance()
	n := &Node{Kind: KindImplementsInterfaces, Children: []Element{kw}}
	if p.atPunct("&") {
		n.Children = append(n.Children, p.advance())
	}
	named, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, named)
	for p.atPunct("&") {
		amp := p.advance()
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, amp, named)
	}
	return n, nil
}

func (p *parser) parseFieldsDefinition() (*Node, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindFieldsDefinition, Children: []Element{open}}
	for !p.atPunct("}") {
		fd, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, fd)
	}
	close, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseFieldDefinition() (*Node, error) {
	desc := p.parseDescription()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	var argsDef *Node
	if p.atPunct("(") {
		argsDef, err = p.parseArgumentsDefinition()
		if err != nil {
			return nil, err
		}
	}
	colon, err := p.expectPunct(":")
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	return NewNode(KindFieldDefinition, desc, name, argsDef, colon, typ, dirs), nil
}

func (p *parser) parseArgumentsDefinition() (*Node, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindArgumentsDefinition, Children: []Element{open}}
	for !p.atPunct(")") {
		iv, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, iv)
	}
	close, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseInputValueDefinition() (*Node, error) {
	desc := p.parseDescription()
	name, err := p.expectName()
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
	return NewNode(KindInputValueDefinition, desc, name, colon, typ, eq, def, dirs), nil
}

func (p *parser) parseInterfaceTypeDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("interface")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	impl, err := p.parseOptionalImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var fields *Node
	if p.atPunct("{") {
		fields, err = p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindInterfaceTypeDefinition, desc, kw, name, impl, dirs, fields), nil
}

func (p *parser) parseInterfaceTypeExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("interface")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	impl, err := p.parseOptionalImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var fields *Node
	if p.atPunct("{") {
		fields, err = p.parseFieldsDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindInterfaceTypeExtension, extend, kw, name, impl, dirs, fields), nil
}

func (p *parser) parseUnionTypeDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("union")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	members, err := p.parseOptionalUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	return NewNode(KindUnionTypeDefinition, desc, kw, name, dirs, members), nil
}

func (p *parser) parseUnionTypeExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("union")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	members, err := p.parseOptionalUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	return NewNode(KindUnionTypeExtension, extend, kw, name, dirs, members), nil
}

func (p *parser) parseOptionalUnionMemberTypes() (*Node, error) {
	if !p.atPunct("=") {
		return nil, nil
	}
	eq := p.advance()
	n := &Node{Kind: KindUnionMemberTypes, Children: []Element{eq}}
	if p.atPunct("|") {
		n.Children = append(n.Children, p.advance())
	}
	named, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, named)
	for p.atPunct("|") {
		pipe := p.advance()
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, pipe, named)
	}
	return n, nil
}

func (p *parser) parseEnumTypeDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("enum")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var values *Node
	if p.atPunct("{") {
		values, err = p.parseEnumValuesDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindEnumTypeDefinition, desc, kw, name, dirs, values), nil
}

func (p *parser) parseEnumTypeExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("enum")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var values *Node
	if p.atPunct("{") {
		values, err = p.parseEnumValuesDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindEnumTypeExtension, extend, kw, name, dirs, values), nil
}

func (p *parser) parseEnumValuesDefinition() (*Node, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindEnumValuesDefinition, Children: []Element{open}}
	for !p.atPunct("}") {
		ev, err := p.parseEnumValueDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, ev)
	}
	close, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseEnumValueDefinition() (*Node, error) {
	desc := p.parseDescription()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	return NewNode(KindEnumValueDefinition, desc, NewNode(KindEnumValue, name), dirs), nil
}

func (p *parser) parseInputObjectTypeDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("input")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var fields *Node
	if p.atPunct("{") {
		fields, err = p.parseInputFieldsDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindInputObjectTypeDefinition, desc, kw, name, dirs, fields), nil
}

func (p *parser) parseInputObjectTypeExtension(extend *Token) (*Node, error) {
	kw, err := p.expectKeyword("input")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseOptionalDirectives()
	if err != nil {
		return nil, err
	}
	var fields *Node
	if p.atPunct("{") {
		fields, err = p.parseInputFieldsDefinition()
		if err != nil {
			return nil, err
		}
	}
	return NewNode(KindInputObjectTypeExtension, extend, kw, name, dirs, fields), nil
}

func (p *parser) parseInputFieldsDefinition() (*Node, error) {
	open, err := p.expectPunct("{")
	if err != nil {
		return nil, err
	}
	n := &Node{Kind: KindInputFieldsDefinition, Children: []Element{open}}
	for !p.atPunct("}") {
		iv, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, iv)
	}
	close, err := p.expectPunct("}")
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, close)
	return n, nil
}

func (p *parser) parseDirectiveDefinition(desc *Node) (*Node, error) {
	kw, err := p.expectKeyword("directive")
	if err != nil {
		return nil, err
	}
	at, err := p.expectPunct("@")
	if err != nil {
		return nil, err
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	var argsDef *Node
	if p.atPunct("(") {
		argsDef, err = p.parseArgumentsDefinition()
		if err != nil {
			return nil, err
		}
	}
	var repeatable *Token
	if p.atName("repeatable") {
		repeatable = p.advance()
	}
	on, err := p.expectKeyword("on")
	if err != nil {
		return nil, err
	}
	locs, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}
	return NewNode(KindDirectiveDefinition, desc, kw, at, name, argsDef, repeatable, on, locs), nil
}

func (p *parser) parseDirectiveLocations() (*Node, error) {
	n := &Node{Kind: KindDirectiveLocations}
	if p.atPunct("|") {
		n.Children = append(n.Children, p.advance())
	}
	loc, err := p.parseDirectiveLocation()
	if err != nil {
		return nil, err
	}
	n.Children = append(n.Children, loc)
	for p.atPunct("|") {
		pipe := p.advance()
		loc, err := p.parseDirectiveLocation()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, pipe, loc)
	}
	return n, nil
}

func (p *parser) parseDirectiveLocation() (*Node, error) {
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return NewNode(KindDirectiveLocation, name), nil
}

func appendNonNil(children []Element, elems ...Element) []Element {
	for _, e := range elems {
		if e == nil {
			continue
		}
		if t, ok := e.(*Token); ok && t == nil {
			continue
		}
		if n, ok := e.(*Node); ok && n == nil {
			continue
		}
		children = append(children, e)
	}
	return children
}
