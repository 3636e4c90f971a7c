package gqlsyntax

import "testing"

func TestParseSimpleQuery(t *testing.T) {
	doc, err := Parse("{ hello }")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Kind != KindDocument {
		t.Fatalf("root kind: got %v, want KindDocument", doc.Kind)
	}
	op := doc.NodeOfKind(KindOperationDefinition)
	if op == nil {
		t.Fatal("expected an OperationDefinition child")
	}
	sel := op.NodeOfKind(KindSelectionSet)
	if sel == nil {
		// anonymous query collapses straight to a SelectionSet
		sel = op
	}
	field := sel.NodeOfKind(KindField)
	if field == nil {
		t.Fatal("expected a Field child in the selection set")
	}
	if name := field.Token(TokName); name == nil || name.Text != "hello" {
		t.Errorf("field name: got %+v, want %q", name, "hello")
	}
}

func TestParseNamedOperationWithVariables(t *testing.T) {
	doc, err := Parse(`mutation CreateUser($id: ID!) { result }`)
	if err != nil {
		t.Fatal(err)
	}
	op := doc.NodeOfKind(KindOperationDefinition)
	if op == nil {
		t.Fatal("expected an OperationDefinition child")
	}
	varDefs := op.NodeOfKind(KindVariableDefinitions)
	if varDefs == nil {
		t.Fatal("expected VariableDefinitions")
	}
	vd := varDefs.NodeOfKind(KindVariableDefinition)
	if vd == nil {
		t.Fatal("expected a VariableDefinition")
	}
	v := vd.NodeOfKind(KindVariable)
	if v == nil {
		t.Fatal("expected a Variable")
	}
	if name := v.Token(TokName); name == nil || name.Text != "id" {
		t.Errorf("variable name: got %+v, want %q", name, "id")
	}
}

func TestParseObjectTypeDefinition(t *testing.T) {
	doc, err := Parse(`type Query { hello: String }`)
	if err != nil {
		t.Fatal(err)
	}
	obj := doc.NodeOfKind(KindObjectTypeDefinition)
	if obj == nil {
		t.Fatal("expected an ObjectTypeDefinition child")
	}
	fields := obj.NodeOfKind(KindFieldsDefinition)
	if fields == nil {
		t.Fatal("expected FieldsDefinition")
	}
	fd := fields.NodeOfKind(KindFieldDefinition)
	if fd == nil {
		t.Fatal("expected a FieldDefinition")
	}
	if name := fd.Token(TokName); name == nil || name.Text != "hello" {
		t.Errorf("field name: got %+v, want %q", name, "hello")
	}
}

func TestParseAttachesLeadingComment(t *testing.T) {
	src := "# a comment\nquery { hello }"
	doc, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	first := doc.FirstToken()
	if first == nil {
		t.Fatal("expected a first token")
	}
	if len(first.Leading) == 0 {
		t.Fatal("expected leading trivia on the first token")
	}
	if first.Leading[0].Kind != TriviaComment || first.Leading[0].Text != "# a comment" {
		t.Errorf("leading trivia: got %+v", first.Leading[0])
	}
}

func TestParseUnterminatedSelectionSetErrors(t *testing.T) {
	_, err := Parse("query { ")
	if err == nil {
		t.Fatal("expected a parse error for an unterminated selection set")
	}
	var pe *ParseError
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("got %T, want *ParseError", err)
	} else {
		pe = err.(*ParseError)
		if pe.Message == "" {
			t.Error("expected a non-empty message")
		}
	}
}

func TestParseEmptyDocumentErrors(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("expected an error for an empty document")
	}
}
