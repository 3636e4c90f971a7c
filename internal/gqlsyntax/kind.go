package gqlsyntax

// TokKind identifies a lexical token.
type TokKind int

const (
	TokEOF TokKind = iota
	TokName
	TokIntValue
	TokFloatValue
	TokStringValue
	TokBlockStringValue
	TokPunct // '{' '}' '(' ')' '[' ']' ':' '=' '@' '|' '&' '!' '$' '...'
)

// NodeKind identifies a CST node. The set matches the node-kind
// contract: every executable and type-system construct GraphQL's
// grammar defines gets its own kind so the Document Builder can
// dispatch on it directly.
type NodeKind int

const (
	KindDocument NodeKind = iota

	KindOperationDefinition
	KindFragmentDefinition
	KindVariableDefinitions
	KindVariableDefinition
	KindVariable
	KindSelectionSet
	KindField
	KindAlias
	KindArgument
	KindArguments
	KindFragmentSpread
	KindInlineFragment
	KindTypeCondition
	KindDirective
	KindDirectives

	KindIntValue
	KindFloatValue
	KindStringValue
	KindBlockStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField

	KindNamedType
	KindListType
	KindNonNullType

	KindSchemaDefinition
	KindSchemaExtension
	KindRootOperationTypeDefinition

	KindScalarTypeDefinition
	KindScalarTypeExtension
	KindObjectTypeDefinition
	KindObjectTypeExtension
	KindInterfaceTypeDefinition
	KindInterfaceTypeExtension
	KindUnionTypeDefinition
	KindUnionTypeExtension
	KindEnumTypeDefinition
	KindEnumTypeExtension
	KindInputObjectTypeDefinition
	KindInputObjectTypeExtension

	KindFieldsDefinition
	KindFieldDefinition
	KindInputFieldsDefinition
	KindInputValueDefinition
	KindArgumentsDefinition
	KindEnumValuesDefinition
	KindEnumValueDefinition
	KindUnionMemberTypes
	KindImplementsInterfaces
	KindDescription

	KindDirectiveDefinition
	KindDirectiveLocations
	KindDirectiveLocation
)

// OperationKind distinguishes the three executable operation types.
type OperationKind int

const (
	OpQuery OperationKind = iota
	OpMutation
	OpSubscription
)
