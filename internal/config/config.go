// Package config defines the formatter's configuration schema and
// hardcoded defaults, and resolves per-node-kind overrides against
// the corresponding global option. Every knob additionally supports
// the sentinel value "inherit", resolved by a Resolver rather than
// read directly off the struct.
package config

// KindOptions holds the per-node-kind overrides a subset of list-
// bearing node kinds may set. Every field defaults to "inherit",
// meaning "use the corresponding global option".
type KindOptions struct {
	Comma          string `yaml:"comma,omitempty"`
	SingleLine     string `yaml:"singleLine,omitempty"`
	ParenSpacing   string `yaml:"parenSpacing,omitempty"`
	BracketSpacing string `yaml:"bracketSpacing,omitempty"`
	BraceSpacing   string `yaml:"braceSpacing,omitempty"`
}

// Config is the full formatter configuration: global layout and
// language options plus one KindOptions override block per list-
// bearing node kind in the node-kind contract.
type Config struct {
	PrintWidth             int    `yaml:"printWidth"`
	UseTabs                bool   `yaml:"useTabs"`
	IndentWidth            int    `yaml:"indentWidth"`
	LineBreak              string `yaml:"lineBreak"`
	Comma                  string `yaml:"comma"`
	SingleLine             string `yaml:"singleLine"`
	ParenSpacing           bool   `yaml:"parenSpacing"`
	BracketSpacing         bool   `yaml:"bracketSpacing"`
	BraceSpacing           bool   `yaml:"braceSpacing"`
	FormatComments         bool   `yaml:"formatComments"`
	IgnoreCommentDirective string `yaml:"ignoreCommentDirective"`

	Arguments              KindOptions `yaml:"arguments"`
	ArgumentsDefinition    KindOptions `yaml:"argumentsDefinition"`
	DirectiveLocations     KindOptions `yaml:"directiveLocations"`
	Directives             KindOptions `yaml:"directives"`
	EnumValuesDefinition   KindOptions `yaml:"enumValuesDefinition"`
	FieldsDefinition       KindOptions `yaml:"fieldsDefinition"`
	ImplementsInterfaces   KindOptions `yaml:"implementsInterfaces"`
	InputFieldsDefinition  KindOptions `yaml:"inputFieldsDefinition"`
	ListValue              KindOptions `yaml:"listValue"`
	ObjectValue            KindOptions `yaml:"objectValue"`
	SchemaDefinition       KindOptions `yaml:"schemaDefinition"`
	SchemaExtension        KindOptions `yaml:"schemaExtension"`
	SelectionSet           KindOptions `yaml:"selectionSet"`
	UnionMemberTypes       KindOptions `yaml:"unionMemberTypes"`
	VariableDefinitions    KindOptions `yaml:"variableDefinitions"`
}

// DefaultConfig returns the hardcoded defaults: an 80-column, two-
// space, LF layout, commas always inserted except on the kinds that
// read better one-per-line without a trailing comma, where both comma
// and singleLine default to "never". Directives only overrides comma,
// since a directive list reads fine flat when it fits.
func DefaultConfig() *Config {
	neverBoth := KindOptions{Comma: "never", SingleLine: "never"}
	commaNever := KindOptions{Comma: "never"}
	return &Config{
		PrintWidth:             80,
		UseTabs:                false,
		IndentWidth:            2,
		LineBreak:              "lf",
		Comma:                  "always",
		SingleLine:             "smart",
		ParenSpacing:           false,
		BracketSpacing:         false,
		BraceSpacing:           true,
		FormatComments:         false,
		IgnoreCommentDirective: "prettygql-ignore",

		Directives:             commaNever,
		EnumValuesDefinition:   neverBoth,
		FieldsDefinition:       neverBoth,
		InputFieldsDefinition:  neverBoth,
		SchemaDefinition:       neverBoth,
		SchemaExtension:        neverBoth,
		SelectionSet:           neverBoth,
	}
}
