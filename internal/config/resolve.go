package config

import (
	"strconv"

	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
)

// CommaPolicy controls whether a trailing separator is inserted
// after the last item of a delimited list.
type CommaPolicy int

const (
	CommaAlways CommaPolicy = iota
	CommaNever
	CommaNoTrailing
	CommaOnlySingleLine
)

// SingleLinePolicy controls when a delimited list collapses onto one
// line instead of breaking one item per line.
type SingleLinePolicy int

const (
	SingleLinePrefer SingleLinePolicy = iota
	SingleLineSmart
	SingleLineNever
)

// LineBreakKind selects the newline sequence the layout engine emits.
type LineBreakKind int

const (
	LF LineBreakKind = iota
	CRLF
)

// Resolver resolves the "inherit" sentinel in per-kind overrides
// against the global option of the same name, and exposes every
// validated option as a typed accessor. Build one with NewResolver
// before formatting; invalid values are reported up front rather
// than discovered mid-format.
type Resolver struct {
	printWidth             int
	useTabs                bool
	indentWidth            int
	lineBreak              LineBreakKind
	formatComments         bool
	ignoreCommentDirective string

	global globalResolved
	kinds  map[gqlsyntax.NodeKind]kindResolved
}

type globalResolved struct {
	comma          CommaPolicy
	singleLine     SingleLinePolicy
	parenSpacing   bool
	bracketSpacing bool
	braceSpacing   bool
}

type kindResolved struct {
	comma          *CommaPolicy
	singleLine     *SingleLinePolicy
	parenSpacing   *bool
	bracketSpacing *bool
	braceSpacing   *bool
}

// NewResolver validates cfg and builds a Resolver from it. It is the
// only place configuration values are parsed; every accessor below
// returns an already-valid typed value.
func NewResolver(cfg *Config) (*Resolver, error) {
	if cfg.PrintWidth <= 0 {
		return nil, &Error{Key: "printWidth", Value: strconv.Itoa(cfg.PrintWidth)}
	}
	if cfg.IndentWidth <= 0 {
		return nil, &Error{Key: "indentWidth", Value: strconv.Itoa(cfg.IndentWidth)}
	}
	lb, err := parseLineBreak(cfg.LineBreak)
	if err != nil {
		return nil, err
	}
	comma, err := parseComma("comma", cfg.Comma)
	if err != nil {
		return nil, err
	}
	singleLine, err := parseSingleLine("singleLine", cfg.SingleLine)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		printWidth:             cfg.PrintWidth,
		useTabs:                cfg.UseTabs,
		indentWidth:            cfg.IndentWidth,
		lineBreak:              lb,
		formatComments:         cfg.FormatComments,
		ignoreCommentDirective: cfg.IgnoreCommentDirective,
		global: globalResolved{
			comma:          comma,
			singleLine:     singleLine,
			parenSpacing:   cfg.ParenSpacing,
			bracketSpacing: cfg.BracketSpacing,
			braceSpacing:   cfg.BraceSpacing,
		},
		kinds: make(map[gqlsyntax.NodeKind]kindResolved),
	}

	for _, spec := range kindSpecs(cfg) {
		kr, err := resolveKindOptions(spec.name, spec.opts)
		if err != nil {
			return nil, err
		}
		r.kinds[spec.kind] = kr
	}
	return r, nil
}

type kindSpec struct {
	name string
	kind gqlsyntax.NodeKind
	opts KindOptions
}

func kindSpecs(cfg *Config) []kindSpec {
	return []kindSpec{
		{"arguments", gqlsyntax.KindArguments, cfg.Arguments},
		{"argumentsDefinition", gqlsyntax.KindArgumentsDefinition, cfg.ArgumentsDefinition},
		{"directiveLocations", gqlsyntax.KindDirectiveLocations, cfg.DirectiveLocations},
		{"directives", gqlsyntax.KindDirectives, cfg.Directives},
		{"enumValuesDefinition", gqlsyntax.KindEnumValuesDefinition, cfg.EnumValuesDefinition},
		{"fieldsDefinition", gqlsyntax.KindFieldsDefinition, cfg.FieldsDefinition},
		{"implementsInterfaces", gqlsyntax.KindImplementsInterfaces, cfg.ImplementsInterfaces},
		{"inputFieldsDefinition", gqlsyntax.KindInputFieldsDefinition, cfg.InputFieldsDefinition},
		{"listValue", gqlsyntax.KindListValue, cfg.ListValue},
		{"objectValue", gqlsyntax.KindObjectValue, cfg.ObjectValue},
		{"schemaDefinition", gqlsyntax.KindSchemaDefinition, cfg.SchemaDefinition},
		{"schemaExtension", gqlsyntax.KindSchemaExtension, cfg.SchemaExtension},
		{"selectionSet", gqlsyntax.KindSelectionSet, cfg.SelectionSet},
		{"unionMemberTypes", gqlsyntax.KindUnionMemberTypes, cfg.UnionMemberTypes},
		{"variableDefinitions", gqlsyntax.KindVariableDefinitions, cfg.VariableDefinitions},
	}
}

func resolveKindOptions(name string, opts KindOptions) (kindResolved, error) {
	var kr kindResolved
	if opts.Comma != "" && opts.Comma != "inherit" {
		v, err := parseComma(name+".comma", opts.Comma)
		if err != nil {
			return kr, err
		}
		kr.comma = &v
	}
	if opts.SingleLine != "" && opts.SingleLine != "inherit" {
		v, err := parseSingleLine(name+".singleLine", opts.SingleLine)
		if err != nil {
			return kr, err
		}
		kr.singleLine = &v
	}
	if b, ok, err := parseBoolOverride(name+".parenSpacing", opts.ParenSpacing); err != nil {
		return kr, err
	} else if ok {
		kr.parenSpacing = &b
	}
	if b, ok, err := parseBoolOverride(name+".bracketSpacing", opts.BracketSpacing); err != nil {
		return kr, err
	} else if ok {
		kr.bracketSpacing = &b
	}
	if b, ok, err := parseBoolOverride(name+".braceSpacing", opts.BraceSpacing); err != nil {
		return kr, err
	} else if ok {
		kr.braceSpacing = &b
	}
	return kr, nil
}

func parseBoolOverride(key, v string) (bool, bool, error) {
	switch v {
	case "", "inherit":
		return false, false, nil
	case "true":
		return true, true, nil
	case "false":
		return false, true, nil
	}
	return false, false, &Error{Key: key, Value: v}
}

func parseComma(key, v string) (CommaPolicy, error) {
	switch v {
	case "always":
		return CommaAlways, nil
	case "never":
		return CommaNever, nil
	case "noTrailing":
		return CommaNoTrailing, nil
	case "onlySingleLine":
		return CommaOnlySingleLine, nil
	}
	return 0, &Error{Key: key, Value: v}
}

func parseSingleLine(key, v string) (SingleLinePolicy, error) {
	switch v {
	case "prefer":
		return SingleLinePrefer, nil
	case "smart":
		return SingleLineSmart, nil
	case "never":
		return SingleLineNever, nil
	}
	return 0, &Error{Key: key, Value: v}
}

func parseLineBreak(v string) (LineBreakKind, error) {
	switch v {
	case "lf", "":
		return LF, nil
	case "crlf":
		return CRLF, nil
	}
	return 0, &Error{Key: "lineBreak", Value: v}
}

func (r *Resolver) PrintWidth() int                { return r.printWidth }
func (r *Resolver) UseTabs() bool                  { return r.useTabs }
func (r *Resolver) IndentWidth() int                { return r.indentWidth }
func (r *Resolver) LineBreak() LineBreakKind        { return r.lineBreak }
func (r *Resolver) FormatComments() bool            { return r.formatComments }
func (r *Resolver) IgnoreCommentDirective() string  { return r.ignoreCommentDirective }

func (r *Resolver) Comma(kind gqlsyntax.NodeKind) CommaPolicy {
	if k, ok := r.kinds[kind]; ok && k.comma != nil {
		return *k.comma
	}
	return r.global.comma
}

func (r *Resolver) SingleLine(kind gqlsyntax.NodeKind) SingleLinePolicy {
	if k, ok := r.kinds[kind]; ok && k.singleLine != nil {
		return *k.singleLine
	}
	return r.global.singleLine
}

func (r *Resolver) ParenSpacing(kind gqlsyntax.NodeKind) bool {
	if k, ok := r.kinds[kind]; ok && k.parenSpacing != nil {
		return *k.parenSpacing
	}
	return r.global.parenSpacing
}

func (r *Resolver) BracketSpacing(kind gqlsyntax.NodeKind) bool {
	if k, ok := r.kinds[kind]; ok && k.bracketSpacing != nil {
		return *k.bracketSpacing
	}
	return r.global.bracketSpacing
}

func (r *Resolver) BraceSpacing(kind gqlsyntax.NodeKind) bool {
	if k, ok := r.kinds[kind]; ok && k.braceSpacing != nil {
		return *k.braceSpacing
	}
	return r.global.braceSpacing
}
