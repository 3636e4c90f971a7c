// Package printdoc implements the print-document algebra the layout
// engine renders: a small set of document constructors (Text, Concat,
// Group, Indent, line breaks, deferred suffixes, and break-conditional
// content) that document builders compose and a renderer walks.
package printdoc

// Kind identifies the shape of a Doc node.
type Kind int

const (
	KindText Kind = iota
	KindConcat
	KindGroup
	KindIndent
	KindLine
	KindSoftLine
	KindHardLine
	KindLineSuffix
	KindIfBreak
	KindBlankLineIfBreaking
)

// Doc is a node in the print-document tree. It is a plain value type;
// documents are built bottom-up and never mutated after construction.
// The layout engine works on a copy in which it sets ShouldBreak on
// every Group that contains a hard break.
type Doc struct {
	Kind Kind

	Text string // KindText

	Parts []Doc // KindConcat

	Child *Doc // KindGroup, KindIndent, KindLineSuffix

	// KindIfBreak: Broken is emitted when the nearest enclosing group
	// breaks, Flat otherwise.
	Broken *Doc
	Flat   *Doc

	// KindGroup: force broken rendering even if the content would fit
	// on the current line. Set by GroupBreak (the list formatter uses it
	// for the "never" single-line policy) and by the layout engine for
	// groups holding a hard break. Source line positions of list items
	// are not consulted.
	ShouldBreak bool
}

// Text returns a literal run of characters with no embedded doc
// structure. Block strings and ignored source slices may legitimately
// contain '\n' inside Text; the renderer treats those as opaque.
func Text(s string) Doc { return Doc{Kind: KindText, Text: s} }

// Concat sequences documents with no separator.
func Concat(parts ...Doc) Doc { return Doc{Kind: KindConcat, Parts: parts} }

// Join concatenates items with sep placed between each pair.
func Join(sep Doc, items []Doc) Doc {
	if len(items) == 0 {
		return Concat()
	}
	parts := make([]Doc, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, item)
	}
	return Concat(parts...)
}

// Group marks a region the layout engine tries to render on one line
// before falling back to the broken form of every Line inside it.
func Group(d Doc) Doc { return Doc{Kind: KindGroup, Child: &d} }

// GroupBreak is Group with ShouldBreak pre-set: the content always
// renders broken, but Line/SoftLine distances and indentation are
// still resolved by the layout engine.
func GroupBreak(d Doc) Doc { return Doc{Kind: KindGroup, Child: &d, ShouldBreak: true} }

// Indent increases the indentation level for the duration of d.
func Indent(d Doc) Doc { return Doc{Kind: KindIndent, Child: &d} }

// Line renders as a space when its enclosing group is flat, a newline
// otherwise.
func Line() Doc { return Doc{Kind: KindLine} }

// SoftLine renders as nothing when flat, a newline when broken.
func SoftLine() Doc { return Doc{Kind: KindSoftLine} }

// HardLine always renders as a newline and forces every enclosing
// group to render broken.
func HardLine() Doc { return Doc{Kind: KindHardLine} }

// BlankLineIfBreaking renders as a hard line plus one extra blank
// line when its enclosing group is broken, and as nothing when flat.
// Directly after a line break it adds only the blank line.
func BlankLineIfBreaking() Doc { return Doc{Kind: KindBlankLineIfBreaking} }

// LineSuffix defers d until the next line break actually renders,
// so trailing line comments land after code already placed on the
// same output line instead of splitting it.
func LineSuffix(d Doc) Doc { return Doc{Kind: KindLineSuffix, Child: &d} }

// IfBreak selects broken when the nearest enclosing group renders
// broken, flat otherwise.
func IfBreak(broken, flat Doc) Doc {
	return Doc{Kind: KindIfBreak, Broken: &broken, Flat: &flat}
}

// Nil is the empty document; it renders nothing and has zero width.
func Nil() Doc { return Concat() }
