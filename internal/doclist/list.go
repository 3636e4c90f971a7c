// Package doclist implements the list formatter: the single
// parameterized engine every delimited, separated construct in the
// grammar (arguments, selection sets, object/list values, fields
// definitions, and so on) goes through. One engine means one place
// that knows how comma and single-line policy interact with the
// layout algebra, instead of each call site reinventing it.
package doclist

import (
	"github.com/donaldgifford/prettygql/internal/config"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

// Options configures one list's delimiters and separator behavior.
// Items themselves are fully built Docs (including any leading
// comment/blank-line trivia and deferred trailing line comments); Open
// and Close are the delimiter tokens already rendered through the
// same trivia machinery, so a comment dangling before a closing brace
// (attached as that token's leading trivia) still surfaces.
type Options struct {
	Open, Close printdoc.Doc
	Comma       config.CommaPolicy
	SingleLine  config.SingleLinePolicy
	Spacing     bool
}

// Build composes items into a single Doc under opts. An empty list
// renders as the two delimiters with nothing between them.
func Build(items []printdoc.Doc, opts Options) printdoc.Doc {
	if len(items) == 0 {
		return printdoc.Concat(opts.Open, opts.Close)
	}

	switch opts.SingleLine {
	case config.SingleLineNever:
		return breakableList(items, opts, true)
	case config.SingleLinePrefer:
		return preferFlatList(items, opts)
	default:
		return breakableList(items, opts, false)
	}
}

func sideDoc(spacing bool) printdoc.Doc {
	if spacing {
		return printdoc.Line()
	}
	return printdoc.SoftLine()
}

func breakableList(items []printdoc.Doc, opts Options, forceBreak bool) printdoc.Doc {
	side := sideDoc(opts.Spacing)

	var parts []printdoc.Doc
	last := len(items) - 1
	for i, item := range items {
		parts = append(parts, item)
		if i == last {
			parts = append(parts, trailingComma(opts.Comma))
			continue
		}
		if hasInterItemComma(opts.Comma) {
			parts = append(parts, printdoc.Text(","))
		}
		parts = append(parts, printdoc.Line())
	}

	body := printdoc.Concat(
		opts.Open,
		printdoc.Indent(printdoc.Concat(side, printdoc.Concat(parts...))),
		side,
		opts.Close,
	)
	if forceBreak {
		return printdoc.GroupBreak(body)
	}
	return printdoc.Group(body)
}

// preferFlatList renders items on one line unconditionally, using
// plain text joins rather than breakable line docs, since the
// "prefer" single-line policy never reconsiders based on width.
func preferFlatList(items []printdoc.Doc, opts Options) printdoc.Doc {
	sep := printdoc.Text(" ")
	if hasInterItemComma(opts.Comma) {
		sep = printdoc.Text(", ")
	}

	var parts []printdoc.Doc
	last := len(items) - 1
	for i, item := range items {
		parts = append(parts, item)
		if i != last {
			parts = append(parts, sep)
		}
	}
	if opts.Comma == config.CommaOnlySingleLine {
		parts = append(parts, printdoc.Text(","))
	}

	pad := ""
	if opts.Spacing {
		pad = " "
	}
	return printdoc.Group(printdoc.Concat(
		opts.Open, printdoc.Text(pad),
		printdoc.Concat(parts...),
		printdoc.Text(pad), opts.Close,
	))
}

// hasInterItemComma reports whether policy puts a comma between two
// items that are not the last, as opposed to just the separating line
// or space doc. "never" and "onlySingleLine" lists never punctuate
// between items, only (optionally) after the last one.
func hasInterItemComma(policy config.CommaPolicy) bool {
	switch policy {
	case config.CommaNever, config.CommaOnlySingleLine:
		return false
	default:
		return true
	}
}

// trailingComma resolves the comma policy for the last item, where
// "always" means "always when the list breaks" and "onlySingleLine"
// means the opposite: a trailing comma kept only when the list stays
// on one line.
func trailingComma(policy config.CommaPolicy) printdoc.Doc {
	switch policy {
	case config.CommaAlways:
		return printdoc.IfBreak(printdoc.Text(","), printdoc.Text(""))
	case config.CommaOnlySingleLine:
		return printdoc.IfBreak(printdoc.Text(""), printdoc.Text(","))
	default:
		return printdoc.Text("")
	}
}
