// Package layout renders a printdoc.Doc to text with a Wadler/Oppen
// style fits-on-the-line algorithm: groups render flat when their
// content (plus whatever follows on the same line) fits within the
// configured width, and broken otherwise. LineSuffix deferral,
// IfBreak, and BlankLineIfBreaking extend the classic algorithm to
// cover trailing comments and blank-line preservation.
package layout

import "github.com/donaldgifford/prettygql/internal/printdoc"

// LineBreak selects the newline sequence written to the output.
type LineBreak int

const (
	LF LineBreak = iota
	CRLF
)

// Options configures the renderer. It mirrors the Configuration
// record's layout fields.
type Options struct {
	PrintWidth  int
	UseTabs     bool
	IndentWidth int
	LineBreak   LineBreak
}

func (o Options) unit() string {
	if o.UseTabs {
		return "\t"
	}
	w := o.IndentWidth
	if w <= 0 {
		w = 2
	}
	out := make([]byte, w)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

func (o Options) newline() string {
	if o.LineBreak == CRLF {
		return "\r\n"
	}
	return "\n"
}

type mode int

const (
	modeBreak mode = iota
	modeFlat
)

type cmd struct {
	indent int
	mode   mode
	doc    printdoc.Doc
}

// Render renders d to a string under the given options.
func Render(d printdoc.Doc, opts Options) string {
	d = propagateBreaks(d)

	var out []byte
	pos := 0
	unit := opts.unit()
	nl := opts.newline()

	cmds := []cmd{{indent: 0, mode: modeBreak, doc: d}}
	var suffixes []cmd

	writeIndent := func(level int) {
		for i := 0; i < level; i++ {
			out = append(out, unit...)
		}
	}

	for len(cmds) > 0 {
		c := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]

		switch c.doc.Kind {
		case printdoc.KindText:
			out = append(out, c.doc.Text...)
			pos += textWidth(c.doc.Text)

		case printdoc.KindConcat:
			for i := len(c.doc.Parts) - 1; i >= 0; i-- {
				cmds = append(cmds, cmd{indent: c.indent, mode: c.mode, doc: c.doc.Parts[i]})
			}

		case printdoc.KindIndent:
			cmds = append(cmds, cmd{indent: c.indent + 1, mode: c.mode, doc: *c.doc.Child})

		case printdoc.KindLineSuffix:
			suffixes = append(suffixes, cmd{indent: c.indent, mode: c.mode, doc: *c.doc.Child})

		case printdoc.KindIfBreak:
			branch := c.doc.Flat
			if c.mode == modeBreak {
				branch = c.doc.Broken
			}
			cmds = append(cmds, cmd{indent: c.indent, mode: c.mode, doc: *branch})

		case printdoc.KindGroup:
			gm := modeFlat
			if c.doc.ShouldBreak {
				gm = modeBreak
			} else if c.mode == modeBreak {
				child := cmd{indent: c.indent, mode: modeFlat, doc: *c.doc.Child}
				if !fits(child, cmds, opts.PrintWidth-pos) {
					gm = modeBreak
				}
			}
			cmds = append(cmds, cmd{indent: c.indent, mode: gm, doc: *c.doc.Child})

		case printdoc.KindBlankLineIfBreaking:
			if c.mode != modeBreak {
				continue
			}
			if len(suffixes) > 0 {
				cmds = append(cmds, c)
				cmds = append(cmds, flushSuffixes(&suffixes)...)
				continue
			}
			trimTrailingSpace(&out)
			if len(out) > 0 && out[len(out)-1] != '\n' {
				out = append(out, nl...)
			}
			out = append(out, nl...)
			writeIndent(c.indent)
			pos = c.indent * len(unit)

		case printdoc.KindHardLine, printdoc.KindLine, printdoc.KindSoftLine:
			if c.mode == modeFlat && c.doc.Kind != printdoc.KindHardLine {
				if c.doc.Kind == printdoc.KindLine {
					out = append(out, ' ')
					pos++
				}
				continue
			}
			if len(suffixes) > 0 {
				cmds = append(cmds, c)
				cmds = append(cmds, flushSuffixes(&suffixes)...)
				continue
			}
			trimTrailingSpace(&out)
			out = append(out, nl...)
			writeIndent(c.indent)
			pos = c.indent * len(unit)
		}
	}

	for len(suffixes) > 0 {
		s := suffixes[0]
		suffixes = suffixes[1:]
		cmds = append(cmds, s)
	}
	for len(cmds) > 0 {
		c := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]
		if c.doc.Kind == printdoc.KindText {
			out = append(out, c.doc.Text...)
		} else if c.doc.Kind == printdoc.KindConcat {
			for i := len(c.doc.Parts) - 1; i >= 0; i-- {
				cmds = append(cmds, cmd{indent: c.indent, mode: c.mode, doc: c.doc.Parts[i]})
			}
		}
	}

	trimTrailingSpace(&out)
	s := string(out)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s + nl
}

func flushSuffixes(suffixes *[]cmd) []cmd {
	rev := make([]cmd, len(*suffixes))
	for i, s := range *suffixes {
		rev[len(*suffixes)-1-i] = s
	}
	*suffixes = nil
	return rev
}

func trimTrailingSpace(out *[]byte) {
	n := len(*out)
	for n > 0 && ((*out)[n-1] == ' ' || (*out)[n-1] == '\t') {
		n--
	}
	*out = (*out)[:n]
}

// textWidth returns the column width consumed by a Text fragment. A
// fragment containing a newline (block strings, ignored raw source)
// resets the running column to the length of its last line.
func textWidth(s string) int {
	last := -1
	for i, r := range s {
		if r == '\n' {
			last = i
		}
	}
	if last == -1 {
		return len(s)
	}
	return len(s) - last - 1
}

// fits reports whether next, followed by whatever the outer stack
// rest has queued up, reaches a line break before exceeding budget.
func fits(next cmd, rest []cmd, budget int) bool {
	stack := []cmd{next}
	ri := len(rest) - 1

	for budget >= 0 {
		if len(stack) == 0 {
			if ri < 0 {
				return true
			}
			stack = append(stack, rest[ri])
			ri--
			continue
		}
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch c.doc.Kind {
		case printdoc.KindText:
			budget -= textWidth(c.doc.Text)
		case printdoc.KindConcat:
			for i := len(c.doc.Parts) - 1; i >= 0; i-- {
				stack = append(stack, cmd{indent: c.indent, mode: c.mode, doc: c.doc.Parts[i]})
			}
		case printdoc.KindIndent:
			stack = append(stack, cmd{indent: c.indent + 1, mode: c.mode, doc: *c.doc.Child})
		case printdoc.KindLineSuffix:
			// Deferred content costs nothing on the current line.
		case printdoc.KindIfBreak:
			branch := c.doc.Flat
			if c.mode == modeBreak {
				branch = c.doc.Broken
			}
			stack = append(stack, cmd{indent: c.indent, mode: c.mode, doc: *branch})
		case printdoc.KindGroup:
			gm := modeFlat
			if c.doc.ShouldBreak {
				gm = modeBreak
			}
			stack = append(stack, cmd{indent: c.indent, mode: gm, doc: *c.doc.Child})
		case printdoc.KindHardLine, printdoc.KindBlankLineIfBreaking:
			return true
		case printdoc.KindLine, printdoc.KindSoftLine:
			if c.mode != modeFlat {
				return true
			}
			if c.doc.Kind == printdoc.KindLine {
				budget--
			}
		}
	}
	return false
}

// propagateBreaks returns d with every Group that (transitively)
// contains a HardLine or BlankLineIfBreaking marked ShouldBreak, since
// such content can never render on one line.
func propagateBreaks(d printdoc.Doc) printdoc.Doc {
	_, out := propagate(d)
	return out
}

func propagate(d printdoc.Doc) (breaks bool, out printdoc.Doc) {
	switch d.Kind {
	case printdoc.KindHardLine, printdoc.KindBlankLineIfBreaking:
		return true, d
	case printdoc.KindConcat:
		parts := make([]printdoc.Doc, len(d.Parts))
		any := false
		for i, p := range d.Parts {
			b, np := propagate(p)
			parts[i] = np
			any = any || b
		}
		d.Parts = parts
		return any, d
	case printdoc.KindIndent, printdoc.KindLineSuffix:
		b, nc := propagate(*d.Child)
		d.Child = &nc
		if d.Kind == printdoc.KindLineSuffix {
			return false, d
		}
		return b, d
	case printdoc.KindGroup:
		b, nc := propagate(*d.Child)
		d.Child = &nc
		d.ShouldBreak = d.ShouldBreak || b
		return d.ShouldBreak, d
	default:
		return false, d
	}
}
