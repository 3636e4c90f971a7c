package layout

import (
	"testing"

	"github.com/donaldgifford/prettygql/internal/printdoc"
)

func opts(width int) Options {
	return Options{PrintWidth: width, UseTabs: false, IndentWidth: 2, LineBreak: LF}
}

func TestRenderFlatWhenFits(t *testing.T) {
	d := printdoc.Group(printdoc.Concat(
		printdoc.Text("{"),
		printdoc.Indent(printdoc.Concat(printdoc.Line(), printdoc.Text("a"))),
		printdoc.Line(),
		printdoc.Text("}"),
	))

	got := Render(d, opts(80))
	want := "{ a }\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderBreaksWhenTooWide(t *testing.T) {
	d := printdoc.Group(printdoc.Concat(
		printdoc.Text("{"),
		printdoc.Indent(printdoc.Concat(printdoc.Line(), printdoc.Text("a"))),
		printdoc.Line(),
		printdoc.Text("}"),
	))

	got := Render(d, opts(3))
	want := "{\n  a\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHardLineForcesBreak(t *testing.T) {
	d := printdoc.Group(printdoc.Concat(
		printdoc.Text("{"),
		printdoc.Indent(printdoc.Concat(printdoc.HardLine(), printdoc.Text("a"))),
		printdoc.HardLine(),
		printdoc.Text("}"),
	))

	got := Render(d, opts(80))
	want := "{\n  a\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderLineSuffixDeferredPastBreak(t *testing.T) {
	d := printdoc.Concat(
		printdoc.Text("a"),
		printdoc.LineSuffix(printdoc.Text(" # trailing")),
		printdoc.HardLine(),
		printdoc.Text("b"),
	)

	got := Render(d, opts(80))
	want := "a # trailing\nb\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderIfBreakSelectsBranch(t *testing.T) {
	d := printdoc.Group(printdoc.Concat(
		printdoc.Text("["),
		printdoc.Text("a"),
		printdoc.IfBreak(printdoc.Text(","), printdoc.Nil()),
		printdoc.Text("]"),
	))

	flat := Render(d, opts(80))
	if flat != "[a]\n" {
		t.Errorf("flat: got %q, want %q", flat, "[a]\n")
	}

	broken := Render(printdoc.GroupBreak(*d.Child), opts(80))
	if broken != "[a,]\n" {
		t.Errorf("broken: got %q, want %q", broken, "[a,]\n")
	}
}

func TestRenderBlankLineIfBreaking(t *testing.T) {
	d := printdoc.GroupBreak(printdoc.Concat(
		printdoc.Text("a"),
		printdoc.BlankLineIfBreaking(),
		printdoc.Text("b"),
	))

	got := Render(d, opts(80))
	want := "a\n\nb\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCRLF(t *testing.T) {
	d := printdoc.Concat(printdoc.Text("a"), printdoc.HardLine(), printdoc.Text("b"))
	o := opts(80)
	o.LineBreak = CRLF

	got := Render(d, o)
	want := "a\r\nb\r\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderUseTabs(t *testing.T) {
	d := printdoc.GroupBreak(printdoc.Concat(
		printdoc.Text("{"),
		printdoc.Indent(printdoc.Concat(printdoc.HardLine(), printdoc.Text("a"))),
		printdoc.HardLine(),
		printdoc.Text("}"),
	))
	o := opts(80)
	o.UseTabs = true

	got := Render(d, o)
	want := "{\n\ta\n}\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderAlwaysEndsInSingleNewline(t *testing.T) {
	d := printdoc.Concat(printdoc.Text("a"), printdoc.HardLine(), printdoc.HardLine())
	got := Render(d, opts(80))
	want := "a\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFitsConsidersRestOfLine(t *testing.T) {
	// "a b" alone fits in a width-6 budget, but the trailing ":ccccc"
	// pushes the line over width once what follows is considered, so
	// the group must render broken.
	inner := printdoc.Group(printdoc.Concat(
		printdoc.Text("a"), printdoc.Line(), printdoc.Text("b"),
	))
	d := printdoc.Concat(inner, printdoc.Text(":ccccc"))

	got := Render(d, opts(6))
	want := "a\nb:ccccc\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
