package doclist

import (
	"testing"

	"github.com/donaldgifford/prettygql/internal/config"
	"github.com/donaldgifford/prettygql/internal/layout"
	"github.com/donaldgifford/prettygql/internal/printdoc"
)

func render(d printdoc.Doc, width int) string {
	return layout.Render(d, layout.Options{PrintWidth: width, IndentWidth: 2, LineBreak: layout.LF})
}

func baseOpts() Options {
	return Options{Open: printdoc.Text("("), Close: printdoc.Text(")")}
}

func TestBuildEmptyList(t *testing.T) {
	got := render(Build(nil, baseOpts()), 80)
	if got != "()\n" {
		t.Errorf("got %q, want %q", got, "()\n")
	}
}

func TestBuildSmartFitsOnOneLine(t *testing.T) {
	opts := baseOpts()
	opts.Comma = config.CommaAlways
	opts.SingleLine = config.SingleLineSmart
	items := []printdoc.Doc{printdoc.Text("a"), printdoc.Text("b")}

	got := render(Build(items, opts), 80)
	if got != "(a, b)\n" {
		t.Errorf("got %q, want %q", got, "(a, b)\n")
	}
}

func TestBuildSmartBreaksWhenTooWide(t *testing.T) {
	opts := baseOpts()
	opts.Comma = config.CommaAlways
	opts.SingleLine = config.SingleLineSmart
	items := []printdoc.Doc{printdoc.Text("a"), printdoc.Text("b")}

	got := render(Build(items, opts), 3)
	want := "(\n  a,\n  b,\n)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSingleLineNeverAlwaysBreaks(t *testing.T) {
	opts := baseOpts()
	opts.Comma = config.CommaNever
	opts.SingleLine = config.SingleLineNever
	items := []printdoc.Doc{printdoc.Text("a")}

	got := render(Build(items, opts), 80)
	want := "(\n  a\n)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSingleLineNeverMultiItemNoComma(t *testing.T) {
	opts := baseOpts()
	opts.Comma = config.CommaNever
	opts.SingleLine = config.SingleLineNever
	items := []printdoc.Doc{printdoc.Text("a"), printdoc.Text("b")}

	got := render(Build(items, opts), 80)
	want := "(\n  a\n  b\n)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSingleLinePreferAlwaysFlat(t *testing.T) {
	opts := baseOpts()
	opts.SingleLine = config.SingleLinePrefer
	items := []printdoc.Doc{printdoc.Text("a"), printdoc.Text("b")}

	got := render(Build(items, opts), 1)
	want := "(a, b)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildCommaOnlySingleLine(t *testing.T) {
	opts := baseOpts()
	opts.Comma = config.CommaOnlySingleLine
	opts.SingleLine = config.SingleLinePrefer
	items := []printdoc.Doc{printdoc.Text("a")}

	got := render(Build(items, opts), 80)
	want := "(a,)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSpacingAddsInnerPadding(t *testing.T) {
	opts := baseOpts()
	opts.Comma = config.CommaNever
	opts.SingleLine = config.SingleLineSmart
	opts.Spacing = true
	items := []printdoc.Doc{printdoc.Text("a")}

	got := render(Build(items, opts), 80)
	want := "( a )\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
