package prettygql

import (
	"errors"
	"testing"

	"github.com/donaldgifford/prettygql/internal/config"
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/testutil"
)

func TestFormatTextGolden(t *testing.T) {
	testutil.RunGoldenDir(t, "testdata", func(input string) (string, error) {
		return FormatText(input, nil)
	})
}

func TestFormatTextIdempotent(t *testing.T) {
	out, err := FormatText("query{hello}\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	again, err := FormatText(out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != again {
		t.Errorf("not idempotent:\nfirst:  %q\nsecond: %q", out, again)
	}
}

func TestFormatTextSyntaxError(t *testing.T) {
	_, err := FormatText("query { ", nil)
	if err == nil {
		t.Fatal("expected an error for unterminated selection set")
	}
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		t.Errorf("got %T, want *SyntaxError", err)
	}
}

func TestFormatTextConfigError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PrintWidth = 0

	_, err := FormatText("query { hello }\n", cfg)
	if err == nil {
		t.Fatal("expected an error for invalid printWidth")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("got %T, want *ConfigError", err)
	}
}

func TestFormatTextAlwaysOneTrailingNewline(t *testing.T) {
	out, err := FormatText("query{hello}", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		t.Fatalf("expected trailing newline, got %q", out)
	}
	if len(out) >= 2 && out[len(out)-2] == '\n' {
		t.Fatalf("expected exactly one trailing newline, got %q", out)
	}
}

func TestPrintTreeUsesParsedDocument(t *testing.T) {
	src := "query{hello}\n"
	doc, err := gqlsyntax.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	out, err := PrintTree(doc, src, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "query {\n  hello\n}\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
