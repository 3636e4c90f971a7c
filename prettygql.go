package prettygql

import (
	"github.com/donaldgifford/prettygql/internal/config"
	"github.com/donaldgifford/prettygql/internal/docbuilder"
	"github.com/donaldgifford/prettygql/internal/gqlsyntax"
	"github.com/donaldgifford/prettygql/internal/layout"
)

// FormatText parses source as a GraphQL document or schema, resolves
// cfg, and renders it back to text under the resolved layout options.
// A nil cfg uses config.DefaultConfig(). The result always ends in
// exactly one trailing line break.
func FormatText(source string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	doc, err := gqlsyntax.Parse(source)
	if err != nil {
		return "", &SyntaxError{Err: err}
	}

	res, err := config.NewResolver(cfg)
	if err != nil {
		return "", err
	}

	return render(doc, source, res)
}

// PrintTree renders an already-parsed document under cfg, skipping
// the parse step. src is the text doc was parsed from; it is only
// consulted for nodes carrying an ignore-comment directive, which are
// re-emitted verbatim from the original bytes. A nil cfg uses
// config.DefaultConfig().
func PrintTree(doc *gqlsyntax.Node, src string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	res, err := config.NewResolver(cfg)
	if err != nil {
		return "", err
	}

	return render(doc, src, res)
}

func render(doc *gqlsyntax.Node, src string, res *config.Resolver) (out string, err error) {
	defer recoverInternal(&err)

	b := docbuilder.New(res, src)
	d := b.BuildDocument(doc)
	out = layout.Render(d, layout.Options{
		PrintWidth:  res.PrintWidth(),
		UseTabs:     res.UseTabs(),
		IndentWidth: res.IndentWidth(),
		LineBreak:   layoutLineBreak(res.LineBreak()),
	})
	return out, nil
}

func layoutLineBreak(lb config.LineBreakKind) layout.LineBreak {
	if lb == config.CRLF {
		return layout.CRLF
	}
	return layout.LF
}
