// Package prettygql formats GraphQL documents and schema files: parse,
// resolve configuration, build a print document, and render it with a
// Wadler/Oppen layout engine. FormatText is the entry point most
// callers want; PrintTree renders an already-parsed document, given
// the source text it was parsed from.
package prettygql
