package prettygql

import (
	"fmt"

	"github.com/donaldgifford/prettygql/internal/config"
)

// SyntaxError reports a lexing or parsing failure. FormatText returns
// one wrapping the lexer/parser's diagnostic; no partial output is
// ever produced alongside it.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Err.Error() }
func (e *SyntaxError) Unwrap() error { return e.Err }

// ConfigError reports an invalid configuration value. It is returned
// before any formatting work runs; FormatText parses the source first,
// so a syntax error is reported ahead of a config error.
type ConfigError = config.Error

// internalError wraps a recovered panic from the document builder: an
// unreachable CST shape or missing expected child, which indicates a
// bug in this package rather than bad input.
type internalError struct {
	err error
}

func (e *internalError) Error() string { return fmt.Sprintf("prettygql: internal error: %v", e.err) }
func (e *internalError) Unwrap() error { return e.err }

func recoverInternal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		*err = &internalError{err: e}
		return
	}
	*err = &internalError{err: fmt.Errorf("%v", r)}
}
