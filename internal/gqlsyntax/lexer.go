package gqlsyntax

import (
	"strings"
)

// lex tokenizes src into a flat, EOF-terminated token stream with
// trivia already classified as leading or trailing per the rule: a
// comment on the same line as the previous token, with nothing else
// between them, is that token's trailing trivia; everything else is
// the next token's leading trivia, with runs of two or more line
// breaks collapsed to one blank-line marker.
func lex(src string) ([]*Token, error) {
	l := &lexer{src: src, line: 1, col: 1}

	_, leading := l.scanGap(false)
	var toks []*Token
	for {
		startLine, startCol := l.line, l.col
		startPos := l.pos
		tok, err := l.scanToken()
		if err != nil {
			return nil, err
		}
		tok.Leading = leading
		tok.Line, tok.Col = startLine, startCol
		tok.Start, tok.End = startPos, l.pos
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			break
		}
		trailing, nextLeading := l.scanGap(true)
		tok.Trailing = trailing
		leading = nextLeading
	}
	return toks, nil
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func (l *lexer) eof() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.src) {
		return 0
	}
	return l.src[l.pos+off]
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

// scanGap consumes whitespace, commas, and comments between two
// tokens. hasPrev is false only before the very first token, when a
// leading comment can never be classified as trailing.
func (l *lexer) scanGap(hasPrev bool) (trailing, leading []Trivia) {
	nl := 0
	first := true
	for {
		for !l.eof() && isSpace(l.peek()) {
			if l.peek() == '\n' {
				nl++
			}
			l.advance()
		}
		if l.eof() || l.peek() != '#' {
			break
		}
		start := l.pos
		for !l.eof() && l.peek() != '\n' {
			l.advance()
		}
		text := l.src[start:l.pos]
		if first && hasPrev && nl == 0 {
			trailing = append(trailing, Trivia{Kind: TriviaComment, Text: text})
		} else {
			if nl >= 2 {
				leading = append(leading, Trivia{Kind: TriviaBlankLine})
			}
			leading = append(leading, Trivia{Kind: TriviaComment, Text: text})
		}
		first = false
		nl = 0
	}
	if nl >= 2 {
		leading = append(leading, Trivia{Kind: TriviaBlankLine})
	}
	return
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameCont(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *lexer) scanToken() (*Token, error) {
	if l.eof() {
		return &Token{Kind: TokEOF}, nil
	}
	c := l.peek()

	switch {
	case isNameStart(c):
		start := l.pos
		for !l.eof() && isNameCont(l.peek()) {
			l.advance()
		}
		return &Token{Kind: TokName, Text: l.src[start:l.pos]}, nil

	case c == '-' || isDigit(c):
		return l.scanNumber()

	case c == '"':
		if l.peekAt(1) == '"' && l.peekAt(2) == '"' {
			return l.scanBlockString()
		}
		return l.scanString()

	case c == '.':
		if l.peekAt(1) == '.' && l.peekAt(2) == '.' {
			l.advance()
			l.advance()
			l.advance()
			return &Token{Kind: TokPunct, Text: "..."}, nil
		}
		return nil, &ParseError{Line: l.line, Col: l.col, Message: "unexpected '.'"}

	case strings.IndexByte("{}()[]:=@|&!$", c) >= 0:
		l.advance()
		return &Token{Kind: TokPunct, Text: string(c)}, nil

	default:
		return nil, &ParseError{Line: l.line, Col: l.col, Message: "unexpected character " + string(c)}
	}
}

func (l *lexer) scanNumber() (*Token, error) {
	start := l.pos
	isFloat := false
	if l.peek() == '-' {
		l.advance()
	}
	for !l.eof() && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance()
		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for !l.eof() && isDigit(l.peek()) {
			l.advance()
		}
	}
	text := l.src[start:l.pos]
	if isFloat {
		return &Token{Kind: TokFloatValue, Text: text}, nil
	}
	return &Token{Kind: TokIntValue, Text: text}, nil
}

func (l *lexer) scanString() (*Token, error) {
	start := l.pos
	l.advance() // opening quote
	for {
		if l.eof() {
			return nil, &ParseError{Line: l.line, Col: l.col, Message: "unterminated string"}
		}
		c := l.peek()
		if c == '"' {
			l.advance()
			break
		}
		if c == '\n' {
			return nil, &ParseError{Line: l.line, Col: l.col, Message: "unterminated string"}
		}
		if c == '\\' {
			l.advance()
			if l.eof() {
				return nil, &ParseError{Line: l.line, Col: l.col, Message: "unterminated string"}
			}
		}
		l.advance()
	}
	return &Token{Kind: TokStringValue, Text: l.src[start:l.pos]}, nil
}

func (l *lexer) scanBlockString() (*Token, error) {
	start := l.pos
	l.advance()
	l.advance()
	l.advance()
	for {
		if l.eof() {
			return nil, &ParseError{Line: l.line, Col: l.col, Message: "unterminated block string"}
		}
		if l.peek() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
			l.advance()
			l.advance()
			l.advance()
			break
		}
		if l.peek() == '\\' && l.peekAt(1) == '"' && l.peekAt(2) == '"' && l.peekAt(3) == '"' {
			l.advance()
			l.advance()
			l.advance()
			l.advance()
			continue
		}
		l.advance()
	}
	return &Token{Kind: TokBlockStringValue, Text: l.src[start:l.pos]}, nil
}
