package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-blockconf/internal/token"
)

// Lexer splits a document into line tokens.
type Lexer struct {
	input string
	pos   int
	line  int
}

// New creates and returns a new Lexer.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next line of the input. A trailing newline
// does not produce an extra empty line; once the input is consumed
// every call returns an EOF token.
func (l *Lexer) NextToken() token.Token {
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Line: l.line + 1}
	}

	var lit string
	if end := strings.IndexByte(l.input[l.pos:], '\n'); end < 0 {
		lit = l.input[l.pos:]
		l.pos = len(l.input)
	} else {
		lit = l.input[l.pos : l.pos+end]
		l.pos += end + 1
	}
	l.line++

	return token.Token{
		Type:    token.LookupLine(lit),
		Literal: lit,
		Line:    l.line,
		Indent:  Indent(lit),
	}
}

// Tokens drains the lexer and returns every line token, excluding EOF.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Indent returns the number of leading ASCII spaces in line.
// Tabs are not indentation.
func Indent(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
