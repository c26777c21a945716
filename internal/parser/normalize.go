package parser

import (
	"strings"

	"github.com/KimNorgaard/go-blockconf/internal/lexer"
)

// Dename drops the header line of block.
func (p *Parser) Dename(block string) string {
	lines := strings.Split(block, "\n")
	if len(lines) <= 1 {
		return ""
	}
	return strings.TrimRight(strings.Join(lines[1:], "\n"), "\n")
}

// Unindent removes the indent of the first line from every line of
// block. Text that does not start with a space is returned unchanged.
// A line with fewer leading spaces than the first one yields an
// *InvalidBlockError and no partial result.
func (p *Parser) Unindent(block string) (string, error) {
	if !strings.HasPrefix(block, " ") {
		return block, nil
	}

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	width := lexer.Indent(lines[0])
	prefix := strings.Repeat(" ", width)

	out := make([]string, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			err := &InvalidBlockError{
				Line:   i + 1,
				Indent: lexer.Indent(line),
				Want:   width,
				Text:   line,
			}
			p.log.WithError(err).Debug("unindent failed")
			return "", err
		}
		out[i] = line[width:]
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n"), nil
}
