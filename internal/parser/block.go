package parser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-blockconf/internal/lexer"
)

// Block returns the first block in text whose header is at the
// document's baseline indent and whose trimmed header starts with name.
// An empty name or the wildcard selects the first block regardless of
// its name.
//
// The baseline is the indent of the first non-comment line. A header
// matches when it begins with at least that many spaces. The block runs
// until the first line that does not begin with one more space than the
// header.
func (p *Parser) Block(name, text string) string {
	stripped := p.Strip(text)
	if stripped == "" {
		return ""
	}
	lines := strings.Split(stripped, "\n")

	wild := name == "" || name == p.wildcard
	baseline := strings.Repeat(" ", lexer.Indent(lines[0]))

	for i, line := range lines {
		if !strings.HasPrefix(line, baseline) {
			continue
		}
		if !wild && !strings.HasPrefix(strings.TrimSpace(line), name) {
			continue
		}

		child := strings.Repeat(" ", lexer.Indent(line)+1)
		end := i + 1
		for end < len(lines) && strings.HasPrefix(lines[end], child) {
			end++
		}
		return strings.Join(lines[i:end], "\n")
	}

	p.log.WithField("block", name).Debug("block not found")
	return ""
}

// Blocks splits text into its consecutive top-level blocks.
func (p *Parser) Blocks(text string) []string {
	return p.Segment(text, p.Block)
}

// Segment repeatedly asks locate for the leading block of the remaining
// document and removes it, until nothing but comments and blank lines is
// left. Segmentation stops early, returning the blocks found so far,
// when locate yields "" or text that is not a prefix of the remaining
// document, or after the configured number of iterations.
func (p *Parser) Segment(text string, locate Locator) []string {
	var blocks []string
	rest := p.Strip(text)

	for i := 0; rest != ""; i++ {
		if i >= p.maxIterations {
			p.log.WithFields(logrus.Fields{
				"iterations": i,
				"blocks":     len(blocks),
			}).Warn("block segmentation reached iteration limit")
			return blocks
		}

		block := locate(p.wildcard, rest)
		if block == "" || !strings.HasPrefix(rest, block) {
			p.log.WithFields(logrus.Fields{
				"iterations": i,
				"blocks":     len(blocks),
			}).Warn("block segmentation stopped: no leading block")
			return blocks
		}

		blocks = append(blocks, block)
		p.log.WithFields(logrus.Fields{
			"index": len(blocks) - 1,
			"lines": strings.Count(block, "\n") + 1,
		}).Debug("segmented block")

		rest = p.Strip(rest[len(block):])
	}

	return blocks
}
