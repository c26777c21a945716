package blockconf

import (
	"github.com/KimNorgaard/go-blockconf/internal/lexer"
	"github.com/KimNorgaard/go-blockconf/internal/mapper"
	"github.com/KimNorgaard/go-blockconf/internal/parser"
)

// Parser walks block-structured text. The zero value is not usable;
// create one with NewParser. A Parser holds no mutable state and is
// safe for concurrent use.
type Parser struct {
	p *parser.Parser
	m *mapper.Mapper
}

var std = newParser(options{})

// NewParser returns a Parser configured by opts.
func NewParser(opts ...Option) (*Parser, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return newParser(o), nil
}

func newParser(o options) *Parser {
	p := parser.New(parser.Config{
		MaxIterations: o.maxIterations,
		Wildcard:      o.wildcard,
		Logger:        o.logger,
	})
	return &Parser{p: p, m: mapper.New(p, o.maxDepth)}
}

// Strip removes whole-line comments and blank lines from text.
func (p *Parser) Strip(text string) string { return p.p.Strip(text) }

// Block returns the first block of text named name, or "" if none matches.
func (p *Parser) Block(name, text string) string { return p.p.Block(name, text) }

// Blocks splits text into its top-level blocks, in document order.
func (p *Parser) Blocks(text string) []string { return p.p.Blocks(text) }

// Dename drops the header line of block.
func (p *Parser) Dename(block string) string { return p.p.Dename(block) }

// Unindent shifts block left by the indent of its first line.
func (p *Parser) Unindent(block string) (string, error) { return p.p.Unindent(block) }

// Value returns the value of the first line of text starting with key.
func (p *Parser) Value(key, text string) string { return p.p.Value(key, text) }

// Lookup follows path through nested blocks and returns the value of
// the last element. Each element must equal a block's header key
// exactly. A missing element yields "" and a nil error.
func (p *Parser) Lookup(text string, path ...string) (string, error) {
	if len(path) == 0 {
		return "", nil
	}

	doc := text
	for _, name := range path[:len(path)-1] {
		block, ok := p.child(name, doc)
		if !ok {
			return "", nil
		}
		body, err := p.p.Unindent(p.p.Dename(block))
		if err != nil {
			return "", err
		}
		doc = body
	}

	block, ok := p.child(path[len(path)-1], doc)
	if !ok {
		return "", nil
	}
	_, value := parser.SplitHeader(block)
	return value, nil
}

func (p *Parser) child(name, doc string) (string, bool) {
	for _, block := range p.p.Blocks(doc) {
		if key, _ := parser.SplitHeader(block); key == name {
			return block, true
		}
	}
	p.p.Logger().WithField("block", name).Debug("lookup missed")
	return "", false
}

// Strip removes whole-line comments and blank lines from text. A line is
// a comment when its trimmed content starts with '#'; comments after
// other content are kept. The result has no trailing newline.
func Strip(text string) string {
	return std.Strip(text)
}

// Indent returns the number of leading spaces of line. Tabs do not count.
func Indent(line string) int {
	return lexer.Indent(line)
}

// Block returns the first block of text whose header is at the
// document's baseline indent and whose trimmed header starts with name.
// The header is followed by every line that begins with at least one
// more space than the header. An empty name or "*" returns the first
// block, whatever its name. If nothing matches Block returns "".
//
// Matching is by prefix: a search for "key1" also finds "key10".
func Block(name, text string) string {
	return std.Block(name, text)
}

// Blocks splits text into its consecutive top-level blocks. Joining the
// result with newlines reproduces Strip(text). At most 400 blocks are
// returned; use a Parser with MaxIterations to change the limit.
func Blocks(text string) []string {
	return std.Blocks(text)
}

// Dename returns block without its header line.
func Dename(block string) string {
	return std.Dename(block)
}

// Unindent removes the leading spaces of the first line of block from
// every line. Text that does not start with a space is returned as is.
// If a line has fewer leading spaces, Unindent returns an
// *InvalidBlockError.
func Unindent(block string) (string, error) {
	return std.Unindent(block)
}

// Value returns the trimmed text after the first colon of the first line
// whose trimmed content starts with key. Nested lines are included in
// the scan. If no line matches Value returns "", which is also the
// result for a key with an empty value.
func Value(key, text string) string {
	return std.Value(key, text)
}

// Lookup follows path through nested blocks of text and returns the
// value at the end of it.
//
//	v, err := blockconf.Lookup(doc, "server", "port")
func Lookup(text string, path ...string) (string, error) {
	return std.Lookup(text, path...)
}
