package parser

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-blockconf/internal/lexer"
)

const (
	// DefaultMaxIterations caps the number of blocks Segment will peel off.
	DefaultMaxIterations = 400

	// DefaultWildcard is the block name that matches any block.
	DefaultWildcard = "*"
)

// Config holds the settings of a Parser. Zero values select the defaults.
type Config struct {
	MaxIterations int
	Wildcard      string
	Logger        logrus.FieldLogger
}

// Parser implements the text stages of the block pipeline. Each method
// is a pure function of its input; a Parser is safe for concurrent use.
type Parser struct {
	maxIterations int
	wildcard      string
	log           logrus.FieldLogger
}

// Locator returns the first block named name in text, or "" if there is none.
type Locator func(name, text string) string

// New creates a new parser.
func New(cfg Config) *Parser {
	p := &Parser{
		maxIterations: cfg.MaxIterations,
		wildcard:      cfg.Wildcard,
		log:           cfg.Logger,
	}
	if p.maxIterations <= 0 {
		p.maxIterations = DefaultMaxIterations
	}
	if p.wildcard == "" {
		p.wildcard = DefaultWildcard
	}
	if p.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		p.log = l
	}
	return p
}

// Wildcard returns the block name that matches any block.
func (p *Parser) Wildcard() string {
	return p.wildcard
}

// Logger returns the logger the parser reports to.
func (p *Parser) Logger() logrus.FieldLogger {
	return p.log
}

// Strip removes whole-line comments and blank lines. Lines keep their
// original indentation and order; the result has no trailing newline.
func (p *Parser) Strip(text string) string {
	l := lexer.New(text)
	var kept []string
	for _, tok := range l.Tokens() {
		if tok.IsTrivia() {
			continue
		}
		kept = append(kept, tok.Literal)
	}
	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}

// Value returns the text after the first colon of the first line whose
// trimmed content starts with key. Nested lines are scanned like any
// other line. A missing key yields "".
func (p *Parser) Value(key, text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		// A line without a colon yields the whole trimmed line.
		idx := strings.IndexByte(trimmed, ':')
		return strings.TrimSpace(trimmed[idx+1:])
	}
	p.log.WithField("key", key).Debug("key not found")
	return ""
}

// SplitHeader splits the first line of block into its key (the trimmed
// text before the first colon) and value (the trimmed text after it).
// A header without a colon has an empty value.
func SplitHeader(block string) (key, value string) {
	header, _, _ := strings.Cut(block, "\n")
	key, value, _ = strings.Cut(strings.TrimSpace(header), ":")
	return strings.TrimSpace(key), strings.TrimSpace(value)
}
