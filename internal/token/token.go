package token

import "strings"

// Type is the kind of a source line.
type Type string

// Token represents a single line of a document.
type Token struct {
	Type    Type
	Literal string // the raw line, without its newline
	Line    int    // 1-based line number
	Indent  int    // leading spaces
}

const (
	// Special tokens
	EOF Type = "EOF" // End of input

	// Line kinds
	COMMENT Type = "COMMENT" // # a whole-line comment
	BLANK   Type = "BLANK"   // empty or whitespace only
	TEXT    Type = "TEXT"    // key: value, block header, anything else
)

// CommentMarker starts a whole-line comment.
const CommentMarker = "#"

// LookupLine classifies a line by its trimmed content.
// Only whole-line comments are recognized; a '#' after other
// content leaves the line as TEXT.
func LookupLine(line string) Type {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return BLANK
	case strings.HasPrefix(trimmed, CommentMarker):
		return COMMENT
	default:
		return TEXT
	}
}

// IsTrivia reports whether a token carries no content.
func (t Token) IsTrivia() bool {
	return t.Type == COMMENT || t.Type == BLANK
}
