package blockconf

import "github.com/KimNorgaard/go-blockconf/internal/parser"

// An InvalidBlockError is returned by Unindent when a line has fewer
// leading spaces than the first line of the text. It means the text was
// not a single coherently indented block.
type InvalidBlockError = parser.InvalidBlockError

// ErrInvalidBlock matches any *InvalidBlockError with errors.Is.
var ErrInvalidBlock = parser.ErrInvalidBlock
