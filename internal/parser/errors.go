package parser

import (
	"errors"
	"fmt"
)

// ErrInvalidBlock is matched by every *InvalidBlockError.
var ErrInvalidBlock = errors.New("blockconf: not a block")

// InvalidBlockError reports a line that does not share the indent of the
// first line of the text being unindented.
type InvalidBlockError struct {
	Line   int    // 1-based line within the block
	Indent int    // leading spaces found
	Want   int    // leading spaces required
	Text   string // the offending line
}

func (e *InvalidBlockError) Error() string {
	return fmt.Sprintf("blockconf: not a block: line %d has %d leading spaces, want at least %d: %q",
		e.Line, e.Indent, e.Want, e.Text)
}

// Is reports whether target is ErrInvalidBlock.
func (e *InvalidBlockError) Is(target error) bool {
	return target == ErrInvalidBlock
}
