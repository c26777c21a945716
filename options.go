package blockconf

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures a Parser.
type Option func(*options) error

type options struct {
	maxIterations int
	maxDepth      int
	wildcard      string
	logger        logrus.FieldLogger
}

// MaxIterations returns an Option that caps the number of blocks Blocks
// will split off a document before giving up. It guards against input
// that would otherwise never finish segmenting.
//
// The limit n must be a positive integer. The default is 400.
func MaxIterations(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("blockconf: max iterations must be a positive integer")
		}
		o.maxIterations = n
		return nil
	}
}

// MaxDepth returns an Option that sets the maximum nesting depth
// Unmarshal will descend into.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("blockconf: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Wildcard returns an Option that sets the block name matching any
// block. The default is "*".
func Wildcard(s string) Option {
	return func(o *options) error {
		if s == "" {
			return fmt.Errorf("blockconf: wildcard must not be empty")
		}
		o.wildcard = s
		return nil
	}
}

// WithLogger returns an Option that sends debug and warning entries to l.
// By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("blockconf: logger must not be nil")
		}
		o.logger = l
		return nil
	}
}
