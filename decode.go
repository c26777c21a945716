package blockconf

import (
	"fmt"
	"io"
)

// Unmarshal parses block-structured data and stores the result in the
// value pointed to by v.
//
// Each level of the document is split into blocks and every block is
// keyed by the text of its header before the first colon. v may point
// to a struct, a map with string keys or an empty interface:
//
//   - string fields and map values receive the header value;
//   - struct, pointer-to-struct and map fields descend into the block's
//     body;
//   - an empty interface receives a map[string]any of strings and
//     nested maps.
//
// Struct fields are matched by their `blockconf:"name"` tag or, without
// one, by their Go name. A tag of "-" skips the field. Keys with no
// matching field are ignored and the first of duplicate keys wins.
// Values are never converted: a field of any other kind is an error.
func Unmarshal(data []byte, v any, opts ...Option) error {
	p := std
	if len(opts) > 0 {
		var err error
		if p, err = NewParser(opts...); err != nil {
			return err
		}
	}
	return p.Unmarshal(data, v)
}

// Unmarshal parses data with p's settings and stores the result in v.
// See the package-level Unmarshal for details.
func (p *Parser) Unmarshal(data []byte, v any) error {
	return p.m.Map(string(data), v)
}

// Decoder reads and decodes a document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The whole input is read into memory before decoding.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the rest of the input and stores the decoded document
// in the value pointed to by v.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("blockconf: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	return Unmarshal(data, v, d.opts...)
}
