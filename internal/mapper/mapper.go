package mapper

import (
	"fmt"
	"reflect"

	"github.com/KimNorgaard/go-blockconf/internal/parser"
)

// DefaultMaxDepth limits how deep Map descends into nested blocks.
const DefaultMaxDepth = 1000

// Mapper populates Go values from block text.
type Mapper struct {
	p        *parser.Parser
	maxDepth int
}

// New returns a mapper that segments text with p.
func New(p *parser.Parser, maxDepth int) *Mapper {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Mapper{p: p, maxDepth: maxDepth}
}

// Map walks the document from its top-level blocks and populates the
// Go value pointed to by v.
func (m *Mapper) Map(text string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("blockconf: Unmarshal(non-pointer %T or nil)", v)
	}
	return m.mapBlocks(text, rv.Elem(), m.maxDepth)
}

// entry is a top-level block and the key of its header.
type entry struct {
	key   string
	block string
}

// entries segments text into keyed blocks. The first block with a
// given key wins.
func (m *Mapper) entries(text string) []entry {
	seen := make(map[string]bool)
	var out []entry
	for _, block := range m.p.Blocks(text) {
		key, _ := parser.SplitHeader(block)
		if seen[key] {
			m.p.Logger().WithField("key", key).Debug("ignoring duplicate key")
			continue
		}
		seen[key] = true
		out = append(out, entry{key: key, block: block})
	}
	return out
}

// body returns the contents of a block as a top-level document.
func (m *Mapper) body(e entry) (string, error) {
	body, err := m.p.Unindent(m.p.Dename(e.block))
	if err != nil {
		return "", fmt.Errorf("blockconf: block %q: %w", e.key, err)
	}
	return body, nil
}

// mapBlocks maps a whole document onto rv.
func (m *Mapper) mapBlocks(text string, rv reflect.Value, depth int) error {
	if depth <= 0 {
		return fmt.Errorf("blockconf: reached max recursion depth")
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return m.mapBlocks(text, rv.Elem(), depth)
	case reflect.Struct:
		return m.mapStruct(text, rv, depth)
	case reflect.Map:
		return m.mapMap(text, rv, depth)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			break
		}
		tree, err := m.tree(text, depth)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(tree))
		return nil
	}
	return fmt.Errorf("blockconf: cannot unmarshal blocks into Go value of type %s", rv.Type())
}

// mapEntry maps a single block onto rv. Strings take the header value;
// everything else descends into the block's body.
func (m *Mapper) mapEntry(e entry, rv reflect.Value, depth int) error {
	switch rv.Kind() {
	case reflect.String:
		_, value := parser.SplitHeader(e.block)
		rv.SetString(value)
		return nil
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return m.mapEntry(e, rv.Elem(), depth)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return fmt.Errorf("blockconf: cannot unmarshal block %q into Go value of type %s", e.key, rv.Type())
		}
		v, err := m.value(e, depth)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(v))
		return nil
	case reflect.Struct, reflect.Map:
		body, err := m.body(e)
		if err != nil {
			return err
		}
		return m.mapBlocks(body, rv, depth-1)
	default:
		return fmt.Errorf("blockconf: cannot unmarshal block %q into Go value of type %s", e.key, rv.Type())
	}
}

func (m *Mapper) mapStruct(text string, rv reflect.Value, depth int) error {
	fields := cachedFields(rv.Type())
	for _, e := range m.entries(text) {
		f, ok := fields[e.key]
		if !ok {
			m.p.Logger().WithField("key", e.key).Debug("no field for key")
			continue
		}
		if err := m.mapEntry(e, rv.FieldByIndex(f.idx), depth); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mapper) mapMap(text string, rv reflect.Value, depth int) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("blockconf: cannot unmarshal blocks into map with non-string key type %s", mapType.Key())
	}

	if rv.IsNil() {
		rv.Set(reflect.MakeMap(mapType))
	}
	elemType := mapType.Elem()

	for _, e := range m.entries(text) {
		newVal := reflect.New(elemType).Elem()
		if err := m.mapEntry(e, newVal, depth); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(e.key).Convert(mapType.Key()), newVal)
	}
	return nil
}

// tree builds a generic map of the document: blocks with a body become
// nested maps, the rest become their header value.
func (m *Mapper) tree(text string, depth int) (map[string]any, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("blockconf: reached max recursion depth")
	}
	out := make(map[string]any)
	for _, e := range m.entries(text) {
		v, err := m.value(e, depth)
		if err != nil {
			return nil, err
		}
		out[e.key] = v
	}
	return out, nil
}

func (m *Mapper) value(e entry, depth int) (any, error) {
	if m.p.Dename(e.block) == "" {
		_, value := parser.SplitHeader(e.block)
		return value, nil
	}
	body, err := m.body(e)
	if err != nil {
		return nil, err
	}
	return m.tree(body, depth-1)
}
