package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// field represents a cached struct field.
type field struct {
	name   string
	idx    []int
	tagged bool
}

// fieldCache caches a map of block keys to their fields for a given struct type.
var fieldCache sync.Map

// cachedFields parses a struct's `blockconf` tags once per type.
// It skips embedded and unexported fields and fields tagged with "blockconf:-".
func cachedFields(t reflect.Type) map[string]field {
	if f, ok := fieldCache.Load(t); ok {
		return f.(map[string]field)
	}

	fields := make(map[string]field)
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("blockconf")
		if tag == "-" {
			continue
		}

		f := field{idx: sf.Index}
		// Options after a comma are reserved.
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
			f.tagged = true
		} else {
			f.name = sf.Name
		}

		// A tagged name wins over a field whose Go name collides with it.
		if prev, dup := fields[f.name]; dup && prev.tagged && !f.tagged {
			continue
		}
		fields[f.name] = f
	}

	fieldCache.Store(t, fields)
	return fields
}
