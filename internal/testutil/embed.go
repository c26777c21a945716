package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Dir is the directory of the test data, relative to this package.
const Dir = "testdata"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join(Dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Documents returns the names of the embedded documents with the given
// extension, such as ".conf".
func Documents(ext string) ([]string, error) {
	matches, err := fs.Glob(TestdataFS, path.Join(Dir, "*"+ext))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimPrefix(m, Dir+"/"))
	}
	return names, nil
}
