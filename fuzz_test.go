//go:build go1.18

package blockconf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-blockconf"
	"github.com/KimNorgaard/go-blockconf/internal/testutil"
)

func addSeeds(f *testing.F) {
	names, err := testutil.Documents(".conf")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, name := range names {
		data, err := testutil.ReadTestData(name)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", name, err)
		}
		f.Add(string(data))
	}

	f.Add("")
	f.Add("#")
	f.Add("a:\n b\n  c\n d")
	f.Add("  a\n b\nc")
	f.Add("\r\n \t\n#x\n  y: z")
}

func FuzzStrip(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, input string) {
		stripped := blockconf.Strip(input)
		require.Equal(t, stripped, blockconf.Strip(stripped), "Strip is not idempotent")
		if stripped == "" {
			return
		}
		for _, line := range strings.Split(stripped, "\n") {
			trimmed := strings.TrimSpace(line)
			require.NotEmpty(t, trimmed, "blank line survived")
			require.False(t, strings.HasPrefix(trimmed, "#"), "comment line survived")
		}
	})
}

func FuzzBlocks(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, input string) {
		blocks := blockconf.Blocks(input)
		if len(blocks) >= 400 {
			return // iteration limit reached
		}
		require.Equal(t, blockconf.Strip(input), strings.Join(blocks, "\n"))

		for _, b := range blocks {
			require.NotEmpty(t, b)
			// Unindent either succeeds or reports an invalid block; it must not panic.
			_, _ = blockconf.Unindent(blockconf.Dename(b))
		}
	})
}
