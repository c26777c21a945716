package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-blockconf/internal/mapper"
	"github.com/KimNorgaard/go-blockconf/internal/parser"
)

func unmarshal(input string, v any) error {
	return mapper.New(parser.New(parser.Config{}), mapper.DefaultMaxDepth).Map(input, v)
}

type server struct {
	Host string `blockconf:"host"`
	Port string `blockconf:"port"`
}

type config struct {
	Name    string            `blockconf:"name"`
	Server  server            `blockconf:"server"`
	Backup  *server           `blockconf:"backup"`
	Labels  map[string]string `blockconf:"labels"`
	Ignored string            `blockconf:"-"`
	Plain   string
}

const document = `# service
name: api
server:
  host: localhost
  # the port
  port: 8080
backup:
  host: standby
labels:
  team: core
  tier: 1
Plain: yes
Ignored: no
unknown: skipped
`

func TestMap(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		var cfg config
		require.NoError(t, unmarshal(document, &cfg))

		require.Equal(t, "api", cfg.Name)
		require.Equal(t, server{Host: "localhost", Port: "8080"}, cfg.Server)
		require.NotNil(t, cfg.Backup)
		require.Equal(t, server{Host: "standby"}, *cfg.Backup)
		require.Equal(t, map[string]string{"team": "core", "tier": "1"}, cfg.Labels)
		require.Equal(t, "yes", cfg.Plain)
		require.Empty(t, cfg.Ignored)
	})

	t.Run("Map of strings", func(t *testing.T) {
		var m map[string]string
		require.NoError(t, unmarshal("a: 1\nb: two words\nc:\n  d: nested", &m))
		require.Equal(t, map[string]string{"a": "1", "b": "two words", "c": ""}, m)
	})

	t.Run("Map of structs", func(t *testing.T) {
		var m map[string]server
		require.NoError(t, unmarshal("primary:\n  host: a\nsecondary:\n  host: b\n  port: 2", &m))
		require.Equal(t, map[string]server{
			"primary":   {Host: "a"},
			"secondary": {Host: "b", Port: "2"},
		}, m)
	})

	t.Run("Interface", func(t *testing.T) {
		var v any
		require.NoError(t, unmarshal(document, &v))
		require.Equal(t, map[string]any{
			"name": "api",
			"server": map[string]any{
				"host": "localhost",
				"port": "8080",
			},
			"backup": map[string]any{
				"host": "standby",
			},
			"labels": map[string]any{
				"team": "core",
				"tier": "1",
			},
			"Plain":   "yes",
			"Ignored": "no",
			"unknown": "skipped",
		}, v)
	})

	t.Run("First key wins", func(t *testing.T) {
		var m map[string]string
		require.NoError(t, unmarshal("a: 1\na: 2", &m))
		require.Equal(t, map[string]string{"a": "1"}, m)
	})

	t.Run("Empty document", func(t *testing.T) {
		var cfg config
		require.NoError(t, unmarshal("# nothing\n", &cfg))
		require.Equal(t, config{}, cfg)
	})

	t.Run("Deeply indented body", func(t *testing.T) {
		var cfg config
		require.NoError(t, unmarshal("server:\n    host: wide\n    port: 1", &cfg))
		require.Equal(t, server{Host: "wide", Port: "1"}, cfg.Server)
	})
}

func TestMap_Errors(t *testing.T) {
	t.Run("Non-pointer", func(t *testing.T) {
		var cfg config
		err := unmarshal("name: x", cfg)
		require.ErrorContains(t, err, "non-pointer")
	})

	t.Run("Nil pointer", func(t *testing.T) {
		var cfg *config
		err := unmarshal("name: x", cfg)
		require.ErrorContains(t, err, "non-pointer")
	})

	t.Run("Unsupported field type", func(t *testing.T) {
		var v struct {
			Port int `blockconf:"port"`
		}
		err := unmarshal("port: 8080", &v)
		require.ErrorContains(t, err, `cannot unmarshal block "port" into Go value of type int`)
	})

	t.Run("Unsupported root type", func(t *testing.T) {
		var s string
		err := unmarshal("a: 1", &s)
		require.ErrorContains(t, err, "cannot unmarshal blocks into Go value of type string")
	})

	t.Run("Non-string map key", func(t *testing.T) {
		var m map[int]string
		err := unmarshal("1: a", &m)
		require.ErrorContains(t, err, "non-string key type int")
	})

	t.Run("Inconsistent indentation", func(t *testing.T) {
		var cfg config
		err := unmarshal("server:\n    host: a\n  port: 1", &cfg)
		require.ErrorIs(t, err, parser.ErrInvalidBlock)
		require.ErrorContains(t, err, `block "server"`)
	})

	t.Run("Max depth", func(t *testing.T) {
		var v any
		m := mapper.New(parser.New(parser.Config{}), 2)
		require.NoError(t, m.Map("a:\n  b: 1", &v))
		err := m.Map("a:\n  b:\n    c: 1", &v)
		require.ErrorContains(t, err, "max recursion depth")
	})
}
