/*
Package blockconf reads values out of simple indentation-structured
configuration text: whole-line '#' comments, "key: value" lines and
nested blocks introduced by a header line and indented below it.

	# service settings
	server:
	  host: localhost
	  port: 8080

The package does not build a tree. Every function maps text to text, and
callers walk a document one level at a time by combining them:

 1. Strip removes comments and blank lines.
 2. Blocks splits a document into its top-level blocks; Block finds one
    block by name.
 3. Dename drops a block's header line and Unindent shifts what remains
    back to column zero, so it can be treated as a document again.
 4. Value reads the text after the first colon of a line starting with
    a key.

Walking to server.port by hand:

	server := blockconf.Block("server", doc)
	body, err := blockconf.Unindent(blockconf.Dename(server))
	if err != nil {
		// handle error
	}
	port := blockconf.Value("port", body) // "8080"

Lookup does the same walk in one call:

	port, err := blockconf.Lookup(doc, "server", "port")

Misses are not errors. A block or key that cannot be found yields an
empty result. The only error of the text functions is the
*InvalidBlockError returned by Unindent for text whose lines do not
share the indent of the first line.

Values are always plain text. There are no lists, quoting, multi-line
scalars or type conversion. Unmarshal fills structs, maps and empty
interfaces from a document, using `blockconf` struct tags:

	type Config struct {
		Server struct {
			Host string `blockconf:"host"`
			Port string `blockconf:"port"`
		} `blockconf:"server"`
	}

	var cfg Config
	if err := blockconf.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

Matching by name is a prefix match in Block and Value ("key1" also finds
"key10"), while Lookup and Unmarshal compare keys exactly.

Every level is parsed again from text, so walking deep documents costs
time proportional to depth times size. The package is meant for small
documents.
*/
package blockconf
