// Package schema discovers and models the Ghostty configuration schema.
//
// Ghostty does not ship a machine-readable option catalog. The closest thing
// is the output of `ghostty +show-config --default --docs`: repeated blocks of
// `# `-prefixed documentation lines followed by a single `key = value` line.
// This package parses that dump into a typed Schema, inferring for every
// option its value type, its UI category, and whether the key may legally
// appear multiple times.
//
// # Parsing
//
//	raw, _ := client.ShowConfig()
//	sch := schema.Parse(raw)
//
//	opt, ok := sch.FindOption("font-size")
//	fontOpts := sch.OptionsForCategory(schema.Fonts)
//
// The parser is total over any string input: documentation blocks without a
// key line are dropped, unrecognized lines are ignored, and a key seen twice
// is de-duplicated in favor of the occurrence that carries documentation.
//
// # Type Inference
//
// InferType decides a ValueType from the key name, the default value, and the
// documentation text. The resolution order is fixed: manual overrides, the
// keybind/palette/font-family special keys, boolean defaults, color key
// heuristics, path keys, enum bullet lists extracted from the docs, float and
// integer defaults, comma-separated keys, and finally plain text. The
// function is pure and never fails.
//
// # Categorization
//
// Categorize maps a key to exactly one of 16 UI categories. Exact-name
// matches are checked first, then an ordered list of prefix/substring rules.
// The rule order is load-bearing: "split-color" matches both the Colors and
// the Appearance rule families and must resolve to Colors. Keys matching
// nothing fall back to Advanced.
//
// The Schema is built once at startup and is immutable afterwards; reads
// need no synchronization.
package schema
