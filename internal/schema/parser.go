package schema

import (
	"bufio"
	"strings"
)

// Parse builds a Schema from the raw output of
// `ghostty +show-config --default --docs`.
//
// The dump consists of blocks of `# `-prefixed documentation lines followed
// by one `key = value` line, separated by blank lines. Parse is total: lines
// that fit no rule are ignored and a malformed block can at worst drop
// itself, never the whole parse.
func Parse(raw string) *Schema {
	var options []Option
	var docLines []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "#"):
			// Strip the marker and one optional following space.
			doc := strings.TrimPrefix(line[1:], " ")
			docLines = append(docLines, doc)

		case strings.TrimSpace(line) == "":
			// Blank lines inside a documentation block are kept so that
			// paragraph structure survives; leading blanks are dropped.
			if len(docLines) > 0 {
				docLines = append(docLines, "")
			}

		default:
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				// Not expected in the dump format, but must not abort.
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)

			// Trailing blank lines carry no documentation.
			for len(docLines) > 0 && docLines[len(docLines)-1] == "" {
				docLines = docLines[:len(docLines)-1]
			}
			documentation := strings.Join(docLines, "\n")
			docLines = nil

			// A key repeated without documentation is the repeat marker of
			// an earlier definition; a repeat that carries documentation
			// supersedes an earlier bare occurrence.
			if seen[key] {
				if documentation == "" {
					continue
				}
				options = removeOption(options, key)
			}

			options = append(options, Option{
				Key:           key,
				DefaultValue:  value,
				Documentation: documentation,
				Type:          InferType(key, value, documentation),
				Category:      Categorize(key),
				Repeatable:    IsRepeatable(key),
			})
			seen[key] = true
		}
	}

	return &Schema{Options: options}
}

func removeOption(options []Option, key string) []Option {
	kept := options[:0]
	for _, o := range options {
		if o.Key != key {
			kept = append(kept, o)
		}
	}
	return kept
}
