package document

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	errs "github.com/madeye/ghostty-config/internal/errors"
)

// Read loads the config file at path. A missing file yields an empty
// document bound to path, so a fresh install works without setup.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(path), nil
		}
		return nil, errs.WrapPath(errs.ErrCodeIO, "failed to read config file", path, err)
	}

	doc := ParseText(string(data))
	doc.Path = path
	return doc, nil
}

// ParseText parses config text into a document. Parsing is total: every
// line becomes an entry, and lines that fit no known form are kept as
// comment entries so nothing is lost on write.
func ParseText(text string) *Document {
	doc := &Document{}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			doc.Entries = append(doc.Entries, Blank())
		case strings.HasPrefix(trimmed, "#"):
			doc.Entries = append(doc.Entries, Comment(line))
		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			doc.Entries = append(doc.Entries, KeyValue(strings.TrimSpace(key), strings.TrimSpace(value)))
		default:
			// Not a recognizable line; preserve it untouched.
			doc.Entries = append(doc.Entries, Comment(line))
		}
	}

	return doc
}

// Serialize renders the document back to config text. Comments and blank
// lines are emitted verbatim; key-value entries are normalized to
// "key = value".
func (d *Document) Serialize() string {
	var b strings.Builder
	for _, e := range d.Entries {
		switch e.Kind {
		case EntryComment:
			b.WriteString(e.Text)
		case EntryKeyValue:
			b.WriteString(e.Key)
			b.WriteString(" = ")
			b.WriteString(e.Value)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write saves the document to its path, creating parent directories as
// needed.
func (d *Document) Write() error {
	if d.Path == "" {
		return errs.Validation("document has no path")
	}

	dir := filepath.Dir(d.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errs.WrapPath(errs.ErrCodeIO, "failed to create config directory", dir, err)
	}

	if err := os.WriteFile(d.Path, []byte(d.Serialize()), 0644); err != nil {
		return errs.WrapPath(errs.ErrCodeIO, "failed to write config file", d.Path, err)
	}
	return nil
}
