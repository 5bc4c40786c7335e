package document

// EntryKind identifies what a config file line holds.
type EntryKind int

const (
	// EntryComment is a line starting with # (or any line that could not be
	// parsed, kept verbatim).
	EntryComment EntryKind = iota
	// EntryBlank is an empty or whitespace-only line.
	EntryBlank
	// EntryKeyValue is a "key = value" line.
	EntryKeyValue
)

// Entry is a single line of a config document.
type Entry struct {
	Kind EntryKind
	// Text holds the original line for comment entries.
	Text string
	// Key and Value are set for key-value entries. Value may be empty.
	Key   string
	Value string
}

// Comment creates a comment entry holding the raw line.
func Comment(text string) Entry {
	return Entry{Kind: EntryComment, Text: text}
}

// Blank creates a blank line entry.
func Blank() Entry {
	return Entry{Kind: EntryBlank}
}

// KeyValue creates a key-value entry.
func KeyValue(key, value string) Entry {
	return Entry{Kind: EntryKeyValue, Key: key, Value: value}
}

// Setting is a key-value pair extracted from a document.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Document is an ordered config file, with entry order and comments
// preserved across edits.
type Document struct {
	Entries []Entry
	// Path is where the document was read from and will be written to.
	Path string
}

// New returns an empty document bound to path.
func New(path string) *Document {
	return &Document{Path: path}
}

// Get returns the value of the last entry for key.
// The last occurrence wins, matching how ghostty resolves repeated keys.
func (d *Document) Get(key string) (string, bool) {
	value := ""
	found := false
	for _, e := range d.Entries {
		if e.Kind == EntryKeyValue && e.Key == key {
			value = e.Value
			found = true
		}
	}
	return value, found
}

// GetAll returns the values of every entry for key, in file order.
func (d *Document) GetAll(key string) []string {
	var values []string
	for _, e := range d.Entries {
		if e.Kind == EntryKeyValue && e.Key == key {
			values = append(values, e.Value)
		}
	}
	return values
}

// Set updates the first entry for key, or appends a new entry when the key
// is not present. Only the first occurrence is touched so any later
// override in the file keeps winning on Get.
func (d *Document) Set(key, value string) {
	for i, e := range d.Entries {
		if e.Kind == EntryKeyValue && e.Key == key {
			d.Entries[i].Value = value
			return
		}
	}
	d.Entries = append(d.Entries, KeyValue(key, value))
}

// Append adds a new key-value entry at the end, regardless of whether the
// key already appears. Used for repeatable keys like keybind.
func (d *Document) Append(key, value string) {
	d.Entries = append(d.Entries, KeyValue(key, value))
}

// Remove deletes all entries for key. Returns the number removed.
func (d *Document) Remove(key string) int {
	kept := d.Entries[:0]
	removed := 0
	for _, e := range d.Entries {
		if e.Kind == EntryKeyValue && e.Key == key {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	d.Entries = kept
	return removed
}

// RemoveValue deletes all entries with the exact key and value pair.
// Returns the number removed.
func (d *Document) RemoveValue(key, value string) int {
	kept := d.Entries[:0]
	removed := 0
	for _, e := range d.Entries {
		if e.Kind == EntryKeyValue && e.Key == key && e.Value == value {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	d.Entries = kept
	return removed
}

// AllSetValues returns every key-value entry in file order, including
// repeated keys.
func (d *Document) AllSetValues() []Setting {
	var settings []Setting
	for _, e := range d.Entries {
		if e.Kind == EntryKeyValue {
			settings = append(settings, Setting{Key: e.Key, Value: e.Value})
		}
	}
	return settings
}
