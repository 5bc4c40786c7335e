// Package document models a ghostty config file as an ordered list of
// entries, preserving comments and blank lines across edits.
//
// Ghostty config files are line-oriented: each line is either a comment
// (starting with #), a blank line, or a "key = value" pair. Keys may repeat;
// ghostty itself uses the last occurrence of most keys, and accumulates
// repeatable keys like keybind and palette.
//
// # Structure Preservation
//
// The document keeps every line as an Entry in original order. Editing a
// value rewrites only that entry; comments and blank lines are written back
// byte-for-byte. Key-value lines are normalized to "key = value" on write
// regardless of their original spacing.
//
// Lines that are neither comments, blanks, nor parseable key-value pairs are
// kept as opaque comment entries so they survive a read/write round trip.
//
// # Lookup Semantics
//
// Get returns the LAST matching entry for a key, mirroring how ghostty
// resolves repeated keys. Set updates the FIRST matching entry, so a
// subsequent Get still reflects any later override in the file. Remove
// deletes ALL entries for the key.
package document
