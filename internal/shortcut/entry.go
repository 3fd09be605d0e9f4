// Package shortcut implements the shortcut store and its JSON persistence.
package shortcut

import "strings"

// DefaultCategory is assigned to entries created without an explicit category.
const DefaultCategory = "General"

// Entry is one stored shortcut. Command is opaque executable text; it is
// never parsed or validated beyond being non-empty. The JSON field names
// are the document's wire format and must not change.
type Entry struct {
	Command     string `json:"Command"`
	Description string `json:"Description"`
	Category    string `json:"Category"`
}

// Info is the projection of an entry returned by listings.
// It deliberately omits the command text.
type Info struct {
	Name        string
	Category    string
	Description string
}

// NormalizeName strips a leading byte-order mark and surrounding whitespace
// from an externally supplied name. Keys pasted from files or other tools
// often carry these invisible prefix bytes; two names differing only in
// them must collide to the same store key.
func NormalizeName(name string) string {
	name = strings.TrimPrefix(name, "\uFEFF")
	return strings.TrimSpace(name)
}
