package normalize

import "strings"

const (
	nameDisplayMax  = 14
	nameDisplayKeep = 11
	ellipsis        = "..."
)

// CleanCell trims surrounding whitespace from a text cell.
func CleanCell(s string) string {
	return strings.TrimSpace(s)
}

// TruncateName shortens a patient name for table display: names longer
// than 14 characters keep their first 11 characters followed by "...".
func TruncateName(name string) string {
	r := []rune(name)
	if len(r) <= nameDisplayMax {
		return name
	}
	return string(r[:nameDisplayKeep]) + ellipsis
}
