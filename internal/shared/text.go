package shared

import "strings"

// CleanText collapses runs of whitespace (including tabs and newlines) to a
// single space and trims the result. Blank input yields the empty string.
//
// CleanText is idempotent: cleaning already-clean text returns it unchanged.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
