package utils

import (
	"strings"
)

// EscapeSpace replaces spaces with %20 so the path can be placed into a url.
// Existing %20 sequences are left untouched.
func EscapeSpace(p string) string {
	return strings.ReplaceAll(p, " ", "%20")
}

// FlattenSpace replaces spaces, raw or already escaped, with underscores.
func FlattenSpace(p string) string {
	p = strings.ReplaceAll(p, "%20", "_")
	return strings.ReplaceAll(p, " ", "_")
}

// JoinRemote joins path items with a single '/' between them, empty items are skipped.
// Leading and trailing slashes of the first and last item are kept.
func JoinRemote(items ...string) string {
	rs := make([]string, 0, len(items))
	for idx, item := range items {
		if len(item) == 0 {
			continue
		}
		if idx != 0 {
			item = strings.TrimPrefix(item, "/")
		}
		if idx != len(items)-1 {
			item = strings.TrimSuffix(item, "/")
		}
		if len(item) == 0 {
			continue
		}
		rs = append(rs, item)
	}
	return strings.Join(rs, "/")
}
