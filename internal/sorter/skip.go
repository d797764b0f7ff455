package sorter

import "strings"

// Bookkeeping files that never belong in a sorted library.
var junkNames = map[string]struct{}{
	".ds_store":   {},
	"thumbs.db":   {},
	"desktop.ini": {},
	".localized":  {},
	".directory":  {},
}

var junkSuffixes = []string{".swp", ".swo", ".tmp", ".part", ".crdownload", "~"}

// isJunk reports whether a file with this base name should be skipped
// during the walk.
func isJunk(base string) bool {
	lower := strings.ToLower(base)
	if _, ok := junkNames[lower]; ok {
		return true
	}
	for _, suffix := range junkSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
