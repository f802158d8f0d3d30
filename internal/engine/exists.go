package engine

import "os"

// StoreExists reports whether dir already holds store files. A missing or
// empty directory counts as no store.
func StoreExists(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	return len(entries) > 0
}
