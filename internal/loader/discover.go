package loader

import (
	"os"
	"path/filepath"
	"strings"
)

// Discover scans dir for exactly one .xlsx workbook and returns its path.
// Excel owner/lock files (~$*.xlsx) are ignored. Zero or multiple matches
// is a configuration problem reported as a DiscoveryError before any
// computation takes place.
func Discover(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".xlsx") || strings.HasPrefix(name, "~$") {
			continue
		}
		matches = append(matches, name)
	}

	if len(matches) != 1 {
		return "", &DiscoveryError{Dir: dir, Matches: matches}
	}
	return filepath.Join(dir, matches[0]), nil
}
