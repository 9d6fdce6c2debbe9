// Package locate resolves dataset files whose Korean names may be stored on
// disk in either Unicode normalization form. macOS tooling tends to write NFD
// while the spreadsheets arrive named in NFC, so a naive substring match on
// the raw bytes misses files that look identical on screen.
package locate

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is wrapped by Find when no directory entry matches.
var ErrNotFound = fmt.Errorf("no matching file")

// Forms returns the NFC and NFD normalizations of s. Both are compared at the
// matching boundary; only the NFC form propagates into the rest of the system.
func Forms(s string) [2]string {
	return [2]string{norm.NFC.String(s), norm.NFD.String(s)}
}

// Canonical returns the NFC form of s.
func Canonical(s string) string {
	return norm.NFC.String(s)
}

// Matches reports whether name contains keyword under any combination of
// normalization forms.
func Matches(name, keyword string) bool {
	for _, n := range Forms(name) {
		for _, k := range Forms(keyword) {
			if strings.Contains(n, k) {
				return true
			}
		}
	}
	return false
}

// Find returns the name of the first entry in dir whose normalized name
// contains keyword. Directory iteration order breaks ties; in practice at
// most one entry matches. A miss is fatal for the caller: there is no
// fallback location to retry.
func Find(dir, keyword string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read data directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if Matches(e.Name(), keyword) {
			return e.Name(), nil
		}
	}
	return "", fmt.Errorf("%w for %q in %s", ErrNotFound, keyword, dir)
}
