package pathkit

import "path/filepath"

// FirstExistingDir normalizes each candidate path and returns the first
// one, in the given order, that exists on disk as a directory. When none
// qualifies it returns ("", false); it never returns an error, since
// "nothing matched" is an expected outcome here.
func FirstExistingDir(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if DirExists(abs) {
			return abs, true
		}
	}
	return "", false
}
