package pathkit

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
)

// MaximizePath resolves a sequence of segments into a concrete absolute
// path. The first segment is the anchor and must be a literal; each later
// segment is either a literal used verbatim or a pattern resolved against
// the child directories of the prefix resolved so far, picking the
// candidate with the highest numeric rank (see [CompareRank]).
//
// Resolution aborts with found == false, without error, as soon as a
// resolved prefix is missing from disk or a pattern has no matching child
// directory; no partial path is returned. Listing failures propagate as
// errors.
//
// The classic use is locating the highest version of an installed tool:
//
//	path, found, err := pathkit.MaximizePath(ctx,
//	    pathkit.Lit("/opt/toolchains"),
//	    pathkit.Match(pathkit.MustRegexp(`^v\d+$`)),
//	    pathkit.Lit("bin"))
func (k *Kit) MaximizePath(ctx context.Context, segments ...Segment) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	default:
		// Continue
	}

	if len(segments) == 0 {
		return "", false, nil
	}
	if segments[0].kind != litSegment {
		return "", false, &PathError{
			Op:   "maximizepath",
			Path: segments[0].pattern.String(),
			Err:  ErrNotSupported,
		}
	}

	resolved := make([]string, len(segments))
	resolved[0] = segments[0].lit

	for i := 1; i < len(segments); i++ {
		dir, err := filepath.Abs(filepath.Join(resolved[:i]...))
		if err != nil {
			return "", false, &PathError{Op: "maximizepath", Path: resolved[0], Err: err}
		}
		if !DirExists(dir) {
			return "", false, nil
		}

		seg := segments[i]
		if seg.kind == litSegment {
			resolved[i] = seg.lit
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", false, &PathError{
				Op:   "maximizepath",
				Path: dir,
				Err:  osErr(err),
			}
		}

		best := ""
		found := false
		for _, entry := range entries {
			if !seg.pattern.Matches(entry.Name()) {
				continue
			}
			// Only entries that are themselves directories qualify;
			// files are ignored even when the pattern matches.
			if !isDirEntry(entry, dir) {
				continue
			}
			if !found || CompareRank(entry.Name(), best) < 0 {
				best = entry.Name()
				found = true
			}
		}
		if !found {
			return "", false, nil
		}
		resolved[i] = best
	}

	final, err := filepath.Abs(filepath.Join(resolved...))
	if err != nil {
		return "", false, &PathError{Op: "maximizepath", Path: resolved[0], Err: err}
	}
	return final, true, nil
}

// ============================================================================
// Numeric Rank Comparator
// ============================================================================

// CompareRank orders candidate names by their numeric rank, descending.
// It returns a negative value when a ranks before b (a's number is higher),
// a positive value when b ranks before a, and zero when they tie.
//
// The rank of a name is the first contiguous run of digit or decimal-point
// characters, parsed as a number; parsing stops at a second decimal point,
// so "1.2.3" ranks as 1.2. A name with no parseable number ranks below any
// name with one; two unparseable names tie, and order among ties is
// unspecified.
func CompareRank(a, b string) int {
	ra, aok := numericRank(a)
	rb, bok := numericRank(b)

	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case !aok && !bok:
		return 0
	}

	switch {
	case ra > rb:
		return -1
	case ra < rb:
		return 1
	default:
		return 0
	}
}

// numericRank extracts the first run of digit/dot characters from name and
// parses its longest valid numeric prefix
func numericRank(name string) (float64, bool) {
	start := -1
	for i := 0; i < len(name); i++ {
		if isRankByte(name[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	end := start
	for end < len(name) && isRankByte(name[end]) {
		end++
	}
	run := name[start:end]

	// Longest valid prefix: a second dot terminates the number
	seenDot := false
	cut := len(run)
	for i := 0; i < len(run); i++ {
		if run[i] != '.' {
			continue
		}
		if seenDot {
			cut = i
			break
		}
		seenDot = true
	}

	v, err := strconv.ParseFloat(run[:cut], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isRankByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}
